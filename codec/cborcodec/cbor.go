// Package cborcodec is the binary backend, built on fxamacker/cbor with
// Core Deterministic Encoding (RFC 8949 §4.2): the same tree always encodes
// to identical bytes.
package cborcodec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/dataio-format/go-dataio/codec"
	"github.com/dataio-format/go-dataio/tree"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cborcodec: encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		// Trees only have string object keys; any-typed targets must
		// decode maps as map[string]any, not the CBOR default
		// map[interface{}]interface{}.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cborcodec: decoder initialization failed: " + err.Error())
	}
	codec.Register(New())
}

type CBOR struct{}

func New() *CBOR { return &CBOR{} }

func (*CBOR) Name() string { return "cbor" }

func (*CBOR) Suffixes() []string { return []string{".cbor"} }

func (*CBOR) Decode(d []byte) (*tree.Node, error) {
	var v any
	if err := decMode.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	n, err := tree.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("decode cbor: %w", err)
	}
	return n, nil
}

func (*CBOR) Encode(n *tree.Node) ([]byte, error) {
	d, err := encMode.Marshal(tree.ToAny(n))
	if err != nil {
		return nil, fmt.Errorf("encode cbor: %w", err)
	}
	return d, nil
}
