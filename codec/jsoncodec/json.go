// Package jsoncodec is the JSON backend. Decoding runs over the stdlib
// token stream so object key order survives and duplicate keys are caught;
// comments and trailing commas are tolerated by preprocessing the input
// with tidwall/jsonc. Encoding is compact by default.
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/dataio-format/go-dataio/codec"
	"github.com/dataio-format/go-dataio/tree"
)

func init() {
	codec.Register(New())
}

type JSON struct {
	// Indent, when non-empty, turns on multi-line encoding with the
	// given per-level indent string.
	Indent string
}

func New() *JSON { return &JSON{} }

func (*JSON) Name() string { return "json" }

func (*JSON) Suffixes() []string { return []string{".json", ".jsonc"} }

func (*JSON) Decode(d []byte) (*tree.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(d)))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	n, err := decodeValue(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode json: trailing data after document")
	}
	return n, nil
}

func decodeValue(dec *json.Decoder, tok json.Token) (*tree.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return tree.FromString(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", t.String(), err)
		}
		return tree.FromNumber(f), nil
	case bool:
		return tree.FromBool(t), nil
	case nil:
		return tree.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*tree.Node, error) {
	obj := tree.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key %v is not a string", keyTok)
		}
		if _, dup := obj.Field(key); dup {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		obj.SetField(key, val)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeList(dec *json.Decoder) (*tree.Node, error) {
	list := tree.NewList()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		elt, err := decodeValue(dec, tok)
		if err != nil {
			return nil, err
		}
		list.Append(elt)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *JSON) Encode(n *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.encode(&buf, n, 0); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *JSON) encode(buf *bytes.Buffer, n *tree.Node, depth int) error {
	switch n.Type {
	case tree.NullType:
		buf.WriteString("null")
	case tree.BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case tree.NumberType:
		if math.IsNaN(n.Number) || math.IsInf(n.Number, 0) {
			return fmt.Errorf("number %v is not representable", n.Number)
		}
		buf.WriteString(strconv.FormatFloat(n.Number, 'g', -1, 64))
	case tree.StringType:
		return writeQuoted(buf, n.String)
	case tree.ListType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			c.newline(buf, depth+1)
			if err := c.encode(buf, v, depth+1); err != nil {
				return err
			}
		}
		if n.Len() > 0 {
			c.newline(buf, depth)
		}
		buf.WriteByte(']')
	case tree.ObjectType:
		buf.WriteByte('{')
		for i, k := range n.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			c.newline(buf, depth+1)
			if err := writeQuoted(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if c.Indent != "" {
				buf.WriteByte(' ')
			}
			if err := c.encode(buf, n.Values[i], depth+1); err != nil {
				return err
			}
		}
		if n.Len() > 0 {
			c.newline(buf, depth)
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node type %d", n.Type)
	}
	return nil
}

func (c *JSON) newline(buf *bytes.Buffer, depth int) {
	if c.Indent == "" {
		return
	}
	buf.WriteByte('\n')
	for range depth {
		buf.WriteString(c.Indent)
	}
}

func writeQuoted(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
