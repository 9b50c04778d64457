// Package yamlcodec is the YAML backend, built on goccy/go-yaml. YAML maps
// decode through Go maps, so object field order is not preserved; the tree
// contract leaves field order to the backend.
package yamlcodec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/dataio-format/go-dataio/codec"
	"github.com/dataio-format/go-dataio/tree"
)

func init() {
	codec.Register(New())
}

type YAML struct{}

func New() *YAML { return &YAML{} }

func (*YAML) Name() string { return "yaml" }

func (*YAML) Suffixes() []string { return []string{".yaml", ".yml"} }

func (*YAML) Decode(d []byte) (*tree.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	n, err := tree.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return n, nil
}

func (*YAML) Encode(n *tree.Node) ([]byte, error) {
	d, err := yaml.Marshal(tree.ToAny(n))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return d, nil
}
