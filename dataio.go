// Package dataio is a format-agnostic hierarchical data engine: an
// in-memory tree of scalars, lists and nested objects, addressed by
// printf-style dotted paths, with typed default-valued reads, creating
// writes and round-trip serialization through pluggable codec backends.
//
// A Data handle wraps a tree root. Typed getters never fail: a missing or
// mismatched value yields the caller's default. Writes create missing
// intermediate levels and fail explicitly, without partial effect, when an
// existing node has an incompatible shape.
//
// Handles are not safe for concurrent mutation; callers sharing one tree
// serialize access themselves. Read-only sharing of an unchanging tree is
// fine.
package dataio

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dataio-format/go-dataio/codec"
	"github.com/dataio-format/go-dataio/debug"
	"github.com/dataio-format/go-dataio/dpath"
	"github.com/dataio-format/go-dataio/storage"
	"github.com/dataio-format/go-dataio/tree"
)

// Data is a handle onto a document tree, or a level inside one. Handles
// returned by SubData, AddList and AddLevel alias the same tree: writes
// through them are visible to the enclosing handle.
type Data struct {
	root *tree.Node
	opts options
}

// New returns a handle on a fresh empty document (an empty Object root).
func New(opts ...Option) *Data {
	return FromNode(tree.NewObject(), opts...)
}

// FromNode wraps an existing tree. A nil node wraps a fresh empty Object.
func FromNode(n *tree.Node, opts ...Option) *Data {
	if n == nil {
		n = tree.NewObject()
	}
	d := &Data{root: n, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Decode materializes a document from raw bytes through the given backend.
func Decode(dec codec.Decoder, doc []byte, opts ...Option) (*Data, error) {
	n, err := dec.Decode(doc)
	if err != nil {
		return nil, err
	}
	return FromNode(n, opts...), nil
}

// DecodeString materializes a document from an in-memory string.
func DecodeString(dec codec.Decoder, doc string, opts ...Option) (*Data, error) {
	return Decode(dec, []byte(doc), opts...)
}

// Load fetches and decodes a document from storage. When path carries a
// suffix a registered backend claims, that backend decodes the fetched
// bytes; otherwise every registered suffix is tried against the storage in
// turn, the way a configuration base name resolves to one of several
// on-disk spellings.
func Load(ctx context.Context, loc storage.Locator, path string, opts ...Option) (*Data, error) {
	if ext := filepath.Ext(path); ext != "" {
		c, ok := codec.BySuffix(ext)
		if !ok {
			return nil, fmt.Errorf("%w: unknown suffix %q", ErrNoCodec, ext)
		}
		raw, err := loc.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		return Decode(c, raw, opts...)
	}
	for _, suffix := range codec.Suffixes() {
		candidate := path + suffix
		raw, err := loc.Fetch(ctx, candidate)
		if err != nil {
			if debug.Load() {
				debug.Logf("load: skip %q: %v\n", candidate, err)
			}
			continue
		}
		c, _ := codec.BySuffix(suffix)
		if debug.Load() {
			debug.Logf("load: decoding %q with %s\n", candidate, c.Name())
		}
		return Decode(c, raw, opts...)
	}
	return nil, fmt.Errorf("%w: no loadable document at %q", ErrNoCodec, path)
}

// Root exposes the underlying tree node this handle wraps.
func (d *Data) Root() *tree.Node {
	return d.root
}

// Clone returns a handle on a deep copy of the tree, sharing no nodes with
// the receiver. Use it to snapshot before a batch of writes.
func (d *Data) Clone() *Data {
	return &Data{root: d.root.Clone(), opts: d.opts}
}

// Equal reports structural equality of the two handles' trees.
func (d *Data) Equal(o *Data) bool {
	return d.root.Equal(o.root)
}

// Encode flattens the tree through the given backend.
func (d *Data) Encode(enc codec.Encoder) ([]byte, error) {
	return enc.Encode(d.root)
}

// EncodeString flattens the tree to a string.
func (d *Data) EncodeString(enc codec.Encoder) (string, error) {
	raw, err := enc.Encode(d.root)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (d *Data) compile(format string, args []any) (dpath.Path, error) {
	if max := d.opts.limits.MaxPathLen; max > 0 && len(format) > max {
		return nil, fmt.Errorf("%w: path longer than %d bytes", ErrMalformedPath, max)
	}
	p, err := dpath.Compile(format, args...)
	if err != nil && debug.Path() {
		debug.Logf("path: %v\n", err)
	}
	return p, err
}
