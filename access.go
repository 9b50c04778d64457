package dataio

import (
	"fmt"

	"github.com/dataio-format/go-dataio/tree"
)

// SubData resolves a path in read mode and returns a handle on the inner
// level, or false when the path does not exist. The returned handle aliases
// the same tree.
func (d *Data) SubData(pathFormat string, args ...any) (*Data, bool) {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return nil, false
	}
	n, ok := tree.Resolve(d.root, p)
	if !ok {
		return nil, false
	}
	return &Data{root: n, opts: d.opts}, true
}

// Has reports whether the path resolves to a node. An explicit Null value
// is present; only absence is false.
func (d *Data) Has(pathFormat string, args ...any) bool {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return false
	}
	_, ok := tree.Resolve(d.root, p)
	return ok
}

// ListSize returns the element count of the List at the path, or 0 when the
// path is absent or does not hold a List.
func (d *Data) ListSize(pathFormat string, args ...any) int {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return 0
	}
	n, ok := tree.Resolve(d.root, p)
	if !ok || n.Type != tree.ListType {
		return 0
	}
	return n.Len()
}

// GetNumber returns the numeric value at the path, or def when the path is
// absent or holds a different kind of value. It never fails the caller.
func (d *Data) GetNumber(def float64, pathFormat string, args ...any) float64 {
	n, ok := d.scalarAt(tree.NumberType, pathFormat, args)
	if !ok {
		return def
	}
	return n.Number
}

// GetString returns the string value at the path, or def.
func (d *Data) GetString(def string, pathFormat string, args ...any) string {
	n, ok := d.scalarAt(tree.StringType, pathFormat, args)
	if !ok {
		return def
	}
	return n.String
}

// GetBool returns the boolean value at the path, or def.
func (d *Data) GetBool(def bool, pathFormat string, args ...any) bool {
	n, ok := d.scalarAt(tree.BoolType, pathFormat, args)
	if !ok {
		return def
	}
	return n.Bool
}

func (d *Data) scalarAt(want tree.Type, pathFormat string, args []any) (*tree.Node, bool) {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return nil, false
	}
	n, ok := tree.Resolve(d.root, p)
	if !ok {
		return nil, false
	}
	if n.Type == want {
		return n, true
	}
	if d.opts.coerce {
		return tree.Coerce(n, want)
	}
	return nil, false
}

// SetNumber writes a numeric value at the path, creating missing levels.
func (d *Data) SetNumber(v float64, pathFormat string, args ...any) error {
	return d.setScalar(tree.Node{Type: tree.NumberType, Number: v}, pathFormat, args)
}

// SetString writes a string value at the path, creating missing levels.
// Values longer than the configured bound are rejected with ErrLimit.
func (d *Data) SetString(v string, pathFormat string, args ...any) error {
	if max := d.opts.limits.MaxValueLen; max > 0 && len(v) > max {
		return fmt.Errorf("%w: value longer than %d bytes", ErrLimit, max)
	}
	return d.setScalar(tree.Node{Type: tree.StringType, String: v}, pathFormat, args)
}

// SetBool writes a boolean value at the path, creating missing levels.
func (d *Data) SetBool(v bool, pathFormat string, args ...any) error {
	return d.setScalar(tree.Node{Type: tree.BoolType, Bool: v}, pathFormat, args)
}

// SetNull writes an explicit Null at the path, creating missing levels.
// The key stays present: Has reports true, typed getters fall back to their
// defaults.
func (d *Data) SetNull(pathFormat string, args ...any) error {
	return d.setScalar(tree.Node{Type: tree.NullType}, pathFormat, args)
}

func (d *Data) setScalar(v tree.Node, pathFormat string, args []any) error {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return err
	}
	if len(p) == 0 {
		return fmt.Errorf("%w: cannot assign a scalar to the root", ErrTypeConflict)
	}
	slot, err := tree.Materialize(d.root, p, v.Type)
	if err != nil {
		return err
	}
	*slot = v
	return nil
}

// AddList resolves or creates an empty List at the path (appending when the
// final step is the append sentinel) and returns a handle on it. A slot
// already holding a List is returned as is; any other non-Null value is
// ErrTypeConflict.
func (d *Data) AddList(pathFormat string, args ...any) (*Data, error) {
	return d.addContainer(tree.ListType, pathFormat, args)
}

// AddLevel resolves or creates an empty Object nesting level at the path
// and returns a handle on it.
func (d *Data) AddLevel(pathFormat string, args ...any) (*Data, error) {
	return d.addContainer(tree.ObjectType, pathFormat, args)
}

func (d *Data) addContainer(want tree.Type, pathFormat string, args []any) (*Data, error) {
	p, err := d.compile(pathFormat, args)
	if err != nil {
		return nil, err
	}
	slot, err := tree.Materialize(d.root, p, want)
	if err != nil {
		return nil, err
	}
	if slot.Type == tree.NullType {
		slot.Type = want
	}
	return &Data{root: slot, opts: d.opts}, nil
}
