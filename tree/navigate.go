package tree

import (
	"fmt"

	"github.com/dataio-format/go-dataio/dpath"
)

// Resolve walks a compiled path in read mode. It never mutates the tree and
// reports absence instead of failing: a missing key, an out-of-range index,
// a step kind that does not match the node kind, or an append step all
// resolve to (nil, false). The empty path resolves to the root.
func Resolve(root *Node, path dpath.Path) (*Node, bool) {
	cur := root
	for _, s := range path {
		switch s.Kind {
		case dpath.KeyKind:
			next, ok := cur.Field(s.Key)
			if !ok {
				return nil, false
			}
			cur = next
		case dpath.IndexKind:
			next, ok := cur.At(s.Index)
			if !ok {
				return nil, false
			}
			cur = next
		default:
			return nil, false
		}
	}
	return cur, true
}

// Materialize walks a compiled path in write mode, creating missing
// intermediate Objects and Lists, and returns the slot the path addresses.
// want states what the caller will put there; an existing slot of an
// incompatible shape, or an intermediate node of the wrong kind, is
// ErrTypeConflict and the tree is left untouched. A list index beyond the
// current length pads the list with Null elements. Append steps add a fresh
// Null element at the end of the enclosing list.
func Materialize(root *Node, path dpath.Path, want Type) (*Node, error) {
	if err := validate(root, path, want); err != nil {
		return nil, err
	}
	cur := root
	for _, s := range path {
		switch s.Kind {
		case dpath.KeyKind:
			if cur.Type == NullType {
				cur.Type = ObjectType
			}
			next, ok := cur.Field(s.Key)
			if !ok {
				next = Null()
				cur.SetField(s.Key, next)
			}
			cur = next
		case dpath.IndexKind:
			if cur.Type == NullType {
				cur.Type = ListType
			}
			for len(cur.Values) <= s.Index {
				cur.Append(Null())
			}
			cur = cur.Values[s.Index]
		case dpath.AppendKind:
			if cur.Type == NullType {
				cur.Type = ListType
			}
			cur = cur.Append(Null())
		}
	}
	return cur, nil
}

// validate dry-runs a Materialize walk so a conflicting write fails before
// any mutation. Once the walk leaves the existing tree every remaining step
// lands on freshly created nodes and cannot conflict.
func validate(root *Node, path dpath.Path, want Type) error {
	cur := root
	for _, s := range path {
		if cur == nil {
			return nil
		}
		switch s.Kind {
		case dpath.KeyKind:
			switch cur.Type {
			case NullType:
				cur = nil
			case ObjectType:
				cur, _ = cur.Field(s.Key)
			default:
				return fmt.Errorf("%w: key %q into %s", ErrTypeConflict, s.Key, cur.Type)
			}
		case dpath.IndexKind:
			switch cur.Type {
			case NullType:
				cur = nil
			case ListType:
				cur, _ = cur.At(s.Index)
			default:
				return fmt.Errorf("%w: index %d into %s", ErrTypeConflict, s.Index, cur.Type)
			}
		case dpath.AppendKind:
			switch cur.Type {
			case NullType, ListType:
				cur = nil
			default:
				return fmt.Errorf("%w: append into %s", ErrTypeConflict, cur.Type)
			}
		}
	}
	if cur == nil {
		return nil
	}
	return slotCompatible(cur, want)
}

func slotCompatible(slot *Node, want Type) error {
	if slot.Type == NullType {
		return nil
	}
	switch want {
	case ListType, ObjectType:
		if slot.Type != want {
			return fmt.Errorf("%w: slot holds %s, want %s", ErrTypeConflict, slot.Type, want)
		}
	default:
		// Scalars overwrite scalars of any kind, but never replace a
		// container in place.
		if !slot.Type.IsScalar() {
			return fmt.Errorf("%w: slot holds %s, want %s", ErrTypeConflict, slot.Type, want)
		}
	}
	return nil
}
