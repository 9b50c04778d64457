// Package tree holds the in-memory document model: a tagged variant tree of
// scalars, lists and objects, plus the navigation engine that resolves
// compiled paths against it.
package tree

import "slices"

// Node is one node of a document tree. Its Type selects which of the value
// fields is meaningful. Objects keep Keys and Values parallel, in insertion
// order; Lists use Values alone. A Node exclusively owns its children and the
// tree is acyclic by construction: there are no parent back-references.
type Node struct {
	Type Type

	Number float64
	String string
	Bool   bool

	Keys   []string
	Values []*Node
}

func Null() *Node { return &Node{Type: NullType} }

func FromNumber(v float64) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func NewObject() *Node { return &Node{Type: ObjectType} }

func NewList() *Node { return &Node{Type: ListType} }

// Field returns the value held under key, and whether the key is present.
// An explicit Null value is present.
func (n *Node) Field(key string) (*Node, bool) {
	if n.Type != ObjectType {
		return nil, false
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i], true
		}
	}
	return nil, false
}

// SetField binds key to v, replacing any previous binding and keeping the
// key's insertion position. The receiver must be an Object.
func (n *Node) SetField(key string, v *Node) {
	for i, k := range n.Keys {
		if k == key {
			n.Values[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
}

// At returns the list element at index i, and whether i is in range.
func (n *Node) At(i int) (*Node, bool) {
	if n.Type != ListType || i < 0 || i >= len(n.Values) {
		return nil, false
	}
	return n.Values[i], true
}

// Append adds v to the end of a List and returns it.
func (n *Node) Append(v *Node) *Node {
	n.Values = append(n.Values, v)
	return v
}

// Len returns the number of children: list elements or object fields.
func (n *Node) Len() int {
	return len(n.Values)
}

// Clone returns a deep copy sharing no nodes with the receiver.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:   n.Type,
		Number: n.Number,
		String: n.String,
		Bool:   n.Bool,
	}
	if n.Keys != nil {
		dst.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Equal reports structural equality: same tags, same scalar values, same
// list order, same object key sets. Object field order does not participate;
// whether it is preserved at all is a backend decision.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case NullType:
		return true
	case NumberType:
		return n.Number == o.Number
	case StringType:
		return n.String == o.String
	case BoolType:
		return n.Bool == o.Bool
	case ListType:
		if len(n.Values) != len(o.Values) {
			return false
		}
		for i, v := range n.Values {
			if !v.Equal(o.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(n.Keys) != len(o.Keys) {
			return false
		}
		for i, k := range n.Keys {
			ov, ok := o.Field(k)
			if !ok || !n.Values[i].Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Visit walks the subtree rooted at n, calling f before and after each
// node's children. Returning false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
