package tree

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// ToAny converts a tree to the plain Go shape used by codec backends and
// expression evaluation: map[string]any, []any, float64, string, bool, nil.
func ToAny(n *Node) any {
	switch n.Type {
	case ObjectType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k] = ToAny(n.Values[i])
		}
		return res
	case ListType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return n.String
	case NumberType:
		return n.Number
	case BoolType:
		return n.Bool
	case NullType:
		return nil
	default:
		panic("impossible node type")
	}
}

// FromAny builds a tree from plain Go values. Map keys are sorted so the
// result is deterministic for backends that decode into maps.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromNumber(x), nil
	case float32:
		return FromNumber(float64(x)), nil
	case int:
		return FromNumber(float64(x)), nil
	case int64:
		return FromNumber(float64(x)), nil
	case uint64:
		return FromNumber(float64(x)), nil
	case []any:
		res := NewList()
		res.Values = make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, n)
		}
		return res, nil
	case map[any]any:
		strKeys := make(map[string]any, len(x))
		for k, val := range x {
			sk, ok := k.(string)
			if !ok {
				sk = fmt.Sprint(k)
			}
			strKeys[sk] = val
		}
		return FromAny(strKeys)
	case numberText:
		f, err := strconv.ParseFloat(x.String(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x.String(), err)
		}
		return FromNumber(f), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", v)
	}
}

// numberText matches json.Number and similar textual number carriers without
// importing their packages here.
type numberText interface{ String() string }
