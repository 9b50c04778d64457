package tree

import "strconv"

// Coerce attempts a loose scalar conversion of n to the requested type,
// reporting whether one exists. Strings holding "true"/"false" convert to
// Bool, numeric strings convert to Number, and Numbers and Bools render as
// Strings. Containers and Null never coerce.
func Coerce(n *Node, want Type) (*Node, bool) {
	if n.Type == want {
		return n, true
	}
	switch want {
	case BoolType:
		if n.Type == StringType {
			switch n.String {
			case "true":
				return FromBool(true), true
			case "false":
				return FromBool(false), true
			}
		}
	case NumberType:
		if n.Type == StringType {
			if f, err := strconv.ParseFloat(n.String, 64); err == nil {
				return FromNumber(f), true
			}
		}
	case StringType:
		switch n.Type {
		case NumberType:
			return FromString(strconv.FormatFloat(n.Number, 'g', -1, 64)), true
		case BoolType:
			return FromString(strconv.FormatBool(n.Bool)), true
		}
	}
	return nil, false
}
