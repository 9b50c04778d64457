// Package dpath compiles printf-style value paths into navigation steps.
//
// A path is a sequence of fields separated by ".". Each field is either a
// literal or contains printf-style placeholders consumed positionally from
// the argument list:
//   - %s - string key (the empty string is the append sentinel)
//   - %d - numeric list index
//   - %u - numeric list index, unsigned spelling
//
// Splitting happens on the literal "." separator only; an argument bound to
// %s never splits, even if it contains dots. A digit-only literal field
// compiles to an index step.
package dpath

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KeyKind Kind = iota
	IndexKind
	AppendKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KeyKind:    "Key",
		IndexKind:  "Index",
		AppendKind: "Append",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Step is one element of a compiled path: a string key into an object, a
// numeric index into a list, or the append sentinel.
type Step struct {
	Kind  Kind
	Key   string
	Index int
}

func Key(k string) Step { return Step{Kind: KeyKind, Key: k} }
func Index(i int) Step  { return Step{Kind: IndexKind, Index: i} }
func Append() Step      { return Step{Kind: AppendKind} }

func (s Step) String() string {
	switch s.Kind {
	case IndexKind:
		return "[" + strconv.Itoa(s.Index) + "]"
	case AppendKind:
		return "[+]"
	default:
		return s.Key
	}
}

// Path is an ordered step sequence. The empty path addresses the root.
type Path []Step

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Compile turns a path format string and its arguments into a Path. It is a
// pure function of its inputs. Count or kind mismatches between placeholders
// and arguments, negative indexes and empty fields all return
// ErrMalformedPath.
func Compile(format string, args ...any) (Path, error) {
	if format == "" {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: %d arguments for empty path", ErrMalformedPath, len(args))
		}
		return nil, nil
	}
	fields := strings.Split(format, ".")
	path := make(Path, 0, len(fields))
	next := 0
	take := func() (any, error) {
		if next >= len(args) {
			return nil, fmt.Errorf("%w: %q needs more than %d arguments", ErrMalformedPath, format, len(args))
		}
		a := args[next]
		next++
		return a, nil
	}
	for _, field := range fields {
		step, err := compileField(field, take)
		if err != nil {
			return nil, err
		}
		path = append(path, step)
	}
	if next != len(args) {
		return nil, fmt.Errorf("%w: %q leaves %d of %d arguments unconsumed",
			ErrMalformedPath, format, len(args)-next, len(args))
	}
	return path, nil
}

func compileField(field string, take func() (any, error)) (Step, error) {
	switch field {
	case "":
		return Step{}, fmt.Errorf("%w: empty path field", ErrMalformedPath)
	case "%s":
		a, err := take()
		if err != nil {
			return Step{}, err
		}
		key, ok := a.(string)
		if !ok {
			return Step{}, fmt.Errorf("%w: %%s needs a string argument, got %T", ErrMalformedPath, a)
		}
		if key == "" {
			return Append(), nil
		}
		return Key(key), nil
	case "%d", "%u":
		a, err := take()
		if err != nil {
			return Step{}, err
		}
		i, err := intArg(a)
		if err != nil {
			return Step{}, err
		}
		if i < 0 {
			return Step{}, fmt.Errorf("%w: negative index %d", ErrMalformedPath, i)
		}
		return Index(i), nil
	}
	if !strings.Contains(field, "%") {
		if i, err := strconv.Atoi(field); err == nil && i >= 0 {
			return Index(i), nil
		}
		return Key(field), nil
	}
	key, err := expandField(field, take)
	if err != nil {
		return Step{}, err
	}
	return Key(key), nil
}

// expandField substitutes placeholders embedded in a larger field, e.g.
// "axis%d" with argument 2 yields the key "axis2".
func expandField(field string, take func() (any, error)) (string, error) {
	var b strings.Builder
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(field) {
			return "", fmt.Errorf("%w: dangling %% in %q", ErrMalformedPath, field)
		}
		i++
		switch field[i] {
		case '%':
			b.WriteByte('%')
		case 's':
			a, err := take()
			if err != nil {
				return "", err
			}
			s, ok := a.(string)
			if !ok {
				return "", fmt.Errorf("%w: %%s needs a string argument, got %T", ErrMalformedPath, a)
			}
			b.WriteString(s)
		case 'd', 'u':
			a, err := take()
			if err != nil {
				return "", err
			}
			n, err := intArg(a)
			if err != nil {
				return "", err
			}
			if n < 0 {
				return "", fmt.Errorf("%w: negative index %d", ErrMalformedPath, n)
			}
			b.WriteString(strconv.Itoa(n))
		default:
			return "", fmt.Errorf("%w: unsupported placeholder %%%c in %q", ErrMalformedPath, field[i], field)
		}
	}
	return b.String(), nil
}

func intArg(a any) (int, error) {
	switch v := a.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %%d needs an integer argument, got %T", ErrMalformedPath, a)
	}
}
