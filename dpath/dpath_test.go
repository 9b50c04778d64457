package dpath

import (
	"errors"
	"reflect"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   Path
	}{
		{
			name:   "empty path is the root",
			format: "",
			want:   nil,
		},
		{
			name:   "single literal",
			format: "name",
			want:   Path{Key("name")},
		},
		{
			name:   "dotted literals",
			format: "robot.arm.motor",
			want:   Path{Key("robot"), Key("arm"), Key("motor")},
		},
		{
			name:   "digit literal is an index",
			format: "axes.2",
			want:   Path{Key("axes"), Index(2)},
		},
		{
			name:   "string placeholder",
			format: "%s",
			args:   []any{"name"},
			want:   Path{Key("name")},
		},
		{
			name:   "mixed placeholders",
			format: "%s.%d.%s",
			args:   []any{"axes", 1, "limit"},
			want:   Path{Key("axes"), Index(1), Key("limit")},
		},
		{
			name:   "unsigned placeholder",
			format: "axes.%u",
			args:   []any{uint(3)},
			want:   Path{Key("axes"), Index(3)},
		},
		{
			name:   "empty string arg is the append sentinel",
			format: "axes.%s",
			args:   []any{""},
			want:   Path{Key("axes"), Append()},
		},
		{
			name:   "placeholder argument with dots stays one step",
			format: "%s",
			args:   []any{"a.b"},
			want:   Path{Key("a.b")},
		},
		{
			name:   "embedded placeholder expands into a key",
			format: "axis%d.offset",
			args:   []any{2},
			want:   Path{Key("axis2"), Key("offset")},
		},
		{
			name:   "escaped percent",
			format: "load%%",
			want:   Path{Key("load%")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.format, tt.args...)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.format, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compile(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestCompileMalformed(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{name: "missing argument", format: "%s.%d", args: []any{"a"}},
		{name: "extra argument", format: "%s", args: []any{"a", 1}},
		{name: "argument for empty path", format: "", args: []any{"a"}},
		{name: "negative index", format: "%d", args: []any{-1}},
		{name: "string for index", format: "%d", args: []any{"a"}},
		{name: "int for key", format: "%s", args: []any{7}},
		{name: "empty field", format: "a..b"},
		{name: "trailing dot", format: "a."},
		{name: "unsupported placeholder", format: "%f", args: []any{1.0}},
		{name: "dangling percent", format: "a%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.format, tt.args...)
			if !errors.Is(err, ErrMalformedPath) {
				t.Errorf("Compile(%q, %v) err = %v, want ErrMalformedPath", tt.format, tt.args, err)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	p, err := Compile("robot.axes.%d.%s", 1, "limit")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.String(), "robot.axes.[1].limit"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
