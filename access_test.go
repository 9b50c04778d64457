package dataio

import (
	"errors"
	"testing"

	"github.com/dataio-format/go-dataio/tree"
)

func buildConfig(t *testing.T) *Data {
	t.Helper()
	d := New()
	if err := d.SetString("arm", "robot.name"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetNumber(7, "robot.motor.id"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBool(true, "robot.motor.enabled"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetString("x", "robot.axes.%d", 0); err != nil {
		t.Fatal(err)
	}
	if err := d.SetString("y", "robot.axes.%d", 1); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestWriteThenRead(t *testing.T) {
	d := buildConfig(t)
	if got := d.GetString("default", "robot.name"); got != "arm" {
		t.Errorf("GetString = %q, want %q", got, "arm")
	}
	if got := d.GetNumber(0, "robot.motor.id"); got != 7 {
		t.Errorf("GetNumber = %v, want 7", got)
	}
	if got := d.GetBool(false, "robot.motor.enabled"); !got {
		t.Error("GetBool = false, want true")
	}
}

func TestDefaultFallback(t *testing.T) {
	d := buildConfig(t)
	if got := d.GetNumber(1.5, "robot.motor.gain"); got != 1.5 {
		t.Errorf("absent path: GetNumber = %v, want default", got)
	}
	if got := d.GetString("none", "robot.controller"); got != "none" {
		t.Errorf("absent path: GetString = %q, want default", got)
	}
	if got := d.GetBool(true, "robot.motor.reversed"); !got {
		t.Error("absent path: GetBool = false, want default")
	}
	// Tag mismatch also falls back.
	if got := d.GetNumber(-1, "robot.name"); got != -1 {
		t.Errorf("mismatched tag: GetNumber = %v, want default", got)
	}
	if got := d.GetString("d", "robot.motor"); got != "d" {
		t.Errorf("container: GetString = %q, want default", got)
	}
	// Malformed paths read as absent rather than failing.
	if got := d.GetNumber(2, "robot.%d", "oops"); got != 2 {
		t.Errorf("malformed path: GetNumber = %v, want default", got)
	}
}

func TestHasVersusDefault(t *testing.T) {
	d := buildConfig(t)
	if err := d.SetNull("robot.spare"); err != nil {
		t.Fatal(err)
	}
	if !d.Has("robot.spare") {
		t.Error("explicit Null not present")
	}
	if got := d.GetString("d", "robot.spare"); got != "d" {
		t.Errorf("GetString on Null = %q, want default", got)
	}
	if d.Has("robot.missing") {
		t.Error("absent key present")
	}
	if !d.Has("") {
		t.Error("root not present")
	}
}

func TestIdempotentRead(t *testing.T) {
	d := buildConfig(t)
	a, okA := d.SubData("robot.motor")
	b, okB := d.SubData("robot.motor")
	if !okA || !okB {
		t.Fatal("SubData failed")
	}
	if !a.Equal(b) {
		t.Error("two reads of the same path differ")
	}
	if a.Root() != b.Root() {
		t.Error("SubData handles do not alias the same node")
	}
}

func TestSubDataAliases(t *testing.T) {
	d := buildConfig(t)
	motor, ok := d.SubData("robot.motor")
	if !ok {
		t.Fatal("SubData failed")
	}
	if err := motor.SetNumber(9, "id"); err != nil {
		t.Fatal(err)
	}
	if got := d.GetNumber(0, "robot.motor.id"); got != 9 {
		t.Errorf("write through subdata invisible to parent: %v", got)
	}
}

func TestAppendSemantics(t *testing.T) {
	d := New()
	if _, err := d.AddList("samples"); err != nil {
		t.Fatal(err)
	}
	const n = 4
	for i := 0; i < n; i++ {
		if _, err := d.AddList("samples.%s", ""); err != nil {
			t.Fatal(err)
		}
		if got := d.ListSize("samples"); got != i+1 {
			t.Errorf("ListSize = %d after %d appends", got, i+1)
		}
	}
	if got := d.ListSize("samples"); got != n {
		t.Errorf("ListSize = %d, want %d", got, n)
	}
	// Elements arrive in call order.
	for i := 0; i < n; i++ {
		if err := d.SetNumber(float64(i), "samples.%d.%s", i, ""); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		if got := d.GetNumber(-1, "samples.%d.0", i); got != float64(i) {
			t.Errorf("samples[%d][0] = %v, want %d", i, got, i)
		}
	}
}

func TestNestedPathCreation(t *testing.T) {
	d := New()
	if err := d.SetNumber(3.5, "%s.%s.%d", "a", "b", 2); err != nil {
		t.Fatal(err)
	}
	if got := d.GetNumber(0, "a.b.2"); got != 3.5 {
		t.Errorf("a.b[2] = %v, want 3.5", got)
	}
	if got := d.ListSize("a.b"); got != 3 {
		t.Errorf("ListSize(a.b) = %d, want 3", got)
	}
	for i := 0; i < 2; i++ {
		if !d.Has("a.b.%d", i) {
			t.Errorf("padding element %d absent", i)
		}
		sub, _ := d.SubData("a.b.%d", i)
		if sub.Root().Type != tree.NullType {
			t.Errorf("padding element %d has type %s", i, sub.Root().Type)
		}
	}
}

func TestConflictRejection(t *testing.T) {
	d := New()
	if err := d.SetString("x", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddLevel("a"); !errors.Is(err, ErrTypeConflict) {
		t.Fatalf("AddLevel over a string: err = %v", err)
	}
	if got := d.GetString("", "a"); got != "x" {
		t.Errorf("a = %q after rejected AddLevel, want %q", got, "x")
	}

	snapshot := d.Clone()
	if err := d.SetNumber(1, "a.b.c"); !errors.Is(err, ErrTypeConflict) {
		t.Fatalf("write through a scalar: err = %v", err)
	}
	if !d.Equal(snapshot) {
		t.Error("failed write modified the tree")
	}
}

func TestAddListExisting(t *testing.T) {
	d := New()
	l1, err := d.AddList("axes")
	if err != nil {
		t.Fatal(err)
	}
	l2, err := d.AddList("axes")
	if err != nil {
		t.Fatalf("AddList on an existing list: %v", err)
	}
	if l1.Root() != l2.Root() {
		t.Error("AddList created a second list")
	}
	if _, err := d.AddList("axes.%d.points", 0); err != nil {
		t.Fatalf("AddList under a padded element: %v", err)
	}
}

func TestAddLevel(t *testing.T) {
	d := New()
	lvl, err := d.AddLevel("robot.motor")
	if err != nil {
		t.Fatal(err)
	}
	if err := lvl.SetNumber(12, "id"); err != nil {
		t.Fatal(err)
	}
	if got := d.GetNumber(0, "robot.motor.id"); got != 12 {
		t.Errorf("write through AddLevel handle: %v", got)
	}
}

func TestSetMalformed(t *testing.T) {
	d := New()
	if err := d.SetNumber(1, "%s"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("missing arg: err = %v", err)
	}
	if err := d.SetNumber(1, "axes.%d", -2); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("negative index: err = %v", err)
	}
	if err := d.SetNumber(1, ""); !errors.Is(err, ErrTypeConflict) {
		t.Errorf("scalar at root: err = %v", err)
	}
}

func TestLimits(t *testing.T) {
	d := New(WithLimits(tree.Limits{MaxValueLen: 4, MaxPathLen: 8}))
	if err := d.SetString("abcd", "k"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetString("abcde", "k"); !errors.Is(err, ErrLimit) {
		t.Errorf("long value: err = %v", err)
	}
	if err := d.SetNumber(1, "very.long.path.here"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("long path: err = %v", err)
	}
}

func TestCoercionOptIn(t *testing.T) {
	strict := New()
	if err := strict.SetString("2.5", "gain"); err != nil {
		t.Fatal(err)
	}
	if err := strict.SetString("true", "on"); err != nil {
		t.Fatal(err)
	}
	if got := strict.GetNumber(-1, "gain"); got != -1 {
		t.Errorf("strict GetNumber = %v, want default", got)
	}

	loose := FromNode(strict.Root(), WithCoercion(true))
	if got := loose.GetNumber(-1, "gain"); got != 2.5 {
		t.Errorf("loose GetNumber = %v, want 2.5", got)
	}
	if got := loose.GetBool(false, "on"); !got {
		t.Error("loose GetBool = false, want true")
	}
	if got := loose.GetString("", "gain"); got != "2.5" {
		t.Errorf("loose GetString = %q, want \"2.5\"", got)
	}
}
