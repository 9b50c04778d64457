package cborcodec

import (
	"bytes"
	"testing"

	"github.com/dataio-format/go-dataio/tree"
)

func sample() *tree.Node {
	root := tree.NewObject()
	root.SetField("name", tree.FromString("arm"))
	root.SetField("gain", tree.FromNumber(0.5))
	root.SetField("on", tree.FromBool(true))
	root.SetField("spare", tree.Null())
	list := tree.NewList()
	list.Append(tree.FromNumber(1))
	list.Append(tree.FromString("y"))
	root.SetField("axes", list)
	return root
}

func TestRoundTrip(t *testing.T) {
	c := New()
	out, err := c.Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if !sample().Equal(back) {
		t.Error("round trip differs")
	}
}

func TestDeterministicEncoding(t *testing.T) {
	c := New()
	a, err := c.Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Encode(sample())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same tree encoded to different bytes")
	}
}

func TestDecodeError(t *testing.T) {
	if _, err := New().Decode([]byte{0xff, 0x00}); err == nil {
		t.Error("garbage decoded")
	}
}
