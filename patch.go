package dataio

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/dataio-format/go-dataio/codec/jsoncodec"
)

// Diff compares two documents and returns the RFC 7386 merge patch that
// turns a into b. Applying the result to a with MergePatch reproduces b.
func Diff(a, b *Data) ([]byte, error) {
	jc := jsoncodec.New()
	da, err := a.Encode(jc)
	if err != nil {
		return nil, err
	}
	db, err := b.Encode(jc)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(da, db)
}

// MergePatch applies an RFC 7386 merge patch to the document. The change is
// written into the existing tree node, so handles aliasing this level
// observe it. A failed patch leaves the document untouched.
func (d *Data) MergePatch(patch []byte) error {
	jc := jsoncodec.New()
	doc, err := d.Encode(jc)
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return fmt.Errorf("merge patch: %w", err)
	}
	n, err := jc.Decode(out)
	if err != nil {
		return err
	}
	*d.root = *n
	return nil
}

// ApplyPatch applies an RFC 6902 patch (a JSON array of operations) to the
// document. A failed patch leaves the document untouched.
func (d *Data) ApplyPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	jc := jsoncodec.New()
	doc, err := d.Encode(jc)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	n, err := jc.Decode(out)
	if err != nil {
		return err
	}
	*d.root = *n
	return nil
}
