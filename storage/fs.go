package storage

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// FS is a filesystem locator. Relative storage paths resolve against Base;
// an empty Base means the process working directory.
type FS struct {
	Base string
}

// NewFS returns a filesystem locator rooted at base.
func NewFS(base string) *FS {
	return &FS{Base: base}
}

func (l *FS) resolve(path string) string {
	if l.Base == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Base, path)
}

func (l *FS) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := os.ReadFile(l.resolve(path))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}

// Entries lists the directory at path. The sequence is evaluated lazily
// from a per-call snapshot, so it can be ranged over repeatedly and is not
// shared between calls.
func (l *FS) Entries(ctx context.Context, path string) (iter.Seq[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(l.resolve(path))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not list %q: %w", path, err)
	}
	return func(yield func(string) bool) {
		for _, ent := range ents {
			if ent.IsDir() {
				continue
			}
			if !yield(ent.Name()) {
				return
			}
		}
	}, nil
}
