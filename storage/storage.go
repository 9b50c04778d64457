// Package storage resolves storage paths to raw document bytes and lists
// the entries available under a storage path. It is deliberately thin glue:
// parsing the bytes belongs to a codec backend, addressing values inside a
// document belongs to the tree.
package storage

import (
	"context"
	"errors"
	"iter"
)

// ErrNotFound reports a storage path with no document behind it.
var ErrNotFound = errors.New("storage entry not found")

// ErrNotSupported reports an operation the locator cannot provide, such as
// listing entries over a transport with no directory notion.
var ErrNotSupported = errors.New("operation not supported")

// Locator resolves storage paths for one transport. Implementations carry
// their own configuration (base directory, endpoint); there is no
// process-wide state.
type Locator interface {
	// Fetch returns the raw bytes behind path.
	Fetch(ctx context.Context, path string) ([]byte, error)

	// Entries returns a lazy, restartable sequence of the entry names
	// available under path. Each returned sequence may be ranged over
	// any number of times.
	Entries(ctx context.Context, path string) (iter.Seq[string], error)
}
