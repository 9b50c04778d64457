package dataio

import (
	"errors"

	"github.com/dataio-format/go-dataio/dpath"
	"github.com/dataio-format/go-dataio/tree"
)

var (
	ErrMalformedPath = dpath.ErrMalformedPath
	ErrTypeConflict  = tree.ErrTypeConflict

	// ErrLimit reports a string value exceeding the configured bound.
	ErrLimit = errors.New("limit exceeded")

	// ErrNoCodec reports a storage path no registered backend claims.
	ErrNoCodec = errors.New("no codec for document")
)
