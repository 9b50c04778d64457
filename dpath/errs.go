package dpath

import "errors"

// ErrMalformedPath reports a path format string whose placeholders and
// arguments disagree, or an invalid field such as a negative index.
var ErrMalformedPath = errors.New("malformed path")
