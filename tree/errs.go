package tree

import "errors"

// ErrTypeConflict reports a write that found an existing node of
// incompatible shape at an intermediate or terminal step. The tree is never
// modified by a conflicting write.
var ErrTypeConflict = errors.New("type conflict")
