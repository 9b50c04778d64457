package tree

// Default bounds carried over from the original interface limits.
const (
	DefaultMaxValueLen = 128
	DefaultMaxPathLen  = 256
)

// Limits bounds the accessor surface: how long a string value may be and
// how long a path format string may be. Zero fields mean unbounded.
type Limits struct {
	MaxValueLen int
	MaxPathLen  int
}

func DefaultLimits() Limits {
	return Limits{
		MaxValueLen: DefaultMaxValueLen,
		MaxPathLen:  DefaultMaxPathLen,
	}
}
