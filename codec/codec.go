// Package codec defines the serializer boundary between the in-memory tree
// and concrete document encodings, and a registry of available backends.
// Backend packages register themselves at init time; importing one for its
// side effect is enough to make its format loadable by name or file suffix.
package codec

import (
	"sort"
	"strings"
	"sync"

	"github.com/dataio-format/go-dataio/tree"
)

// Decoder materializes a tree from a serialized document. A successful
// decode must produce a well-formed tree: unique object keys, no sharing
// between nodes.
type Decoder interface {
	Decode(d []byte) (*tree.Node, error)
}

// Encoder flattens a tree back into a serialized document. For any tree the
// accessor layer can build, Decode(Encode(t)) must equal t structurally.
type Encoder interface {
	Encode(n *tree.Node) ([]byte, error)
}

// Codec is one concrete backend: a Decoder/Encoder pair with a registry
// name and the file suffixes it claims.
type Codec interface {
	Decoder
	Encoder
	Name() string
	Suffixes() []string
}

var (
	mu        sync.RWMutex
	byName    = map[string]Codec{}
	bySuffix  = map[string]Codec{}
	nameOrder []string
)

// Register adds a backend to the registry. Later registrations win on name
// and suffix collisions.
func Register(c Codec) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := byName[c.Name()]; !ok {
		nameOrder = append(nameOrder, c.Name())
	}
	byName[c.Name()] = c
	for _, suffix := range c.Suffixes() {
		bySuffix[suffix] = c
	}
}

// ByName returns the backend registered under name.
func ByName(name string) (Codec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := byName[name]
	return c, ok
}

// BySuffix returns the backend claiming the file suffix, which may be given
// with or without the leading dot.
func BySuffix(suffix string) (Codec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	c, ok := bySuffix[suffix]
	return c, ok
}

// Names lists the registered backend names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, len(nameOrder))
	copy(res, nameOrder)
	sort.Strings(res)
	return res
}

// Suffixes lists every registered file suffix, sorted.
func Suffixes() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(bySuffix))
	for suffix := range bySuffix {
		res = append(res, suffix)
	}
	sort.Strings(res)
	return res
}
