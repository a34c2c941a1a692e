package mdswagger

import (
	"strconv"
	"sync/atomic"
)

// DefaultIDPrefix is the DOM id prefix of generated viewer containers.
const DefaultIDPrefix = "swagger-ui"

// IDGenerator issues unique element ids ("swagger-ui-1", "swagger-ui-2", ...).
// Share one generator across a whole build; it never resets.
type IDGenerator struct {
	prefix string
	n      atomic.Uint64
}

// NewIDGenerator returns a generator whose first id is <prefix>-1.
// An empty prefix uses DefaultIDPrefix.
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &IDGenerator{prefix: prefix}
}

// Next returns the next id. Safe for concurrent use.
func (g *IDGenerator) Next() string {
	return g.prefix + "-" + strconv.FormatUint(g.n.Add(1), 10)
}

// Issued reports how many ids have been handed out.
func (g *IDGenerator) Issued() uint64 {
	return g.n.Load()
}
