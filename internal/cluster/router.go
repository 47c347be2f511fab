package cluster

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
)

var ErrNoEndpoints = errors.New("at least one endpoint is required")

// Router assigns each SKU to one node out of a fixed, ordered endpoint
// list. The assignment is a pure function of the SKU bytes and the list:
// the first eight bytes of the SKU's SHA-256 digest, read big-endian,
// modulo the node count. This is deliberately not a consistent-hash ring;
// changing the endpoint list (count or order) remaps almost every SKU.
type Router struct {
	endpoints []string
}

func NewRouter(endpoints []string) (*Router, error) {
	if len(endpoints) == 0 {
		return nil, ErrNoEndpoints
	}
	return &Router{endpoints: append([]string(nil), endpoints...)}, nil
}

// NodeIndex returns the index of the node owning sku.
func (r *Router) NodeIndex(sku string) int {
	digest := sha256.Sum256([]byte(sku))
	return int(binary.BigEndian.Uint64(digest[:8]) % uint64(len(r.endpoints)))
}

// EndpointFor returns the endpoint of the node owning sku.
func (r *Router) EndpointFor(sku string) string {
	return r.endpoints[r.NodeIndex(sku)]
}

// Endpoints returns a copy of the configured endpoint list in order.
func (r *Router) Endpoints() []string {
	return append([]string(nil), r.endpoints...)
}
