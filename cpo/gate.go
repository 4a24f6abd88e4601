package cpo

import "strings"

// GateFunc decides whether an operation targeting the given entity id may go
// out on the wire. A denied call never reaches the network and resolves to a
// local ServiceNotAvailable response.
type GateFunc func(entityId string) bool

func AllowAll(string) bool { return true }

// AllowPrefixes gates operations to entity ids starting with one of the
// given prefixes. With no prefixes everything is allowed.
func AllowPrefixes(prefixes ...string) GateFunc {
	if len(prefixes) == 0 {
		return AllowAll
	}
	allowed := make([]string, len(prefixes))
	copy(allowed, prefixes)
	return func(entityId string) bool {
		for _, prefix := range allowed {
			if strings.HasPrefix(entityId, prefix) {
				return true
			}
		}
		return false
	}
}

// SetGate replaces the operation gate. Meant for startup configuration, not
// for reconfiguration under live traffic.
func (c *Client) SetGate(gate GateFunc) {
	if gate == nil {
		gate = AllowAll
	}
	c.gate = gate
}
