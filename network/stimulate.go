package network

import "time"

// defaultActivationLevel and defaultActivationDuration are the defaults for
// ActivateUnit's level/duration parameters:
// activate_unit(id|name, level=1.0, duration=200ms).
const defaultActivationLevel = 1.0

var defaultActivationDuration = 200 * time.Millisecond

// AddUnit appends a new named unit and returns its stable index. While
// running, the worker resizes its internal vectors at the top of its next
// step (lifecycle.go growUnlocked), preserving all prior values; when the
// network is not running they are grown immediately.
// Returns ErrDuplicateUnit if the name is already taken.
func (n *Network) AddUnit(name string) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.index[name]; ok {
		return 0, ErrDuplicateUnit
	}
	return n.appendUnitLocked(name), nil
}

// appendUnitLocked grows only the name table; the per-step vectors and
// weight matrix are grown lazily by growUnlocked so that a running worker
// observes the new unit at a well-defined point (the top of a step) rather
// than mid-step.
func (n *Network) appendUnitLocked(name string) int {
	id := len(n.names)
	n.names = append(n.names, name)
	n.index[name] = id
	if !n.running {
		// Not running: there is no worker to perform the lazy grow, so do
		// it immediately to keep Size()/Activations()/Weights() coherent
		// between calls made purely on the controller side.
		n.growUnlocked()
	}
	return id
}

// ActivateUnit sets the external activation level and decay timer for the
// named unit. Resolves name to an index first; returns ErrUnknownUnit if
// the name is not registered. If the name was just registered by AddUnit
// while the worker is running and hasn't grown its vectors yet, the
// activation is silently dropped — the same race-with-growth contract
// ActivateUnitByID honors (see activateUnlocked).
func (n *Network) ActivateUnit(name string, level float64, duration time.Duration) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	id, ok := n.index[name]
	if !ok {
		return ErrUnknownUnit
	}
	n.activateUnlocked(id, level, duration)
	return nil
}

// ActivateUnitByID behaves like ActivateUnit but addresses the unit by its
// stable index. If id is at or past the network's current internal size —
// which can happen when AddUnit was called on the controller side but the
// worker has not yet observed the growth — the call is silently dropped,
// honoring the race-with-growth contract.
func (n *Network) ActivateUnitByID(id int, level float64, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activateUnlocked(id, level, duration)
}

// ActivateUnitDefault activates name with the default level (1.0) and
// duration (200ms).
func (n *Network) ActivateUnitDefault(name string) error {
	return n.ActivateUnit(name, defaultActivationLevel, defaultActivationDuration)
}

// activateUnlocked applies the activation to unit id, or silently drops it
// if id is at or past the network's current internal vector size: a unit
// whose name was just registered (AddUnit appends to the name table
// immediately, even while running) but whose vectors the worker hasn't
// grown into yet. Both ActivateUnit and ActivateUnitByID funnel through
// here so neither path can bypass the guard.
func (n *Network) activateUnlocked(id int, level float64, duration time.Duration) {
	if id < 0 || id >= len(n.a) {
		return
	}
	if n.record {
		n.recordActivationLocked(id, level, n.elapsedLocked(), Microseconds(duration.Microseconds()))
	}
	n.e[id] = level
	n.tau[id] = Microseconds(duration.Microseconds())
}
