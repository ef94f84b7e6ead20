package network

import "errors"

// Sentinel errors surfaced to callers. Race-with-growth (activating a unit
// index past the current size) and worker-internal failures are
// deliberately not sentinel errors: the first is tolerated (silently
// dropped, see ActivateUnitByID) and the second terminates the worker
// rather than propagating to a caller.
var (
	// ErrUnknownUnit is returned when a unit name is not present in the
	// network's name table (ActivateUnit, ActivateUnitDefault, UnitID).
	ErrUnknownUnit = errors.New("memnet: unknown unit")

	// ErrDuplicateUnit is returned by AddUnit when the requested name is
	// already in use. Two units may never share a name.
	ErrDuplicateUnit = errors.New("memnet: unit name already in use")

	// ErrRunning is returned by operations forbidden while the worker is
	// running: SetParameter, MaxFrequency, and UsePhysicalTime.
	ErrRunning = errors.New("memnet: network is running")

	// ErrUnknownParameter is returned by GetParameter/SetParameter for any
	// name outside {Dg, Lg, Eg, Ig, Amax, Amin, Arest, Winit}.
	ErrUnknownParameter = errors.New("memnet: unknown parameter")

	// ErrInvalidFrequency is returned by MaxFrequency(0) while the network
	// is configured for simulated time: a zero period has no sensible
	// meaning without a wall clock to throttle against, so this is a hard
	// error rather than a silently-ignored no-op.
	ErrInvalidFrequency = errors.New("memnet: zero frequency requires physical time")
)
