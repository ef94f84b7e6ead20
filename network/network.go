package network

import (
	"math"
	"strconv"
	"sync"

	"golang.org/x/exp/slices"
)

// Sink is a logging callback invoked once per step with the elapsed time
// and a read-only snapshot of a real-valued vector (either activations or
// external activations). Implementations must not retain the slice beyond
// the call and must return promptly: the worker invokes sinks
// synchronously, in step order, with non-decreasing timestamps.
type Sink func(elapsed Microseconds, values []float64)

// Microseconds is a simulated or physical elapsed-time value.
type Microseconds int64

// Network is a fixed-topology recurrent network of scalar units. See the
// package doc for the overall model; see step.go for the per-step kernel.
//
// A zero Network is not usable; construct one with New.
type Network struct {
	mu sync.Mutex

	// parameters, mutable only while !running (params.go)
	dg, lg, eg, ig    float64
	amax, amin, arest float64
	winit             float64

	// unit table: names never change index or get removed
	names []string
	index map[string]int

	// per-unit vectors, length == len(names) after the worker's next step
	rest []float64      // constant until Arest changes or Reset
	a    []float64      // activation
	e    []float64      // external activation
	tau  []Microseconds // external-activation decay counters
	in   []float64      // internal activation (derived, cached)
	nt   []float64      // net drive (derived, cached)

	// weight matrix, row-major len(names) x len(names); entries are NaN
	// when absent.
	w [][]float64

	history []unitHistory // per-unit recording, see history.go
	record  bool

	clock clockState // clock.go

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	activationSink Sink
	externalSink   Sink
}

// isAbsent reports whether a weight-matrix entry is the "absent" sentinel.
// Absent entries are represented as NaN rather than a separate boolean
// mask, so the weight matrix stays a plain [][]float64.
func isAbsent(w float64) bool { return math.IsNaN(w) }

// New constructs a Network from DefaultConfig with the given Options
// applied over it.
func New(opts ...Option) *Network {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a Network from an explicit Config, useful when
// the caller has already assembled one (e.g. DefaultConfig with a couple of
// fields overridden).
func NewWithConfig(cfg Config) *Network {
	n := &Network{
		dg: cfg.Dg, lg: cfg.Lg, eg: cfg.Eg, ig: cfg.Ig,
		amax: cfg.Amax, amin: cfg.Amin, arest: cfg.Arest, winit: cfg.Winit,
		index:          make(map[string]int),
		activationSink: cfg.ActivationSink,
		externalSink:   cfg.ExternalActivationSink,
	}
	n.clock = newClockState(cfg.UsePhysicalTime, cfg.MaxFreqHz)

	size := cfg.Size
	if size < 0 {
		size = 0
	}
	for i := 0; i < size; i++ {
		n.appendUnitLocked(syntheticName(i))
	}
	n.resetLocked()
	return n
}

func syntheticName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return string(letters[i])
	}
	return "unit" + strconv.Itoa(i)
}

// Reset clears activations, external activations, and weights back to
// their initial state: rest vector <- Arest, E <- 0, I <- 0, N <- 0,
// A <- Arest, W <- all-absent. The unit table and names are unaffected.
func (n *Network) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.resetLocked()
}

func (n *Network) resetLocked() {
	size := len(n.names)
	n.rest = fill(size, n.arest)
	n.a = fill(size, n.arest)
	n.e = fill(size, 0)
	n.tau = make([]Microseconds, size)
	n.in = fill(size, 0)
	n.nt = fill(size, 0)

	n.w = make([][]float64, size)
	for i := range n.w {
		n.w[i] = fill(size, math.NaN())
	}
}

func fill(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Size returns the current number of units.
func (n *Network) Size() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.names)
}

// UnitsNames returns a copy of the unit name table, in index order.
func (n *Network) UnitsNames() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.names)
}

// HasUnit reports whether name is a known unit.
func (n *Network) HasUnit(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.index[name]
	return ok
}

// UnitID resolves a unit name to its stable index, or ErrUnknownUnit.
func (n *Network) UnitID(name string) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id, ok := n.index[name]
	if !ok {
		return 0, ErrUnknownUnit
	}
	return id, nil
}

// Activations returns a copy of the current activation vector, safe to
// inspect without holding any lock.
func (n *Network) Activations() []float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.a)
}

// Weights returns a copy of the weight matrix. Absent entries are reported
// as math.NaN; callers should use math.IsNaN to test for "no connection".
func (n *Network) Weights() [][]float64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([][]float64, len(n.w))
	for i, row := range n.w {
		out[i] = slices.Clone(row)
	}
	return out
}
