package network

import (
	"log"
	"math"
	"time"
)

// Start spawns the worker goroutine and blocks until it has entered its
// loop. A second Start call while already running is a no-op (see
// DESIGN.md) rather than an error, since the worker's presence is itself
// the condition callers care about.
func (n *Network) Start() {
	n.mu.Lock()
	if n.running {
		n.mu.Unlock()
		return
	}
	if !n.clock.usePhysical.Load() && n.clock.minPeriod.Load() == 0 {
		n.mu.Unlock()
		log.Printf("memnet: refusing to start in simulated time with a zero min period")
		return
	}
	n.running = true
	n.stopCh = make(chan struct{})
	n.doneCh = make(chan struct{})
	n.clock.start(time.Now())
	n.mu.Unlock()

	readyCh := make(chan struct{})
	go n.run(readyCh)
	<-readyCh
}

// Stop cooperatively cancels the worker and joins it. It is safe to call
// Stop on a Network that was never started or is already stopped.
func (n *Network) Stop() {
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		return
	}
	stopCh := n.stopCh
	doneCh := n.doneCh
	n.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// IsRunning reports whether the worker goroutine is currently active.
func (n *Network) IsRunning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.running
}

// run is the worker's main loop. It must never let a panic escape: an
// internal invariant violation terminates the worker and flips the running
// flag false rather than crashing the controller goroutine.
func (n *Network) run(readyCh chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("memnet: worker terminated on internal error: %v", r)
		}
		n.mu.Lock()
		n.running = false
		n.mu.Unlock()
		close(n.doneCh)
	}()

	close(readyCh)

	for {
		select {
		case <-n.stopCh:
			return
		default:
		}

		dt := n.clock.waitTick()

		n.mu.Lock()
		n.step(dt)
		n.mu.Unlock()
	}
}

// growUnlocked extends every per-unit vector and the weight matrix to match
// the current length of the name table, filling new entries with their
// defaults: A <- Arest, rest <- Arest, E <- 0, tau <- 0, I <- 0, N <- 0,
// and a new all-absent row/column in W. Existing values are left untouched.
// Called at the top of every step, and immediately by AddUnit when the
// network is not running (so that non-running callers observe a consistent
// Size()/Activations() without waiting on a worker that doesn't exist).
func (n *Network) growUnlocked() {
	target := len(n.names)
	current := len(n.a)
	if target <= current {
		return
	}

	for i := current; i < target; i++ {
		n.rest = append(n.rest, n.arest)
		n.a = append(n.a, n.arest)
		n.e = append(n.e, 0)
		n.tau = append(n.tau, 0)
		n.in = append(n.in, 0)
		n.nt = append(n.nt, 0)
	}

	for i := range n.w {
		for j := current; j < target; j++ {
			n.w[i] = append(n.w[i], math.NaN())
		}
	}
	for i := current; i < target; i++ {
		row := make([]float64, target)
		for j := range row {
			row[j] = math.NaN()
		}
		n.w = append(n.w, row)
	}
}
