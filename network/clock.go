package network

import (
	"sync/atomic"
	"time"
)

// clockState holds the scheduling state: physical vs. simulated time,
// minimum step period throttling, and the measured update frequency.
//
// Once running, the worker goroutine is the sole owner of lastTimestamp,
// freqWindowStart, and stepsInFreqWindow: Start resets them before it
// spawns the worker, and nothing else reads or writes them, so they need
// no synchronization. The fields other goroutines do read — minPeriod,
// startedAtUnixNano, simulatedElapsed, measuredFreq — are atomics. This
// finer-grained scheme lets the worker sleep for the throttling delay
// without holding Network's step-state mutex across that sleep.
type clockState struct {
	usePhysical atomic.Bool // set at construction / UsePhysicalTime

	minPeriod atomic.Int64 // microseconds; 0 = unthrottled (physical only)

	startedAtUnixNano atomic.Int64 // 0 while never started
	simulatedElapsed  atomic.Int64 // microseconds, simulated-time mode only
	measuredFreq      atomic.Int64 // Hz, physical-time mode only

	// worker-goroutine-only bookkeeping
	lastTimestamp     time.Time
	freqWindowStart   time.Time
	stepsInFreqWindow int
}

const freqRefreshInterval = 200 * time.Millisecond

func newClockState(usePhysical bool, maxFreqHz float64) clockState {
	cs := clockState{}
	cs.usePhysical.Store(usePhysical)
	cs.minPeriod.Store(int64(periodFromHz(maxFreqHz)))
	return cs
}

func periodFromHz(hz float64) Microseconds {
	if hz <= 0 {
		return 0
	}
	return Microseconds(1_000_000.0 / hz)
}

// UsePhysicalTime switches the clock mode. Rejected while running, the same
// rule applied uniformly to every configuration mutator on Network.
func (n *Network) UsePhysicalTime(physical bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return ErrRunning
	}
	n.clock.usePhysical.Store(physical)
	return nil
}

// IsUsingPhysicalTime reports the current clock mode.
func (n *Network) IsUsingPhysicalTime() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.clock.usePhysical.Load()
}

// MaxFrequency sets the minimum step period from a target frequency in Hz.
// f=0 means "no throttling" and is only valid in physical-time mode
// (Open Question 3: treated here as a hard error, see DESIGN.md).
func (n *Network) MaxFrequency(hz float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return ErrRunning
	}
	if hz == 0 && !n.clock.usePhysical.Load() {
		return ErrInvalidFrequency
	}
	n.clock.minPeriod.Store(int64(periodFromHz(hz)))
	return nil
}

// InternalPeriod returns the configured minimum step period, in
// microseconds.
func (n *Network) InternalPeriod() Microseconds {
	return Microseconds(n.clock.minPeriod.Load())
}

// Frequency returns the most recently measured update frequency, in Hz,
// refreshed roughly every 200ms in physical-time mode. In simulated-time
// mode it reports the configured rate directly, since there is no
// wall-clock jitter to measure.
func (n *Network) Frequency() int {
	if !n.clock.usePhysical.Load() {
		period := n.clock.minPeriod.Load()
		if period == 0 {
			return 0
		}
		return int(1_000_000 / period)
	}
	return int(n.clock.measuredFreq.Load())
}

// ElapsedTime returns the time elapsed since Start, in microseconds, or 0
// if the network has never been started or is not currently running.
func (n *Network) ElapsedTime() Microseconds {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.elapsedLocked()
}

// elapsedLocked requires the caller to already hold n.mu (step's own
// call sites, and ActivateUnit's history recording, always do; ElapsedTime
// takes the lock itself before calling in). It returns 0 whenever the
// network is not running, matching elapsed_time()'s own gating in
// memory_network.cpp:179 — elapsed time is a property of the current run,
// not a clock that keeps advancing (or freezes at a stale value) once
// stopped.
func (n *Network) elapsedLocked() Microseconds {
	if !n.running {
		return 0
	}
	started := n.clock.startedAtUnixNano.Load()
	if started == 0 {
		return 0
	}
	if n.clock.usePhysical.Load() {
		return Microseconds(time.Since(time.Unix(0, started)).Microseconds())
	}
	return Microseconds(n.clock.simulatedElapsed.Load())
}

// waitTick advances the clock by one tick and returns the delta to feed
// into step(). In physical mode it sleeps, without holding Network's
// mutex, to respect minPeriod.
func (cs *clockState) waitTick() Microseconds {
	if !cs.usePhysical.Load() {
		period := Microseconds(cs.minPeriod.Load())
		cs.simulatedElapsed.Add(int64(period))
		return period
	}

	now := time.Now()
	if cs.lastTimestamp.IsZero() {
		cs.lastTimestamp = now
	}
	dt := now.Sub(cs.lastTimestamp)
	if min := time.Duration(cs.minPeriod.Load()) * time.Microsecond; min > 0 && dt < min {
		time.Sleep(min - dt)
		now = time.Now()
		dt = now.Sub(cs.lastTimestamp)
	}
	cs.lastTimestamp = now

	cs.stepsInFreqWindow++
	sinceFreq := now.Sub(cs.freqWindowStart)
	if sinceFreq >= freqRefreshInterval {
		hz := float64(cs.stepsInFreqWindow) * float64(time.Second) / float64(sinceFreq)
		cs.measuredFreq.Store(int64(hz))
		cs.freqWindowStart = now
		cs.stepsInFreqWindow = 0
	}

	return Microseconds(dt.Microseconds())
}

// start resets per-run clock bookkeeping. Called once by Start, under n.mu,
// before the worker goroutine is spawned.
func (cs *clockState) start(now time.Time) {
	cs.startedAtUnixNano.Store(now.UnixNano())
	cs.lastTimestamp = now
	cs.freqWindowStart = now
	cs.simulatedElapsed.Store(0)
	cs.stepsInFreqWindow = 0
	cs.measuredFreq.Store(0)
}
