package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSimulatedElapsedIsExactMultipleOfPeriod covers testable property 6:
// in simulated-time mode, after k steps elapsed_time() == k * min_period
// exactly, with no wall-clock drift.
func TestSimulatedElapsedIsExactMultipleOfPeriod(t *testing.T) {
	n := New(WithSize(1), WithSimulatedTime(time.Millisecond))
	require.False(t, n.IsUsingPhysicalTime())
	require.EqualValues(t, 1000, n.InternalPeriod())

	n.Start()
	for n.ElapsedTime() < 10_000 {
		time.Sleep(time.Microsecond)
	}
	// Read while still running: after Stop, ElapsedTime reports 0.
	elapsed := n.ElapsedTime()
	n.Stop()

	require.Zero(t, elapsed%n.InternalPeriod())
}

// TestElapsedTimeIsZeroWhileStopped matches elapsed_time()'s own gating in
// memory_network.cpp: elapsed time is a property of the current run, so it
// reads 0 both before the first Start and after any Stop, never a stale or
// still-advancing value.
func TestElapsedTimeIsZeroWhileStopped(t *testing.T) {
	n := New(WithSize(1), WithSimulatedTime(time.Millisecond))
	n.Start()
	for n.ElapsedTime() < 5_000 {
		time.Sleep(time.Microsecond)
	}
	n.Stop()
	require.Zero(t, n.ElapsedTime())
}

func TestElapsedTimeResetsOnRestart(t *testing.T) {
	n := New(WithSize(1), WithSimulatedTime(time.Millisecond))
	n.Start()
	for n.ElapsedTime() < 5_000 {
		time.Sleep(time.Microsecond)
	}
	n.Stop()

	n.Start()
	immediately := n.ElapsedTime()
	n.Stop()
	require.Less(t, immediately, Microseconds(5_000))
}

func TestFrequencyReflectsConfiguredRateInSimulatedMode(t *testing.T) {
	n := New(WithSize(1), WithSimulatedTime(time.Millisecond))
	require.Equal(t, 1000, n.Frequency())
}

func TestFrequencyZeroWhenUnthrottledPhysical(t *testing.T) {
	n := New(WithSize(1))
	require.True(t, n.IsUsingPhysicalTime())
	require.Zero(t, n.InternalPeriod())
	require.Zero(t, n.Frequency())
}

// TestPhysicalModeThrottlesToMinPeriod is a lenient wall-clock check for
// scenario S6: with a minimum period configured, the measured frequency
// settles near the configured ceiling rather than running unbounded.
func TestPhysicalModeThrottlesToMinPeriod(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock timing test")
	}
	n := New(WithSize(1), WithMaxFrequency(200))
	n.Start()
	time.Sleep(500 * time.Millisecond)
	n.Stop()

	hz := n.Frequency()
	require.Greater(t, hz, 0)
	require.Less(t, hz, 400)
}

func TestUsePhysicalTimeRejectedWhileRunning(t *testing.T) {
	n := New(WithSimulatedTime(time.Millisecond))
	n.Start()
	defer n.Stop()
	require.ErrorIs(t, n.UsePhysicalTime(true), ErrRunning)
}

func TestMaxFrequencyRejectedWhileRunning(t *testing.T) {
	n := New()
	n.Start()
	defer n.Stop()
	require.ErrorIs(t, n.MaxFrequency(10), ErrRunning)
}
