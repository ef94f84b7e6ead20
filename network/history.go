package network

import (
	"fmt"
	"strings"
)

// interval is one recorded externally-driven window for a unit: level held
// from start for duration.
type interval struct {
	level    float64
	start    Microseconds
	duration Microseconds
}

func (iv interval) end() Microseconds { return iv.start + iv.duration }

type unitHistory []interval

// Record enables or disables activation-history recording. While enabled,
// every ActivateUnit/ActivateUnitByID call appends to the per-unit history
// using the coalescing rule below.
func (n *Network) Record(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.record = enabled
	if n.history == nil {
		n.history = make([]unitHistory, len(n.names))
	}
}

// IsRecording reports whether history recording is currently enabled.
func (n *Network) IsRecording() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.record
}

// recordActivationLocked appends or coalesces a new history entry for unit
// id, following a three-way rule:
//   - no overlap with the previous entry -> append a new interval
//   - overlap but a different level -> trim the previous interval to end
//     at the new start, then append
//   - overlap at the same level -> extend the previous interval to cover
//     both
func (n *Network) recordActivationLocked(id int, level float64, start, duration Microseconds) {
	for len(n.history) <= id {
		n.history = append(n.history, nil)
	}
	hist := n.history[id]
	entry := interval{level: level, start: start, duration: duration}

	if len(hist) == 0 {
		n.history[id] = append(hist, entry)
		return
	}

	prev := &hist[len(hist)-1]
	if prev.end() < start {
		n.history[id] = append(hist, entry)
		return
	}
	if level != prev.level {
		prev.duration = start - prev.start
		n.history[id] = append(hist, entry)
		return
	}
	prev.duration = start + duration - prev.start
}

// SaveRecord renders a textual report of the network's parameters, unit
// names, and — when recording was enabled — each unit's recorded
// activation intervals in millisecond resolution.
func (n *Network) SaveRecord() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	var b strings.Builder

	freq := 0.0
	if period := n.clock.minPeriod.Load(); period > 0 {
		freq = 1_000_000.0 / float64(period)
	}

	fmt.Fprintf(&b, "Network Parameters\n------------------\n\n")
	fmt.Fprintf(&b, "- Dg: %v (activation decay per ms)\n", n.dg)
	fmt.Fprintf(&b, "- Lg: %v (learning rate per ms)\n", n.lg)
	fmt.Fprintf(&b, "- Eg: %v (external influence)\n", n.eg)
	fmt.Fprintf(&b, "- Ig: %v (internal influence)\n", n.ig)
	fmt.Fprintf(&b, "- Amax: %v (maximum activation)\n", n.amax)
	fmt.Fprintf(&b, "- Amin: %v (minimum activation)\n", n.amin)
	fmt.Fprintf(&b, "- Arest: %v (rest activation)\n", n.arest)
	fmt.Fprintf(&b, "- Winit: %v (initial weights)\n", n.winit)
	fmt.Fprintf(&b, "- MaxFreq: %v (maximum network update frequency -- 0 means no limit)\n\n", freq)

	fmt.Fprintf(&b, "Units\n-----\n\n")
	for _, name := range n.names {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	fmt.Fprintf(&b, "\nActivations\n-----------\n\n")
	for id, name := range n.names {
		if id >= len(n.history) || len(n.history[id]) == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s:\n", name)
		for _, iv := range n.history[id] {
			fmt.Fprintf(&b, "    - [%d,%d] at %v\n", iv.start/1000, iv.end()/1000, iv.level)
		}
	}

	return b.String()
}
