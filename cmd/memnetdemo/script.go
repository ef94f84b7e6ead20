package main

import (
	"time"

	"github.com/lucidmesh/memnet/network"
)

// cue is one scripted stimulation: at t=after from the network's start,
// drive unit Name at Level for Duration. This is the hardcoded stand-in for
// a real experiment file — see the package comment for why there is no
// parser here.
type cue struct {
	Name     string
	Level    float64
	Duration time.Duration
	After    time.Duration
}

// demoScript builds six units ("sun", "warmth", "beach", "rain", "cold",
// "umbrella") and co-activates "sun"/"warmth"/"beach" together, then later
// "rain"/"cold"/"umbrella" together, so a viewer watching the dashboard sees
// two clusters of positive weight form while the groups stay uncorrelated
// with each other.
func demoScript() (units []string, cues []cue, totalRuntime time.Duration) {
	units = []string{"sun", "warmth", "beach", "rain", "cold", "umbrella"}
	cues = []cue{
		{Name: "sun", Level: 1.0, Duration: 300 * time.Millisecond, After: 0},
		{Name: "warmth", Level: 1.0, Duration: 300 * time.Millisecond, After: 0},
		{Name: "beach", Level: 1.0, Duration: 300 * time.Millisecond, After: 0},

		{Name: "rain", Level: 1.0, Duration: 300 * time.Millisecond, After: 500 * time.Millisecond},
		{Name: "cold", Level: 1.0, Duration: 300 * time.Millisecond, After: 500 * time.Millisecond},
		{Name: "umbrella", Level: 1.0, Duration: 300 * time.Millisecond, After: 500 * time.Millisecond},

		{Name: "sun", Level: 1.0, Duration: 300 * time.Millisecond, After: 1000 * time.Millisecond},
	}
	totalRuntime = 1500 * time.Millisecond
	return units, cues, totalRuntime
}

func buildDemoNetwork() *network.Network {
	units, _, _ := demoScript()
	n := network.New(
		network.WithSize(0),
		network.WithMaxFrequency(60),
	)
	for _, name := range units {
		if _, err := n.AddUnit(name); err != nil {
			panic(err) // names are hardcoded and known-distinct
		}
	}
	return n
}

// runScript schedules every cue against an already-started network using
// simple timers; the caller is responsible for Start/Stop.
func runScript(n *network.Network, cues []cue) {
	for _, c := range cues {
		c := c
		time.AfterFunc(c.After, func() {
			_ = n.ActivateUnit(c.Name, c.Level, c.Duration)
		})
	}
}
