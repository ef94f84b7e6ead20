package network

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot is a point-in-time, YAML-serializable dump of a Network's
// public state: unit names, activations, and the weight matrix with
// absent entries rendered as nil so they marshal as YAML null rather than
// the string "NaN" (which is not valid YAML 1.1/1.2 and round-trips
// poorly).
type Snapshot struct {
	Units       []string     `yaml:"units"`
	Activations []float64    `yaml:"activations"`
	Weights     [][]*float64 `yaml:"weights"`
}

// TakeSnapshot captures the network's current units, activations, and
// weights under a single lock acquisition, so the three views are
// mutually consistent.
func (n *Network) TakeSnapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	names := make([]string, len(n.names))
	copy(names, n.names)

	acts := make([]float64, len(n.a))
	copy(acts, n.a)

	weights := make([][]*float64, len(n.w))
	for i, row := range n.w {
		out := make([]*float64, len(row))
		for j, v := range row {
			if isAbsent(v) {
				continue
			}
			val := v
			out[j] = &val
		}
		weights[i] = out
	}

	return Snapshot{Units: names, Activations: acts, Weights: weights}
}

// WriteYAML marshals the snapshot as YAML to w.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}
