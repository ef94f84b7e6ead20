package network

// SetParameter mutates one of the eight named dynamics parameters
// (Dg, Lg, Eg, Ig, Amax, Amin, Arest, Winit). Rejected with ErrRunning
// while the worker is active, and with ErrUnknownParameter for any other
// name. Setting Arest also refills the rest vector and the current
// activation vector to the new rest value.
func (n *Network) SetParameter(name string, value float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return ErrRunning
	}
	switch name {
	case "Dg":
		n.dg = value
	case "Lg":
		n.lg = value
	case "Eg":
		n.eg = value
	case "Ig":
		n.ig = value
	case "Amax":
		n.amax = value
	case "Amin":
		n.amin = value
	case "Arest":
		n.arest = value
		for i := range n.rest {
			n.rest[i] = value
			n.a[i] = value
		}
	case "Winit":
		n.winit = value
	default:
		return ErrUnknownParameter
	}
	return nil
}

// GetParameter returns the current value of a named parameter, or
// ErrUnknownParameter if name is not one of the eight recognized names.
func (n *Network) GetParameter(name string) (float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch name {
	case "Dg":
		return n.dg, nil
	case "Lg":
		return n.lg, nil
	case "Eg":
		return n.eg, nil
	case "Ig":
		return n.ig, nil
	case "Amax":
		return n.amax, nil
	case "Amin":
		return n.amin, nil
	case "Arest":
		return n.arest, nil
	case "Winit":
		return n.winit, nil
	default:
		return 0, ErrUnknownParameter
	}
}
