package network

import "math"

// step advances the network by one discrete tick of duration dt
// (microseconds, converted to fractional dtMs for the rate-scaled terms).
// Callers must hold n.mu. This implements the nine-stage procedure, in
// order:
//
//  1. connection creation
//  2. internal activations
//  3. net drive
//  4. activation dynamics (the drive term, applied once per step
//     regardless of dt — see DESIGN.md, Open Question decisions, item 1)
//  5. decay toward rest
//  6. clamp
//  7. log activations / external activations
//  8. Hebbian weight update, gated on external co-activation
//  9. external-activation decay
//
// A network with zero units performs no work and returns immediately.
func (n *Network) step(dt Microseconds) {
	n.growUnlocked()

	size := len(n.names)
	if size == 0 {
		return
	}
	dtMs := float64(dt) / 1000.0

	n.establishConnectionsUnlocked(size)
	n.computeInternalActivationsUnlocked(size)

	for i := 0; i < size; i++ {
		n.nt[i] = n.eg*n.e[i] + n.ig*n.in[i]
	}

	for i := 0; i < size; i++ {
		if n.nt[i] > 0 {
			n.a[i] += n.nt[i] * (n.amax - n.a[i])
		} else {
			n.a[i] += n.nt[i] * (n.a[i] - n.amin)
		}
	}

	for i := 0; i < size; i++ {
		n.a[i] -= n.dg * dtMs * (n.a[i] - n.rest[i])
	}

	for i := 0; i < size; i++ {
		n.a[i] = math.Min(n.amax, math.Max(n.amin, n.a[i]))
	}

	n.emitLogsUnlocked()

	n.updateWeightsUnlocked(size, dtMs)
	n.decayExternalUnlocked(size, dt)
}

// establishConnectionsUnlocked creates a Winit weight between every pair of
// units (i<j) that are both currently externally active and not yet
// connected. This is the only place a weight transitions from absent to
// defined (an invariant).
func (n *Network) establishConnectionsUnlocked(size int) {
	for i := 0; i < size-1; i++ {
		if n.e[i] == 0 {
			continue
		}
		for j := i + 1; j < size; j++ {
			if n.e[j] == 0 {
				continue
			}
			if isAbsent(n.w[i][j]) {
				n.w[i][j] = n.winit
				n.w[j][i] = n.winit
			}
		}
	}
}

func (n *Network) computeInternalActivationsUnlocked(size int) {
	for i := 0; i < size; i++ {
		sum := 0.0
		row := n.w[i]
		for j := 0; j < size; j++ {
			if isAbsent(row[j]) {
				continue
			}
			sum += row[j] * n.a[j]
		}
		n.in[i] = sum
	}
}

func (n *Network) updateWeightsUnlocked(size int, dtMs float64) {
	for i := 0; i < size; i++ {
		if n.e[i] == 0 {
			continue
		}
		row := n.w[i]
		for j := 0; j < size; j++ {
			if isAbsent(row[j]) || n.e[j] == 0 {
				continue
			}
			p := n.a[i] * n.a[j]
			if p > 0 {
				row[j] += n.lg * dtMs * p * (1 - row[j])
			} else {
				row[j] += n.lg * dtMs * p * (1 + row[j])
			}
		}
	}
}

func (n *Network) decayExternalUnlocked(size int, dt Microseconds) {
	for i := 0; i < size; i++ {
		if n.tau[i] > 0 {
			n.tau[i] -= dt
		} else {
			n.e[i] = 0
		}
	}
}

func (n *Network) emitLogsUnlocked() {
	elapsed := n.elapsedLocked()
	if n.activationSink != nil {
		n.activationSink(elapsed, n.a)
	}
	if n.externalSink != nil {
		n.externalSink(elapsed, n.e)
	}
}
