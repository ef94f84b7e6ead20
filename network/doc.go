/*
Package network implements a real-time associative memory network: a
fixed-topology recurrent network of scalar "units" whose activations evolve
continuously under external stimulation and mutual excitation/inhibition,
with Hebbian weight updates between co-activated units.

# Overview

Unlike a traditional feed-forward artificial network trained offline in
batches, a Network here is a long-lived object: an experiment driver
stimulates named units on a millisecond timeline while a background worker
goroutine advances the whole network at a bounded update frequency, so that
activation traces can be sampled for plotting or recording as the simulation
runs.

# Core dynamics

Each step:
  - establishes new (absent -> Winit) connections between any two units that
    are simultaneously externally driven,
  - derives an internal activation per unit from the weighted sum of its
    neighbors' activations,
  - blends external and internal drive into a net drive,
  - pushes each unit's activation toward Amax or Amin according to the sign
    of its net drive, then decays it toward rest,
  - clamps activations into [Amin, Amax],
  - reports the step through two optional logging sinks,
  - applies a Hebbian update to every weight whose two endpoints are
    currently externally co-activated,
  - decays each unit's external-activation timer, zeroing the external drive
    once it expires.

# Concurrency model

A Network is safe for concurrent use. One worker goroutine owns step
execution; all other access (stimulation, parameter reads, snapshots,
lifecycle control) goes through exported methods that serialize with the
worker via a single mutex, mirroring the "single guarded state bundle plus a
cooperative run flag" design used throughout this module.
*/
package network
