package network

import "time"

// Config holds the process-wide parameters of a Network, exposed through
// Get/SetParameter. Field names match the parameter names recognized by the
// core (Dg, Lg, Eg, Ig, Amax, Amin, Arest, Winit) so reflection-free lookups
// stay simple in params.go.
type Config struct {
	Dg    float64 // activation decay rate, per ms
	Lg    float64 // learning rate, per ms
	Eg    float64 // external influence
	Ig    float64 // internal influence
	Amax  float64 // maximum activation
	Amin  float64 // minimum activation
	Arest float64 // rest activation
	Winit float64 // initial weight value for newly created connections

	// Size is the initial unit count. Units named later via AddUnit grow
	// the network past this size.
	Size int

	// ActivationSink and ExternalActivationSink are the two optional
	// logging callbacks invoked once per step. Either may be nil.
	ActivationSink         Sink
	ExternalActivationSink Sink

	// UsePhysicalTime selects the clock mode: true drives the worker off
	// the wall clock, false off a fixed simulated step period. Defaults to
	// true.
	UsePhysicalTime bool

	// MaxFreqHz is the initial throttle, converted to the minimum step
	// period at construction. Zero means "no throttling" and is only valid
	// when UsePhysicalTime is true.
	MaxFreqHz float64
}

// DefaultConfig returns a conservative parameter set: Dg=0.2, Lg=0.01,
// Eg=0.6, Ig=0.3, Amax=1.0, Amin=-0.2, Arest=-0.1, Winit=0.0, operating in
// physical time with no throttling, and a single unit. Callers reshape it
// with Option values or direct field assignment before calling New.
func DefaultConfig() Config {
	return Config{
		Dg:              0.2,
		Lg:              0.01,
		Eg:              0.6,
		Ig:              0.3,
		Amax:            1.0,
		Amin:            -0.2,
		Arest:           -0.1,
		Winit:           0.0,
		Size:            1,
		UsePhysicalTime: true,
		MaxFreqHz:       0,
	}
}

// Option mutates a Config in place; New applies Options over DefaultConfig
// in order.
type Option func(*Config)

// WithSize sets the initial unit count.
func WithSize(n int) Option {
	return func(c *Config) { c.Size = n }
}

// WithSinks installs the activation and external-activation logging sinks.
// Either may be nil to leave that channel unused.
func WithSinks(activation, external Sink) Option {
	return func(c *Config) {
		c.ActivationSink = activation
		c.ExternalActivationSink = external
	}
}

// WithParameters overrides the eight named dynamics parameters in one call.
func WithParameters(dg, lg, eg, ig, amax, amin, arest, winit float64) Option {
	return func(c *Config) {
		c.Dg, c.Lg, c.Eg, c.Ig = dg, lg, eg, ig
		c.Amax, c.Amin, c.Arest, c.Winit = amax, amin, arest, winit
	}
}

// WithSimulatedTime switches the network to simulated-time mode with the
// given step period. A zero period is accepted here and by New, but Start
// then logs and refuses to run, since it would imply an infinite update
// rate.
func WithSimulatedTime(period time.Duration) Option {
	return func(c *Config) {
		c.UsePhysicalTime = false
		c.MaxFreqHz = hzFromPeriod(period)
	}
}

// WithMaxFrequency sets the initial throttle, in Hz. 0 means unthrottled
// and is only meaningful in physical-time mode.
func WithMaxFrequency(hz float64) Option {
	return func(c *Config) { c.MaxFreqHz = hz }
}

func hzFromPeriod(period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(time.Second) / float64(period)
}
