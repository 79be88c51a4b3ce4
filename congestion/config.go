package congestion

import "time"

// Config is the controller's static configuration surface (spec.md §6,
// "Configuration surface"). It is validated once by NewController and is
// never mutated afterwards — there is deliberately no setter, so
// Config.RequiredIntervals cannot change at runtime any more than the
// original's compile-time INTERVALS_REQUIRED constant could (spec.md §4.3).
type Config struct {
	// Ratio is the dominant path's share of cwnd, in (0.5, 1). Defaults
	// to 2/3.
	Ratio float64

	// MinTick and MaxTick bound the dominance-rotation tick interval;
	// MinCATick is the divisor of the congestion-avoidance increment's
	// srtt/MinCATick scaling (spec.md §3, "min_tick, min_ca_tick, max_tick").
	MinTick   time.Duration
	MinCATick time.Duration
	MaxTick   time.Duration

	// RequiredIntervals is REQUIRED in spec.md §4.3: the number of
	// contiguous, finalized trailing intervals the FQ aggregator needs
	// before it renders a verdict.
	RequiredIntervals int

	// FQRTTGapThreshold is the Δ threshold in spec.md §4.3's FQ decision
	// rule: Δ > FQRTTGapThreshold ⟹ FQ detected.
	FQRTTGapThreshold time.Duration

	// RecoveryMultiplier is the 7/8 factor spec.md §4.4 applies to cwnd
	// when FQ is detected in congestion avoidance.
	RecoveryMultiplier float64

	// SwapDominanceOnTick controls spec.md §9 Open Question 1. The
	// source that runs leaves this disabled (a swap block is present but
	// commented out); default false matches the code that actually runs.
	SwapDominanceOnTick bool
}

// DefaultConfig returns the configuration matching
// original_source/picoquic/new_tonopah.c, the more complete of the two
// source variants (see DESIGN.md).
func DefaultConfig() Config {
	return Config{
		Ratio:              2.0 / 3.0,
		MinTick:            0,
		MinCATick:          50 * time.Millisecond,
		MaxTick:            1 * time.Second,
		RequiredIntervals:  1,
		FQRTTGapThreshold:  5 * time.Millisecond,
		RecoveryMultiplier: 7.0 / 8.0,
		SwapDominanceOnTick: false,
	}
}

// ringCapacity is the maximum number of interval records the ledger holds
// at once (spec.md §3 invariant 4: "length never exceeds 4·REQUIRED+1").
func (c Config) ringCapacity() int {
	return 4*c.RequiredIntervals + 1
}

// validate fills in any zero-valued fields with their defaults and replaces
// a Ratio outside (0.5, 1) or a RecoveryMultiplier outside (0, 1) with its
// default, so a zero-value Config{} behaves like DefaultConfig() rather
// than silently disabling the controller.
func (c Config) validate() Config {
	d := DefaultConfig()
	if c.Ratio <= 0.5 || c.Ratio >= 1 {
		c.Ratio = d.Ratio
	}
	if c.MinCATick <= 0 {
		c.MinCATick = d.MinCATick
	}
	if c.MaxTick <= 0 {
		c.MaxTick = d.MaxTick
	}
	if c.MinTick < 0 {
		c.MinTick = d.MinTick
	}
	if c.RequiredIntervals <= 0 {
		c.RequiredIntervals = d.RequiredIntervals
	}
	if c.FQRTTGapThreshold <= 0 {
		c.FQRTTGapThreshold = d.FQRTTGapThreshold
	}
	if c.RecoveryMultiplier <= 0 || c.RecoveryMultiplier >= 1 {
		c.RecoveryMultiplier = d.RecoveryMultiplier
	}
	return c
}
