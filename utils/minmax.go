package utils

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// Max returns the maximum of two Ints
func Max(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// MaxUint64 returns the maximum of two uint64
func MaxUint64(a, b uint64) uint64 {
	if a < b {
		return b
	}
	return a
}

// Min returns the minimum of two Ints
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MinUint64 returns the minimum of two uint64
func MinUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// MaxDuration returns the max duration
func MaxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}

// MinDuration returns the minimum duration
func MinDuration(a, b time.Duration) time.Duration {
	if a > b {
		return b
	}
	return a
}

// ClampDuration clamps d to [lo, hi].
func ClampDuration(d, lo, hi time.Duration) time.Duration {
	return MaxDuration(lo, MinDuration(d, hi))
}

// AbsDuration returns the absolute value of a time duration
func AbsDuration(d time.Duration) time.Duration {
	if d >= 0 {
		return d
	}
	return -d
}

// MaxByteCount returns the max of two byte counts.
func MaxByteCount(a, b protocol.ByteCount) protocol.ByteCount {
	if a > b {
		return a
	}
	return b
}

// MinByteCount returns the min of two byte counts.
func MinByteCount(a, b protocol.ByteCount) protocol.ByteCount {
	if a < b {
		return a
	}
	return b
}

// ClampUnitFloat clamps x to [0, 1], the scaling factor used by the
// congestion-avoidance increment (spec.md §4.1).
func ClampUnitFloat(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
