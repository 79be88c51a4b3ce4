// Package protocol defines the scalar types and tunable constants shared
// across the congestion controller. It mirrors the role quic-go's own
// protocol package plays for the rest of that stack: small, dependency-free
// value types that every other package imports.
package protocol

import "time"

// PacketNumber is a QUIC packet number (sequence number). Negative values
// are used as sentinels (see InvalidPacketNumber) the same way quic-go's
// own protocol.PacketNumber does.
type PacketNumber int64

// InvalidPacketNumber is returned by hosts that have not yet sent or
// acknowledged anything on a path.
const InvalidPacketNumber PacketNumber = -1

// MaxPacketNumber returns the larger of two packet numbers.
func MaxPacketNumber(a, b PacketNumber) PacketNumber {
	if a > b {
		return a
	}
	return b
}

// MinPacketNumber returns the smaller of two packet numbers.
func MinPacketNumber(a, b PacketNumber) PacketNumber {
	if a < b {
		return a
	}
	return b
}

// ByteCount is a size in bytes, used for cwnd, ssthresh, and everything
// the controller meters.
type ByteCount uint64

// Bandwidth is measured in bytes per second.
type Bandwidth uint64

// BandwidthFromDelta computes a bandwidth estimate from a byte count
// delivered over a time interval.
func BandwidthFromDelta(bytes ByteCount, interval time.Duration) Bandwidth {
	if interval <= 0 {
		return 0
	}
	return Bandwidth(float64(bytes) / interval.Seconds())
}

// Congestion-control constants that must match the host's NewReno family
// (spec.md §6, "Constants (must match the host's NewReno family)").
const (
	// DefaultTCPMSS is the segment size the window constants below are
	// expressed in. The controller does not substitute it for a send MTU
	// that a host leaves at zero.
	DefaultTCPMSS ByteCount = 1252

	// CwinInitial is the initial congestion window, in bytes.
	CwinInitial ByteCount = 10 * DefaultTCPMSS

	// CwinMin is the minimum congestion window the controller will ever
	// produce (invariant 1 and 2 in spec.md §3).
	CwinMin ByteCount = 2 * DefaultTCPMSS

	// CwinUnbounded is the sentinel ssthresh value meaning "unbounded",
	// the Go equivalent of the source's UINT64_MAX.
	CwinUnbounded ByteCount = ^ByteCount(0)

	// TargetRenoRTT is the RTT at or below which the initial
	// congestion window is not inflated for long-delay links.
	TargetRenoRTT time.Duration = 100 * time.Millisecond

	// TargetSatelliteRTT caps the initial-window inflation applied to
	// very long (e.g. satellite) links.
	TargetSatelliteRTT time.Duration = 800 * time.Millisecond
)
