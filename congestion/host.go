package congestion

import (
	"net"
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// PathID is a stable, opaque handle for a QUIC path, supplied by the host.
// The controller never compares paths by pointer identity (spec.md §9,
// "Path identity") — it only ever stores and compares the PathID values
// the host itself assigned.
type PathID uint64

// PathStats is the snapshot of per-path information the controller reads
// from the host on each call (spec.md §6, "Consumed from the host").
type PathStats struct {
	SmoothedRTT                time.Duration
	MinRTT                     time.Duration
	SendMTU                    protocol.ByteCount
	MaxBandwidthEstimate       protocol.Bandwidth
	PacingPacketTime           time.Duration
	LastAckedDataFrameSentTime time.Time
	LastSenderLimitedTime      time.Time
	LocalAddr                  net.Addr
	PeerAddr                   net.Addr
}

// HystartFilter is the opaque min/max RTT sampler the host's hystart test
// reads and updates (spec.md §3, "rtt_filter"). The controller owns the
// storage (the RTTFilter field of its single State) but never interprets
// its contents; only
// Host.HystartTest does.
type HystartFilter struct {
	RTTMin      time.Duration
	RTTMax      time.Duration
	SampleCount int
	started     time.Time
}

// Host is everything the controller consumes from the QUIC stack that
// hosts it (spec.md §6). It never reaches into connection or path structs
// directly, matching the "pure-state" requirement on the NewReno simulator
// and keeping every other component host-agnostic and unit-testable.
type Host interface {
	// PathStats returns the current stats snapshot for path.
	PathStats(path PathID) PathStats
	// IsMultipathEnabled reports whether the connection is running more
	// than one path concurrently.
	IsMultipathEnabled() bool
	// IsTimestampEnabled reports whether QUIC timestamps (and therefore
	// one-way delay samples) are available.
	IsTimestampEnabled() bool
	// NumPaths reports how many paths the connection currently has.
	NumPaths() int
	// SequenceNumber returns the next outbound packet number on path.
	SequenceNumber(path PathID) protocol.PacketNumber
	// AckNumber returns the highest packet number acknowledged so far on
	// path.
	AckNumber(path PathID) protocol.PacketNumber
	// AckSentTime returns the send time of the packet that triggered the
	// most recent ACK on path.
	AckSentTime(path PathID) time.Time
	// UpdatePacingData asks the host to recompute its pacing rate for
	// path; slowStartUnbounded mirrors "is in slow start with unbounded
	// ssthresh", which some pacers use to allow short bursts.
	UpdatePacingData(path PathID, slowStartUnbounded bool)
	// HystartTest runs the host's hystart exit test against filter,
	// given the latest RTT-ish sample (either an RTT sample or a
	// one-way-delay sample, depending on tsEnabled), the path's pacing
	// packet time, and the current time.
	HystartTest(filter *HystartFilter, sample, pacingPacketTime time.Duration, now time.Time, tsEnabled bool) bool
}
