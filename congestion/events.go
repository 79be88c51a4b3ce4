package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// Event is the tagged union of signals the host delivers to the
// controller (spec.md §4.5, §9 "tagged event union"). Each variant
// carries only the payload fields that make sense for it, rather than
// the source's single struct with every field present on every call.
type Event interface {
	// eventPath returns the path the event is about.
	eventPath() PathID
	// eventNow returns the host-supplied current time for this call.
	eventNow() time.Time
	// isEvent is unexported so Event is a closed sum type: no package
	// outside congestion can add a new variant, which is what lets the
	// dispatcher's type switch treat "unknown kind" as unreachable
	// (spec.md §7, error kind 3).
	isEvent()
}

type eventBase struct {
	Path PathID
	Now  time.Time
}

func (e eventBase) eventPath() PathID  { return e.Path }
func (e eventBase) eventNow() time.Time { return e.Now }
func (eventBase) isEvent()             {}

// AckEvent reports that BytesAcked bytes were newly acknowledged on Path.
type AckEvent struct {
	eventBase
	BytesAcked protocol.ByteCount
}

// EcnCeEvent reports an ECN congestion-experienced mark on Path.
type EcnCeEvent struct {
	eventBase
}

// RepeatEvent reports a repeat (duplicate-ACK-triggered) loss detection
// on Path.
type RepeatEvent struct {
	eventBase
}

// TimeoutEvent reports a retransmission timeout on Path.
type TimeoutEvent struct {
	eventBase
}

// SpuriousRepeatEvent reports that a previously-signaled loss has since
// been proven spurious by a late-arriving ACK.
type SpuriousRepeatEvent struct {
	eventBase
}

// RTTSampleEvent carries a fresh RTT (or, when timestamps are enabled,
// one-way delay) sample for Path.
type RTTSampleEvent struct {
	eventBase
	RTTSample   time.Duration
	OneWayDelay time.Duration
}

// BandwidthSampleEvent reports that the host's bandwidth estimator has a
// fresh estimate for Path.
type BandwidthSampleEvent struct {
	eventBase
}

// CwndBlockedEvent reports that the sender was cwnd-limited on Path. It is
// a no-op for this controller (spec.md §4.5) but is modeled explicitly so
// the dispatcher's type switch stays exhaustive.
type CwndBlockedEvent struct {
	eventBase
}

// SeedCwndEvent asks the controller to raise cwnd (and ssthresh) to
// BytesInFlight and enter congestion avoidance, if it is still in
// unbounded-ssthresh slow start and BytesInFlight is larger than cwnd
// (spec.md §4.1, "Seed"). Otherwise it has no effect.
type SeedCwndEvent struct {
	eventBase
	BytesInFlight protocol.ByteCount
}

// ResetEvent asks the controller to reset all algorithm state on Path, as
// if freshly initialized.
type ResetEvent struct {
	eventBase
}
