package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
)

// AlgState is the NewReno phase (spec.md §3, "alg_state").
type AlgState int

const (
	// SlowStart grows cwnd exponentially on every ACK.
	SlowStart AlgState = iota
	// CongestionAvoidance grows cwnd by the scaled-increment rule.
	CongestionAvoidance
)

func (s AlgState) String() string {
	switch s {
	case SlowStart:
		return "SlowStart"
	case CongestionAvoidance:
		return "CongestionAvoidance"
	default:
		return "AlgState(?)"
	}
}

// RecoveryTrigger names what caused a loss signal (spec.md §4.1,
// "Recovery entry. Triggered by ECN-CE, repeat-loss, or timeout").
type RecoveryTrigger int

const (
	// RecoveryECNCE is an ECN congestion-experienced mark.
	RecoveryECNCE RecoveryTrigger = iota
	// RecoveryRepeat is a duplicate-ACK-triggered loss detection.
	RecoveryRepeat
	// RecoveryTimeout is a retransmission timeout.
	RecoveryTimeout
)

// State is one NewReno simulation instance (spec.md §3, "Algorithm
// state"). It never reaches into a connection or path directly — every
// external value it needs (mean smoothed RTT, the host's current
// sequence/ack-sent-time position, the path's send MTU) is passed in by
// the caller, which keeps State a pure, independently testable state
// machine exactly as spec.md §4.1 asks for ("does not directly refer to
// the connection and path variables").
type State struct {
	Cwnd             protocol.ByteCount
	Ssthresh         protocol.ByteCount
	AlgState         AlgState
	ResidualAck      protocol.ByteCount
	RecoveryStart    time.Time
	RecoverySequence protocol.PacketNumber
	RTTFilter        HystartFilter
}

// NewState returns a freshly reset State.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores State to its just-initialized values (spec.md §4.1,
// "State machine"; spec.md §3, "Lifecycle"). reset ∘ reset = reset holds
// trivially since Reset always writes every field.
func (s *State) Reset() {
	*s = State{
		Cwnd:     protocol.CwinInitial,
		Ssthresh: protocol.CwinUnbounded,
		AlgState: SlowStart,
	}
}

// SeedCwnd raises cwnd (and ssthresh) to bytesInFlight if the sender is
// still in unbounded-ssthresh slow start and bytesInFlight is larger than
// the current cwnd (spec.md §4.1, "Seed"). notify(SeedCwin, b) when
// b ≤ cwnd is a no-op, matching the law in spec.md §8.
func (s *State) SeedCwnd(bytesInFlight protocol.ByteCount) {
	if s.AlgState == SlowStart && s.Ssthresh == protocol.CwinUnbounded && bytesInFlight > s.Cwnd {
		s.Cwnd = bytesInFlight
		s.Ssthresh = bytesInFlight
		s.AlgState = CongestionAvoidance
	}
	s.clampCwnd()
}

// OnAck applies an acknowledgement of bytesAcked bytes on the primary
// path (spec.md §4.1, "Slow start" / "Congestion avoidance"). sendMTU is
// the primary path's send MTU; meanSRTT is the controller's current
// smoothed RTT (the mean of the two paths' smoothed RTTs, or the primary
// path's own before a second path is known); minCATick is Config.MinCATick.
func (s *State) OnAck(bytesAcked, sendMTU protocol.ByteCount, meanSRTT, minCATick time.Duration) {
	switch s.AlgState {
	case SlowStart:
		s.Cwnd += bytesAcked
		if s.Cwnd >= s.Ssthresh {
			s.AlgState = CongestionAvoidance
		}
	default:
		s.onAckCongestionAvoidance(bytesAcked, sendMTU, meanSRTT, minCATick)
	}
	s.clampCwnd()
}

func (s *State) onAckCongestionAvoidance(bytesAcked, sendMTU protocol.ByteCount, meanSRTT, minCATick time.Duration) {
	if s.Cwnd == 0 {
		s.Cwnd = protocol.CwinMin
	}
	completeDelta := protocol.ByteCount(uint64(bytesAcked)*uint64(sendMTU)) + s.ResidualAck
	s.ResidualAck = completeDelta % s.Cwnd

	ratio := 1.0
	if minCATick > 0 {
		ratio = utils.ClampUnitFloat(meanSRTT.Seconds() / minCATick.Seconds())
	}
	increment := ratio * float64(completeDelta) / float64(s.Cwnd)
	s.Cwnd += protocol.ByteCount(increment)
}

// shouldEnterRecovery applies the at-most-once-per-RTT recovery gate
// (spec.md §4.1, "Recovery entry"). multipath selects which monotonicity
// check backs the gate: ack-number order for a single path, ack-sent-time
// order across multiple paths.
func (s *State) shouldEnterRecovery(now time.Time, meanSRTT time.Duration, ackNumber protocol.PacketNumber, ackSentTime time.Time, multipath bool) bool {
	if now.Sub(s.RecoveryStart) > meanSRTT {
		return true
	}
	if multipath {
		return !s.RecoveryStart.After(ackSentTime)
	}
	return s.RecoverySequence <= ackNumber
}

// OnLossSignal applies a loss-style notification (ECN-CE, repeat, or
// timeout). It returns true if the controller entered recovery, in which
// case the caller (the dispatcher) must wipe the interval ledger
// (spec.md §4.1, "Recovery entry ... MUST also trigger a full
// interval-ledger wipe").
func (s *State) OnLossSignal(trigger RecoveryTrigger, now time.Time, meanSRTT time.Duration, sequenceNumber, ackNumber protocol.PacketNumber, ackSentTime time.Time, multipath bool) bool {
	if !s.shouldEnterRecovery(now, meanSRTT, ackNumber, ackSentTime, multipath) {
		return false
	}
	s.Ssthresh = utils.MaxByteCount(s.Cwnd/2, protocol.CwinMin)
	if trigger == RecoveryTimeout {
		s.Cwnd = protocol.CwinMin
		s.AlgState = SlowStart
	} else {
		s.Cwnd = s.Ssthresh
		s.AlgState = CongestionAvoidance
	}
	s.ResidualAck = 0
	s.RecoveryStart = now
	s.RecoverySequence = sequenceNumber
	s.clampCwnd()
	return true
}

// OnSpuriousRepeat rolls back a recovery entry that a later ACK proved
// was triggered by a spurious (non-actual) loss (spec.md §4.1,
// "Spurious-repeat rollback"). Applying it when cwnd ≥ 2·ssthresh is a
// no-op, matching the idempotence law in spec.md §8.
func (s *State) OnSpuriousRepeat(now time.Time, meanSRTT time.Duration, ackNumber protocol.PacketNumber, ackSentTime time.Time, multipath bool) {
	contradictsGate := now.Sub(s.RecoveryStart) < meanSRTT
	if multipath {
		contradictsGate = contradictsGate && s.RecoveryStart.After(ackSentTime)
	} else {
		contradictsGate = contradictsGate && s.RecoverySequence > ackNumber
	}
	if !contradictsGate {
		return
	}
	if s.Ssthresh != protocol.CwinUnbounded && s.Cwnd < 2*s.Ssthresh {
		s.Cwnd = 2 * s.Ssthresh
		s.AlgState = CongestionAvoidance
	}
	s.clampCwnd()
}

// RaiseCwndFloor raises cwnd to minCwnd if that is larger, without
// touching ssthresh or alg_state. It backs both the RTT-sample initial-
// window inflation and the bandwidth-sample floor in spec.md §4.5 — both
// are raw-state pokes the dispatcher applies directly, exactly as
// original_source/picoquic/new_tonopah.c does (neither goes through
// picoquic_new_tonopah_sim_notify).
func (s *State) RaiseCwndFloor(minCwnd protocol.ByteCount) bool {
	if minCwnd <= s.Cwnd {
		return false
	}
	s.Cwnd = minCwnd
	s.clampCwnd()
	return true
}

// ExitSlowStartToCA forces an immediate slow-start exit, as hystart does
// on a positive test (spec.md §4.5, "RttSample").
func (s *State) ExitSlowStartToCA() {
	s.Ssthresh = s.Cwnd
	s.AlgState = CongestionAvoidance
}

// IsSsthreshUnbounded reports whether ssthresh is still at its initial,
// "unbounded" sentinel value.
func (s *State) IsSsthreshUnbounded() bool {
	return s.Ssthresh == protocol.CwinUnbounded
}

func (s *State) clampCwnd() {
	if s.Cwnd < protocol.CwinMin {
		s.Cwnd = protocol.CwinMin
	}
	if s.Ssthresh != protocol.CwinUnbounded && s.Ssthresh < protocol.CwinMin {
		s.Ssthresh = protocol.CwinMin
	}
}
