package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// onAck handles AckEvent (spec.md §4.5, "Ack"). It is guarded by the
// sender-limited check: an ACK from an epoch where the sender was
// application-limited rather than congestion-limited carries no signal.
func (c *Controller) onAck(ev AckEvent, result *NotifyResult) {
	stats := c.host.PathStats(ev.Path)
	if !stats.LastAckedDataFrameSentTime.After(stats.LastSenderLimitedTime) {
		return
	}

	primary := c.host.PathStats(c.pathA)
	c.state.OnAck(ev.BytesAcked, primary.SendMTU, c.meanSRTT(), c.cfg.MinCATick)

	if c.havePathB {
		slot := c.slotOf(ev.Path)
		ackNum := c.host.AckNumber(ev.Path)
		if rec, ok := c.ledger.FindAndFinalizePredecessor(slot, ackNum); ok {
			c.ledger.RecordAck(rec, slot, ev.BytesAcked, stats.SmoothedRTT, ev.Now)
		}
	}

	c.tickDominance(ev.Now)
	c.writeSplitCwnd(result)
}

// onEcnCE handles EcnCeEvent (spec.md §4.5, "EcnCe"): CE on the
// submissive path is treated like a loss signal; CE on the dominant path
// is expected under the intentional asymmetry and is ignored.
func (c *Controller) onEcnCE(ev EcnCeEvent, result *NotifyResult) {
	if ev.Path == c.dominant {
		return
	}
	c.onLoss(RecoveryECNCE, ev.Now, result)
}

// onLoss handles RepeatEvent, TimeoutEvent, and the submissive-path
// EcnCeEvent case (spec.md §4.5, "Repeat, Timeout").
func (c *Controller) onLoss(trigger RecoveryTrigger, now time.Time, result *NotifyResult) {
	entered := c.state.OnLossSignal(
		trigger, now, c.meanSRTT(),
		c.host.SequenceNumber(c.pathA), c.host.AckNumber(c.pathA), c.host.AckSentTime(c.pathA),
		c.isMultipathGated(),
	)
	if entered {
		c.ledger.Wipe()
	}
	c.tickDominance(now)
	c.writeSplitCwnd(result)
}

// onSpuriousRepeat handles SpuriousRepeatEvent (spec.md §4.5).
func (c *Controller) onSpuriousRepeat(ev SpuriousRepeatEvent, result *NotifyResult) {
	c.state.OnSpuriousRepeat(
		ev.Now, c.meanSRTT(),
		c.host.AckNumber(c.pathA), c.host.AckSentTime(c.pathA),
		c.isMultipathGated(),
	)
	c.tickDominance(ev.Now)
	c.writeSplitCwnd(result)
}

// onRTTSample handles RTTSampleEvent (spec.md §4.5, "RttSample"): while
// still in unbounded-ssthresh slow start, raise the cwnd floor for
// long-delay links, then run the host's hystart test and exit slow start
// on a positive result.
func (c *Controller) onRTTSample(ev RTTSampleEvent, result *NotifyResult) {
	if c.state.AlgState != SlowStart || !c.state.IsSsthreshUnbounded() {
		return
	}

	primary := c.host.PathStats(c.pathA)
	if primary.MinRTT > protocol.TargetRenoRTT {
		var minWin protocol.ByteCount
		if primary.MinRTT > protocol.TargetSatelliteRTT {
			minWin = protocol.ByteCount(float64(protocol.CwinInitial) * protocol.TargetSatelliteRTT.Seconds() / protocol.TargetRenoRTT.Seconds())
		} else {
			minWin = protocol.ByteCount(float64(protocol.CwinInitial) * primary.MinRTT.Seconds() / protocol.TargetRenoRTT.Seconds())
		}
		if c.state.RaiseCwndFloor(minWin) {
			c.tickDominance(ev.Now)
			c.writeSplitCwnd(result)
		}
	}

	sample := ev.RTTSample
	tsEnabled := c.host.IsTimestampEnabled()
	if tsEnabled {
		sample = ev.OneWayDelay
	}
	if c.host.HystartTest(&c.state.RTTFilter, sample, primary.PacingPacketTime, ev.Now, tsEnabled) {
		c.state.ExitSlowStartToCA()
		result.IsSSThreshInitialized = true
		c.tickDominance(ev.Now)
		c.writeSplitCwnd(result)
	}
}

// onBandwidthSample handles BandwidthSampleEvent (spec.md §4.5,
// "BwSample"): while still in unbounded-ssthresh slow start, lift cwnd
// to half the bandwidth-delay product if that is higher.
func (c *Controller) onBandwidthSample(ev BandwidthSampleEvent, result *NotifyResult) {
	if c.state.AlgState != SlowStart || !c.state.IsSsthreshUnbounded() {
		return
	}
	primary := c.host.PathStats(c.pathA)
	srtt := c.meanSRTT()
	maxWin := protocol.ByteCount(float64(primary.MaxBandwidthEstimate) * srtt.Seconds())
	minWin := maxWin / 2
	if c.state.RaiseCwndFloor(minWin) {
		c.tickDominance(ev.Now)
		c.writeSplitCwnd(result)
	}
}

// onReset handles ResetEvent (spec.md §4.5, "Reset"): reset C1 and
// restore path cwnd directly (no dominance split — both paths simply
// observe the freshly-reset cwnd, matching
// picoquic_new_tonopah_reset/picoquic_new_tonopah_sim_reset).
func (c *Controller) onReset(ev ResetEvent, result *NotifyResult) {
	c.state.Reset()
	if c.havePathA {
		result.Cwnd[c.pathA] = c.state.Cwnd
	}
	if c.havePathB {
		result.Cwnd[c.pathB] = c.state.Cwnd
	}
}

// writeSplitCwnd copies the dominance scheduler's latest per-path split
// (spec.md §4.4) into result, if a split was actually computed (i.e.
// both paths are known).
func (c *Controller) writeSplitCwnd(result *NotifyResult) {
	if !c.havePathB {
		return
	}
	result.Cwnd[c.pathA] = c.lastCwnd[c.pathA]
	result.Cwnd[c.pathB] = c.lastCwnd[c.pathB]
}
