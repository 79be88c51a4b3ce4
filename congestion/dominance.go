package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
)

// tickDominance is the dominance scheduler (spec.md §4.4). It is called
// from the ACK and loss paths; it does nothing until both paths are
// known, matching original_source/picoquic/new_tonopah.c's
// `cnx->nb_paths == 2` guard around the entire body of
// new_tonopah_set_path.
func (c *Controller) tickDominance(now time.Time) {
	if !c.havePathB {
		return
	}

	srtt := c.meanSRTT()
	tickInterval := utils.ClampDuration(srtt, c.cfg.MinTick, c.cfg.MaxTick)
	if c.lastRotation.Add(tickInterval).Before(now) {
		c.fireDominanceTick(now)
	}

	dominantCwnd, submissiveCwnd := c.split()
	if c.dominant == c.pathA {
		c.lastCwnd[c.pathA] = dominantCwnd
		c.lastCwnd[c.pathB] = submissiveCwnd
	} else {
		c.lastCwnd[c.pathB] = dominantCwnd
		c.lastCwnd[c.pathA] = submissiveCwnd
	}
}

// fireDominanceTick performs the rotation-clock work (spec.md §4.4
// steps 1-5): run the FQ aggregator, possibly cut cwnd back, open the
// next interval, retire on overflow, and reset the clock.
func (c *Controller) fireDominanceTick(now time.Time) {
	result := detectFQ(c.ledger, c.cfg.RequiredIntervals, c.cfg.FQRTTGapThreshold)
	if result.Detected && c.state.AlgState == CongestionAvoidance {
		c.state.Ssthresh = utils.MaxByteCount(protocol.ByteCount(float64(c.state.Cwnd)*c.cfg.RecoveryMultiplier), protocol.CwinMin)
		c.state.Cwnd = c.state.Ssthresh
		c.logger().Infow("fq detected, cutting back cwnd",
			"cwnd", c.state.Cwnd, "ssthresh", c.state.Ssthresh,
			"meanRTTDominant", result.MeanRTTDominant, "meanRTTSubmissive", result.MeanRTTSubmissive)
		c.ledger.Wipe()
	}
	if c.state.AlgState != CongestionAvoidance {
		// Intervals are only meaningful in congestion avoidance.
		c.ledger.Wipe()
	}

	dominantID := c.dominanceID()
	if c.cfg.SwapDominanceOnTick {
		c.swapDominance()
		dominantID = c.dominanceID()
	}
	c.ledger.Open(dominantID, c.host.SequenceNumber(c.pathA), c.host.SequenceNumber(c.pathB))
	c.ledger.RetireIfOverflow(c.cfg.RequiredIntervals)
	c.lastRotation = now
}

// dominanceID maps the current dominant PathID to the ledger's 1/2
// numbering (spec.md §3, "IntervalRecord: dominant_id").
func (c *Controller) dominanceID() int {
	if c.dominant == c.pathA {
		return pathSlotA
	}
	return pathSlotB
}

func (c *Controller) swapDominance() {
	if c.dominant == c.pathA {
		c.dominant = c.pathB
	} else {
		c.dominant = c.pathA
	}
}

// split allocates the dominant and submissive cwnd shares (spec.md §4.4,
// "Regardless of whether the tick fired, compute the split").
func (c *Controller) split() (dominantCwnd, submissiveCwnd protocol.ByteCount) {
	dominantCwnd = utils.MaxByteCount(protocol.ByteCount(float64(c.state.Cwnd)*c.cfg.Ratio), protocol.CwinMin)
	submissiveCwnd = utils.MaxByteCount(protocol.ByteCount(float64(c.state.Cwnd)*(1-c.cfg.Ratio)), protocol.CwinMin)
	return dominantCwnd, submissiveCwnd
}
