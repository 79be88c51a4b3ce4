package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// aggregateResult is everything the FQ aggregator accumulates over a
// contiguous trailing run of finalized intervals (spec.md §4.3). Only
// the RTT gap drives Detected, but the remaining fields are kept because
// original_source's aggregator computes them too — they're useful
// observability, even though the source's own decision rule never reads
// them back. Of these, only the two mean RTTs are passed to the logger
// (on an FQ cutback).
type aggregateResult struct {
	Detected              bool
	UsableIntervals       int
	TimeInIntervalDom     time.Duration
	TimeInIntervalSub     time.Duration
	BytesReceivedDom      protocol.ByteCount
	BytesReceivedSub      protocol.ByteCount
	BytesSentDom          protocol.ByteCount
	BytesSentSub          protocol.ByteCount
	MeanRTTDominant       time.Duration
	MeanRTTSubmissive     time.Duration
	RTTGap                time.Duration
}

// detectFQ scans the ledger's trailing finalized intervals and decides
// whether the bottleneck appears to run per-flow fair queueing
// (spec.md §4.3). It requires a contiguous run of `required` usable
// intervals (finished on both paths, and not the seed dontUse record);
// hitting an unusable interval resets the running accumulation, matching
// original_source/picoquic/new_tonopah.c's new_tonopah_aggregate_intervals.
func detectFQ(l *ledger, required int, gapThreshold time.Duration) aggregateResult {
	var (
		timeDiffDom, timeDiffSub         time.Duration
		bytesDom, bytesSub               protocol.ByteCount
		sentDom, sentSub                 protocol.ByteCount
		rttSumDom, rttSumSub             time.Duration
		numAcksDom, numAcksSub           int
		usable                           int
	)

	for i := l.Len() - 1; i >= 0; i-- {
		rec := l.at(i)
		if rec.dontUse || !rec.finished[pathSlotA] || !rec.finished[pathSlotB] {
			timeDiffDom, timeDiffSub = 0, 0
			bytesDom, bytesSub = 0, 0
			sentDom, sentSub = 0, 0
			rttSumDom, rttSumSub = 0, 0
			numAcksDom, numAcksSub = 0, 0
			usable = 0
			continue
		}

		dom, sub := pathSlotA, pathSlotB
		if rec.dominantID == pathSlotB {
			dom, sub = pathSlotB, pathSlotA
		}

		usable++
		timeDiffDom += rec.lastAckT[dom].Sub(rec.firstAckT[dom])
		timeDiffSub += rec.lastAckT[sub].Sub(rec.firstAckT[sub])
		bytesDom += rec.bytesRcvd[dom]
		bytesSub += rec.bytesRcvd[sub]
		rttSumDom += rec.rttSum[dom]
		rttSumSub += rec.rttSum[sub]
		numAcksDom += rec.numAcks[dom]
		numAcksSub += rec.numAcks[sub]
		if next, ok := l.nextOf(i); ok {
			sentDom += protocol.ByteCount(next.firstSeq[dom] - rec.firstSeq[dom])
			sentSub += protocol.ByteCount(next.firstSeq[sub] - rec.firstSeq[sub])
		}

		if usable == required {
			result := aggregateResult{
				UsableIntervals:   usable,
				TimeInIntervalDom: timeDiffDom,
				TimeInIntervalSub: timeDiffSub,
				BytesReceivedDom:  bytesDom,
				BytesReceivedSub:  bytesSub,
				BytesSentDom:      sentDom,
				BytesSentSub:      sentSub,
			}
			if numAcksDom > 0 {
				result.MeanRTTDominant = rttSumDom / time.Duration(numAcksDom)
			}
			if numAcksSub > 0 {
				result.MeanRTTSubmissive = rttSumSub / time.Duration(numAcksSub)
			}
			result.RTTGap = result.MeanRTTDominant - result.MeanRTTSubmissive
			result.Detected = result.RTTGap > gapThreshold
			return result
		}
	}
	return aggregateResult{}
}
