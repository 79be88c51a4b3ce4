package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// finalizeBoth marks rec finished on both paths, the way RecordAck's
// sibling FindAndFinalizePredecessor would once both paths' ACKs have
// moved past it.
func finalizeBoth(rec *intervalRecord) {
	rec.finished[pathSlotA] = true
	rec.finished[pathSlotB] = true
}

var _ = Describe("detectFQ", func() {
	It("does not detect FQ when fewer than required intervals are usable", func() {
		l := newLedger(8)
		l.Open(pathSlotA, 0, 0)
		result := detectFQ(l, 2, 5*time.Millisecond)
		Expect(result.Detected).To(BeFalse())
		Expect(result.UsableIntervals).To(Equal(0))
	})

	It("detects FQ when the dominant path's mean RTT exceeds the submissive path's by more than the threshold", func() {
		l := newLedger(8)
		l.Open(pathSlotA, 0, 0) // seed interval: always dontUse
		l.Open(pathSlotA, 100, 100)
		rec := l.at(1)
		now := time.Now()
		l.RecordAck(rec, pathSlotA, 1000, 60*time.Millisecond, now)
		l.RecordAck(rec, pathSlotB, 1000, 20*time.Millisecond, now)
		finalizeBoth(rec)

		result := detectFQ(l, 1, 5*time.Millisecond)
		Expect(result.Detected).To(BeTrue())
		Expect(result.MeanRTTDominant).To(Equal(60 * time.Millisecond))
		Expect(result.MeanRTTSubmissive).To(Equal(20 * time.Millisecond))
		Expect(result.RTTGap).To(Equal(40 * time.Millisecond))
	})

	It("does not detect FQ when the RTT gap stays within the threshold", func() {
		l := newLedger(8)
		l.Open(pathSlotA, 0, 0) // seed interval: always dontUse
		l.Open(pathSlotB, 100, 100)
		rec := l.at(1)
		now := time.Now()
		l.RecordAck(rec, pathSlotA, 1000, 21*time.Millisecond, now)
		l.RecordAck(rec, pathSlotB, 1000, 20*time.Millisecond, now)
		finalizeBoth(rec)

		result := detectFQ(l, 1, 5*time.Millisecond)
		Expect(result.Detected).To(BeFalse())
	})

	It("resets accumulation across an unusable interval", func() {
		l := newLedger(8)
		l.Open(pathSlotA, 0, 0) // dontUse: unusable
		mid := l.at(0)
		now := time.Now()
		l.RecordAck(mid, pathSlotA, 1000, 60*time.Millisecond, now)
		l.RecordAck(mid, pathSlotB, 1000, 20*time.Millisecond, now)
		finalizeBoth(mid)
		mid.dontUse = true // the very first interval is always dontUse

		l.Open(pathSlotB, 10, 10)
		usable := l.at(1)
		l.RecordAck(usable, pathSlotA, 1000, 60*time.Millisecond, now)
		l.RecordAck(usable, pathSlotB, 1000, 20*time.Millisecond, now)
		finalizeBoth(usable)

		l.Open(pathSlotA, 20, 20)
		tail := l.at(2) // left unfinished: unusable

		result := detectFQ(l, 2, 5*time.Millisecond)
		Expect(result.UsableIntervals).To(Equal(0))
		_ = tail
	})

	It("skips an unfinished interval without crashing and keeps scanning older ones", func() {
		l := newLedger(8)
		l.Open(pathSlotA, 0, 0)
		l.Open(pathSlotB, 100, 100)
		l.Open(pathSlotA, 200, 200)
		unfinished := l.tail()
		unfinished.finished[pathSlotA] = true // only half-finished

		result := detectFQ(l, 1, 5*time.Millisecond)
		Expect(result.Detected).To(BeFalse())
		_ = protocol.PacketNumber(0)
	})
})
