package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ledger", func() {
	It("marks the first ever interval dontUse", func() {
		l := newLedger(5)
		l.Open(pathSlotA, 0, 0)
		Expect(l.tail().dontUse).To(BeTrue())
	})

	It("does not mark later intervals dontUse", func() {
		l := newLedger(5)
		l.Open(pathSlotA, 0, 0)
		l.Open(pathSlotB, 10, 10)
		Expect(l.tail().dontUse).To(BeFalse())
	})

	It("panics on an invalid dominant id", func() {
		l := newLedger(5)
		Expect(func() { l.Open(3, 0, 0) }).To(Panic())
	})

	It("retires the oldest interval past 4*required", func() {
		l := newLedger(16)
		for i := 0; i < 10; i++ {
			l.Open(pathSlotA, protocol.PacketNumber(i), protocol.PacketNumber(i))
			l.RetireIfOverflow(2)
		}
		Expect(l.Len()).To(Equal(8))
	})

	It("Wipe empties the ledger", func() {
		l := newLedger(5)
		l.Open(pathSlotA, 0, 0)
		l.Open(pathSlotB, 1, 1)
		l.Wipe()
		Expect(l.Len()).To(Equal(0))
	})

	Describe("FindAndFinalizePredecessor", func() {
		It("finds the interval containing the ack and finalizes its predecessor", func() {
			l := newLedger(5)
			l.Open(pathSlotA, 0, 0)
			l.Open(pathSlotB, 100, 100)
			l.Open(pathSlotA, 200, 200)

			rec, ok := l.FindAndFinalizePredecessor(pathSlotA, 150)
			Expect(ok).To(BeTrue())
			Expect(rec).To(Equal(l.at(1)))
			Expect(l.at(0).finished[pathSlotA]).To(BeTrue())
		})

		It("reports not found when the ack predates every interval", func() {
			l := newLedger(5)
			l.Open(pathSlotA, 100, 100)
			_, ok := l.FindAndFinalizePredecessor(pathSlotA, 5)
			Expect(ok).To(BeFalse())
		})
	})

	It("RecordAck accumulates bytes, rtt sum, and ack count on the given slot", func() {
		l := newLedger(5)
		l.Open(pathSlotA, 0, 0)
		rec := l.tail()
		now := time.Now()
		l.RecordAck(rec, pathSlotA, 1000, 20*time.Millisecond, now)
		l.RecordAck(rec, pathSlotA, 500, 30*time.Millisecond, now.Add(time.Millisecond))

		Expect(rec.bytesRcvd[pathSlotA]).To(Equal(protocol.ByteCount(1500)))
		Expect(rec.rttSum[pathSlotA]).To(Equal(50 * time.Millisecond))
		Expect(rec.numAcks[pathSlotA]).To(Equal(2))
		Expect(rec.firstAckT[pathSlotA]).To(Equal(now))
		Expect(rec.lastAckT[pathSlotA]).To(Equal(now.Add(time.Millisecond)))
	})
})
