package congestion

import (
	"time"

	"github.com/golang/mock/gomock"
	mockcongestion "github.com/muxamilian/fair-queuing-aware-congestion-control/internal/mocks/congestion"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("dominance scheduler", func() {
	var (
		mockCtrl *gomock.Controller
		host     *mockcongestion.MockHost
		ctrl     *Controller
		pathA    = PathID(1)
		pathB    = PathID(2)
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		host = mockcongestion.NewMockHost(mockCtrl)
		host.EXPECT().IsMultipathEnabled().Return(true).AnyTimes()
		host.EXPECT().SequenceNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		host.EXPECT().PathStats(gomock.Any()).Return(PathStats{SmoothedRTT: 50 * time.Millisecond}).AnyTimes()

		ctrl = NewController(host, DefaultConfig())
		ctrl.havePathA, ctrl.pathA = true, pathA
		ctrl.havePathB, ctrl.pathB = true, pathB
		ctrl.haveDominant, ctrl.dominant = true, pathA
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("is a no-op when only one path is known", func() {
		ctrl.havePathB = false
		before := ctrl.lastRotation
		ctrl.tickDominance(time.Now())
		Expect(ctrl.lastRotation).To(Equal(before))
	})

	It("splits cwnd into a larger dominant share and a smaller submissive share", func() {
		ctrl.lastRotation = time.Now()
		ctrl.tickDominance(time.Now())
		Expect(ctrl.lastCwnd[pathA]).To(BeNumerically(">", ctrl.lastCwnd[pathB]))

		total := ctrl.lastCwnd[pathA] + ctrl.lastCwnd[pathB]
		Expect(ctrl.lastCwnd[pathA]).To(BeNumerically("~", float64(total)*ctrl.cfg.Ratio, 2))
	})

	It("never splits a path below the protocol minimum window", func() {
		ctrl.state.Cwnd = protocol.CwinMin
		ctrl.lastRotation = time.Now()
		ctrl.tickDominance(time.Now())
		Expect(ctrl.lastCwnd[pathA]).To(BeNumerically(">=", protocol.CwinMin))
		Expect(ctrl.lastCwnd[pathB]).To(BeNumerically(">=", protocol.CwinMin))
	})

	It("opens a fresh interval once the tick interval elapses", func() {
		ctrl.lastRotation = time.Now().Add(-2 * time.Second)
		before := ctrl.ledger.Len()
		ctrl.tickDominance(time.Now())
		Expect(ctrl.ledger.Len()).To(Equal(before + 1))
	})

	It("cuts cwnd back by the recovery multiplier when FQ is detected in congestion avoidance", func() {
		ctrl.state.AlgState = CongestionAvoidance
		ctrl.state.Ssthresh = protocol.CwinInitial
		ctrl.ledger.Open(pathSlotA, 0, 0)
		rec := ctrl.ledger.tail()
		now := time.Now()
		ctrl.ledger.RecordAck(rec, pathSlotA, 1000, 60*time.Millisecond, now)
		ctrl.ledger.RecordAck(rec, pathSlotB, 1000, 10*time.Millisecond, now)
		rec.finished[pathSlotA] = true
		rec.finished[pathSlotB] = true
		rec.dontUse = false

		before := ctrl.state.Cwnd
		ctrl.lastRotation = now.Add(-2 * time.Second)
		ctrl.tickDominance(now)
		Expect(ctrl.state.Cwnd).To(Equal(utils.MaxByteCount(protocol.ByteCount(float64(before)*ctrl.cfg.RecoveryMultiplier), protocol.CwinMin)))
	})

	It("wipes the ledger on a tick while not in congestion avoidance", func() {
		ctrl.state.AlgState = SlowStart
		ctrl.ledger.Open(pathSlotA, 0, 0)
		ctrl.lastRotation = time.Now().Add(-2 * time.Second)
		ctrl.tickDominance(time.Now())
		Expect(ctrl.ledger.Len()).To(Equal(1)) // wiped, then the new interval opened by this same tick
	})

	It("keeps dominance fixed across a tick when SwapDominanceOnTick is disabled", func() {
		ctrl.cfg.SwapDominanceOnTick = false
		ctrl.lastRotation = time.Now().Add(-2 * time.Second)
		ctrl.tickDominance(time.Now())
		Expect(ctrl.dominant).To(Equal(pathA))
	})
})
