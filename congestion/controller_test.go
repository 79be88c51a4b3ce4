package congestion

import (
	"time"

	"github.com/golang/mock/gomock"
	mockcongestion "github.com/muxamilian/fair-queuing-aware-congestion-control/internal/mocks/congestion"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// newStatsStub returns an option whose build() yields a PathStats that
// always clears the sender-limited gate and carries a plausible smoothed
// RTT, so tests that don't care
// about pacing/sender-limiting don't have to restate it every time.
func newStatsStub(srtt time.Duration) congestionPathStatsOpt {
	return congestionPathStatsOpt{srtt: srtt}
}

type congestionPathStatsOpt struct {
	srtt time.Duration
}

func (o congestionPathStatsOpt) build() PathStats {
	now := time.Now()
	return PathStats{
		SmoothedRTT:                o.srtt,
		MinRTT:                     o.srtt,
		SendMTU:                    protocol.DefaultTCPMSS,
		LastAckedDataFrameSentTime: now,
		LastSenderLimitedTime:      now.Add(-time.Second),
	}
}

var _ = Describe("Controller", func() {
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
		host.EXPECT().UpdatePacingData(gomock.Any(), gomock.Any()).AnyTimes()
		ctrl = NewController(host, DefaultConfig())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("identifies path_a on the first call and path_b on the second distinct path", func() {
		host.EXPECT().PathStats(pathA).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesAcked: 100})
		Expect(ctrl.havePathA).To(BeTrue())
		Expect(ctrl.pathA).To(Equal(pathA))
		Expect(ctrl.havePathB).To(BeFalse())

		host.EXPECT().PathStats(pathB).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		host.EXPECT().AckNumber(pathB).Return(protocol.PacketNumber(0)).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathB, Now: time.Now()}, BytesAcked: 100})
		Expect(ctrl.havePathB).To(BeTrue())
		Expect(ctrl.pathB).To(Equal(pathB))
	})

	It("panics when a third distinct path shows up", func() {
		host.EXPECT().PathStats(gomock.Any()).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		host.EXPECT().AckNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesAcked: 100})
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathB, Now: time.Now()}, BytesAcked: 100})
		Expect(func() {
			ctrl.Notify(AckEvent{eventBase: eventBase{Path: PathID(3), Now: time.Now()}, BytesAcked: 100})
		}).To(Panic())
	})

	It("ignores an ACK whose sent time predates the last sender-limited epoch", func() {
		now := time.Now()
		stats := newStatsStub(50 * time.Millisecond).build()
		stats.LastAckedDataFrameSentTime = now.Add(-time.Second)
		stats.LastSenderLimitedTime = now
		host.EXPECT().PathStats(pathA).Return(stats).AnyTimes()
		before := ctrl.State().Cwnd
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: now}, BytesAcked: 100})
		Expect(ctrl.State().Cwnd).To(Equal(before))
	})

	It("treats ECN-CE on the dominant path as expected and ignores it", func() {
		host.EXPECT().PathStats(gomock.Any()).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		host.EXPECT().AckNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesAcked: 100})
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathB, Now: time.Now()}, BytesAcked: 100})

		before := ctrl.State()
		ctrl.Notify(EcnCeEvent{eventBase: eventBase{Path: ctrl.dominant, Now: time.Now()}})
		Expect(ctrl.State()).To(Equal(before))
	})

	It("treats ECN-CE on the submissive path as a loss signal", func() {
		host.EXPECT().PathStats(gomock.Any()).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		host.EXPECT().AckNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		host.EXPECT().SequenceNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		host.EXPECT().AckSentTime(gomock.Any()).Return(time.Time{}).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesAcked: 100})
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathB, Now: time.Now()}, BytesAcked: 100})

		submissive := pathA
		if ctrl.dominant == pathA {
			submissive = pathB
		}
		before := ctrl.State().Cwnd
		ctrl.Notify(EcnCeEvent{eventBase: eventBase{Path: submissive, Now: time.Now().Add(time.Second)}})
		Expect(ctrl.State().Cwnd).To(BeNumerically("<", before))
	})

	It("restores cwnd on both known paths directly on Reset, bypassing the dominance split", func() {
		host.EXPECT().PathStats(gomock.Any()).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		host.EXPECT().AckNumber(gomock.Any()).Return(protocol.PacketNumber(0)).AnyTimes()
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesAcked: 100})
		ctrl.Notify(AckEvent{eventBase: eventBase{Path: pathB, Now: time.Now()}, BytesAcked: 100})

		result := ctrl.Notify(ResetEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}})
		Expect(result.Cwnd[pathA]).To(Equal(protocol.CwinInitial))
		Expect(result.Cwnd[pathB]).To(Equal(protocol.CwinInitial))
	})

	It("SeedCwndEvent raises cwnd without going through the dominance split", func() {
		host.EXPECT().PathStats(pathA).Return(newStatsStub(50 * time.Millisecond).build()).AnyTimes()
		result := ctrl.Notify(SeedCwndEvent{eventBase: eventBase{Path: pathA, Now: time.Now()}, BytesInFlight: protocol.CwinInitial + 99999})
		Expect(ctrl.State().Cwnd).To(Equal(protocol.CwinInitial + 99999))
		Expect(result.Cwnd).To(BeEmpty())
	})
})
