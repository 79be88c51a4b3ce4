package main

import (
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/congestion"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// simPath is one simulated path's live, mutable state. The harness
// updates it from its own goroutine; simHost reads it under simHost's
// mutex, since congestion.Controller itself requires its caller to
// serialize all Notify calls (spec.md §5) but nothing stops the host's
// own bookkeeping from being written concurrently.
type simPath struct {
	id      congestion.PathID
	cfg     pathConfig
	rng     *rand.Rand
	seqNo   protocol.PacketNumber
	ackNo   protocol.PacketNumber
	ackSent time.Time
	cwnd    protocol.ByteCount
}

// simHost is the in-process congestion.Host the simulation drives. It
// holds just enough per-path bookkeeping to answer the interface's
// questions realistically, without a socket or a real QUIC stack behind
// it (spec.md §1, Non-goals).
type simHost struct {
	mu            sync.Mutex
	paths         map[congestion.PathID]*simPath
	multipath     bool
	tsEnabled     bool
	senderLimited time.Time
}

func newSimHost(cfg simConfig) (*simHost, []congestion.PathID) {
	h := &simHost{
		paths:     make(map[congestion.PathID]*simPath),
		multipath: len(cfg.Paths) > 1,
	}
	ids := make([]congestion.PathID, 0, len(cfg.Paths))
	for i, pc := range cfg.Paths {
		id := congestion.PathID(i + 1)
		h.paths[id] = &simPath{
			id:   id,
			cfg:  pc,
			rng:  rand.New(rand.NewSource(int64(i) + 1)),
			cwnd: protocol.CwinInitial,
		}
		ids = append(ids, id)
	}
	return h, ids
}

func (h *simHost) PathStats(path congestion.PathID) congestion.PathStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.paths[path]
	jitter := time.Duration(0)
	if p.cfg.RTTJitter > 0 {
		jitter = time.Duration(p.rng.Int63n(int64(p.cfg.RTTJitter)))
	}
	srtt := p.cfg.BaseRTT + jitter
	if p.cfg.FairQueueing && p.cfg.BandwidthMbps > 0 {
		// A fair-queueing bottleneck serves this path its own slice of
		// capacity: the more of its cwnd the path has in flight, the
		// longer its own packets sit queued in that slice. This is what
		// gives the dominant path (larger cwnd share) a higher RTT than
		// the submissive one, the signal detectFQ looks for.
		bytesPerSec := p.cfg.BandwidthMbps * 1e6 / 8
		srtt += time.Duration(float64(p.cwnd) / bytesPerSec * float64(time.Second))
	}
	return congestion.PathStats{
		SmoothedRTT:                srtt,
		MinRTT:                     p.cfg.BaseRTT,
		SendMTU:                    protocol.DefaultTCPMSS,
		MaxBandwidthEstimate:       protocol.Bandwidth(p.cfg.BandwidthMbps * 1e6 / 8),
		PacingPacketTime:           time.Duration(float64(protocol.DefaultTCPMSS) / (p.cfg.BandwidthMbps * 1e6 / 8) * float64(time.Second)),
		LastAckedDataFrameSentTime: time.Now(),
		LastSenderLimitedTime:      h.senderLimited,
		LocalAddr:                  &net.UDPAddr{IP: net.IPv4(127, 0, 0, byte(path))},
		PeerAddr:                   &net.UDPAddr{IP: net.IPv4(10, 0, 0, byte(path))},
	}
}

func (h *simHost) IsMultipathEnabled() bool { return h.multipath }
func (h *simHost) IsTimestampEnabled() bool { return h.tsEnabled }

func (h *simHost) NumPaths() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.paths)
}

func (h *simHost) SequenceNumber(path congestion.PathID) protocol.PacketNumber {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paths[path].seqNo
}

func (h *simHost) AckNumber(path congestion.PathID) protocol.PacketNumber {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paths[path].ackNo
}

func (h *simHost) AckSentTime(path congestion.PathID) time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.paths[path].ackSent
}

// setCwnd records the controller's latest cwnd decision for path, so a
// later PathStats call can derive that path's fair-queueing delay from
// it. Called by the simulation loop after each congestion.Algorithm.Notify.
func (h *simHost) setCwnd(path congestion.PathID, cwnd protocol.ByteCount) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths[path].cwnd = cwnd
}

func (h *simHost) UpdatePacingData(path congestion.PathID, slowStartUnbounded bool) {
	// The harness has no real pacer to recompute; observing the call is
	// enough to exercise the interface contract end to end.
}

// HystartTest is a deliberately simple stand-in for the host's real
// hystart exit test: once at least eight samples have been seen, it fires
// when the largest sample exceeds the filter's running minimum by more
// than an eighth of that minimum, mirroring the
// coarse shape of the algorithm described in spec.md §4.5 without
// reimplementing it exactly (that belongs to the host, not this
// controller, per spec.md §6).
func (h *simHost) HystartTest(filter *congestion.HystartFilter, sample, pacingPacketTime time.Duration, now time.Time, tsEnabled bool) bool {
	if filter.RTTMin == 0 || sample < filter.RTTMin {
		filter.RTTMin = sample
	}
	if sample > filter.RTTMax {
		filter.RTTMax = sample
	}
	filter.SampleCount++
	if filter.SampleCount < 8 {
		return false
	}
	return filter.RTTMax-filter.RTTMin > filter.RTTMin/8
}

// advance simulates one packet's worth of progress on path: bumps its
// sequence/ack counters and decides, via the path's configured loss
// probability, whether this round trip should be reported as a loss.
func (h *simHost) advance(path congestion.PathID, bytes protocol.ByteCount) (lost bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.paths[path]
	p.seqNo++
	lost = p.rng.Float64() < p.cfg.LossProbability
	if !lost {
		p.ackNo = p.seqNo
		p.ackSent = time.Now()
	}
	return lost
}
