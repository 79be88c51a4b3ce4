package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
	"go.uber.org/zap"
)

// NotifyResult is what Notify produces into the host (spec.md §6,
// "Produced into the host"). Go has no analogue of the source's
// aliasing straight into host-owned structs, so the controller hands
// the effects back explicitly instead of mutating them in place.
type NotifyResult struct {
	// Cwnd holds the per-path cwnd values the controller wants written,
	// keyed by PathID. Only paths actually affected by this call are
	// present.
	Cwnd map[PathID]protocol.ByteCount
	// IsSSThreshInitialized is set when this call caused a slow-start
	// exit via hystart.
	IsSSThreshInitialized bool
}

// Controller is the per-connection multipath congestion state (spec.md
// §3, "Per-connection multipath state"). Unlike the source, every field
// here lives on the struct — there is no package-level mutable state —
// so multiple connections run independently (spec.md §9).
//
// Controller is not safe for concurrent use: spec.md §5 requires the
// host to serialize all calls for a given connection, and Controller
// relies on that; it holds no internal lock.
type Controller struct {
	host Host
	cfg  Config

	state  *State
	ledger *ledger

	havePathA, havePathB bool
	pathA, pathB         PathID

	haveDominant bool
	dominant     PathID
	lastRotation time.Time

	lastCwnd map[PathID]protocol.ByteCount

	log *zap.SugaredLogger
}

// NewController builds a Controller for a single QUIC connection
// (spec.md §3, "Lifecycle. Algorithm state is allocated at path init").
// A zero-value cfg behaves like DefaultConfig().
func NewController(host Host, cfg Config) *Controller {
	cfg = cfg.validate()
	return &Controller{
		host:     host,
		cfg:      cfg,
		state:    NewState(),
		ledger:   newLedger(cfg.ringCapacity()),
		lastCwnd: make(map[PathID]protocol.ByteCount, 2),
		log:      utils.Logger(),
	}
}

func (c *Controller) logger() *zap.SugaredLogger {
	if c.log == nil {
		return utils.Logger()
	}
	return c.log
}

// SetLogger overrides the controller's logger, e.g. with one already
// carrying connection-scoped fields.
func (c *Controller) SetLogger(l *zap.SugaredLogger) {
	c.log = l
}

// State exposes the underlying NewReno state for read-only observation
// (used by Algorithm.Observe, spec.md §4.6).
func (c *Controller) State() State {
	return *c.state
}

// identify resolves path identity (spec.md §4.5, §9 "Path identity"):
// the first unknown path becomes path_a, the second becomes path_b, and
// any third distinct path is a fatal invariant violation.
func (c *Controller) identify(path PathID) {
	if !c.havePathA {
		c.pathA = path
		c.havePathA = true
		return
	}
	if path == c.pathA {
		return
	}
	if !c.havePathB {
		c.pathB = path
		c.havePathB = true
		return
	}
	if path != c.pathB {
		invariantViolation("unknown third path %v (path_a=%v, path_b=%v)", path, c.pathA, c.pathB)
	}
}

func (c *Controller) slotOf(path PathID) int {
	switch path {
	case c.pathA:
		return pathSlotA
	case c.pathB:
		return pathSlotB
	default:
		invariantViolation("slotOf called with unresolved path %v", path)
		return 0
	}
}

// meanSRTT is "the current smoothed RTT" used throughout spec.md §4.1 and
// §4.4: the mean of both paths' smoothed RTTs once both are known, or
// just the primary path's own smoothed RTT before the second path has
// been seen.
func (c *Controller) meanSRTT() time.Duration {
	if c.havePathB {
		a := c.host.PathStats(c.pathA).SmoothedRTT
		b := c.host.PathStats(c.pathB).SmoothedRTT
		return (a + b) / 2
	}
	return c.host.PathStats(c.pathA).SmoothedRTT
}

func (c *Controller) isMultipathGated() bool {
	return c.havePathB && c.host.IsMultipathEnabled()
}

// Notify is the notification dispatcher (spec.md §4.5, C5). It resolves
// path identity, routes the event to C1/C2/C4, and requests a pacing
// recompute on the actual path before returning.
func (c *Controller) Notify(e Event) NotifyResult {
	path := e.eventPath()
	now := e.eventNow()
	c.identify(path)

	if !c.haveDominant {
		c.dominant = c.pathA
		c.haveDominant = true
		c.lastRotation = now
	}

	result := NotifyResult{Cwnd: make(map[PathID]protocol.ByteCount, 2)}

	switch ev := e.(type) {
	case AckEvent:
		c.onAck(ev, &result)
	case EcnCeEvent:
		c.onEcnCE(ev, &result)
	case RepeatEvent:
		c.onLoss(RecoveryRepeat, ev.Now, &result)
	case TimeoutEvent:
		c.onLoss(RecoveryTimeout, ev.Now, &result)
	case SpuriousRepeatEvent:
		c.onSpuriousRepeat(ev, &result)
	case RTTSampleEvent:
		c.onRTTSample(ev, &result)
	case BandwidthSampleEvent:
		c.onBandwidthSample(ev, &result)
	case CwndBlockedEvent:
		// no-op, spec.md §4.5.
	case SeedCwndEvent:
		c.state.SeedCwnd(ev.BytesInFlight)
	case ResetEvent:
		c.onReset(ev, &result)
	default:
		utils.Debugf("congestion: unknown event %T ignored", e)
	}

	c.host.UpdatePacingData(path, c.state.AlgState == SlowStart && c.state.IsSsthreshUnbounded())
	return result
}
