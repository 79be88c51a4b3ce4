package congestion

import "fmt"

// AlgorithmID is the stable numeric identifier a congestion algorithm
// registers under (spec.md §4.6, C6). original_source/picoquic carries
// one of these per picoquic_congestion_algorithm_t so it can be selected
// over the wire during the transport parameter exchange; this port keeps
// the same shape even though wire negotiation itself is out of scope
// (spec.md §1, Non-goals).
type AlgorithmID uint32

// TonopahAlgorithmID is the numeric id this package registers its
// Algorithm under.
const TonopahAlgorithmID AlgorithmID = 0x544e5048 // "TNPH"

// TonopahAlgorithmName is the stable string id, analogous to
// picoquic_congestion_algorithm_t.congestion_algorithm_id's string form.
const TonopahAlgorithmName = "tonopah"

// Algorithm is the vtable a host binds against a live connection (spec.md
// §4.6, "Algorithm descriptor"). It wraps a *Controller the same way
// original_source/picoquic's picoquic_congestion_algorithm_t wraps a
// void* cnx_state, but with the Go idiom of an explicit struct instead of
// four free functions plus a context pointer.
type Algorithm struct {
	ID   AlgorithmID
	Name string

	controller *Controller
}

// NewAlgorithm builds an Algorithm bound to a fresh Controller for host.
// A zero-value cfg behaves like DefaultConfig().
func NewAlgorithm(host Host, cfg Config) *Algorithm {
	return &Algorithm{
		ID:         TonopahAlgorithmID,
		Name:       TonopahAlgorithmName,
		controller: NewController(host, cfg),
	}
}

// Init (re)initializes the bound controller's algorithm state, as if the
// path had just been created (spec.md §4.6, "init").
func (a *Algorithm) Init() {
	a.controller.state.Reset()
	a.controller.ledger.Wipe()
	a.controller.havePathA, a.controller.havePathB = false, false
	a.controller.haveDominant = false
}

// Notify delivers an event to the bound controller (spec.md §4.6,
// "notify"). It is the sole entry point a host's per-path ACK/loss/RTT
// processing should call.
func (a *Algorithm) Notify(e Event) NotifyResult {
	return a.controller.Notify(e)
}

// Delete releases the bound controller. There is no background
// goroutine or file handle to close (spec.md §5, "Concurrency &
// resource model"); this exists so Algorithm's lifecycle mirrors
// picoquic_congestion_algorithm_t's delete callback one-for-one. It logs
// a teardown summary of the data the controller actually owns, the
// adapted equivalent of new_tonopah's delete-time debug dump (which
// printed host-owned path flags this package never sees).
func (a *Algorithm) Delete() {
	if a.controller != nil {
		state := a.controller.State()
		a.controller.logger().Infow("tonopah: connection torn down",
			"cwnd", state.Cwnd, "ssthresh", state.Ssthresh, "algState", state.AlgState.String())
	}
	a.controller = nil
}

// Observe returns a read-only snapshot of the bound controller's NewReno
// state, for a host's debug/qlog/metrics surface (spec.md §4.6,
// "observe"). It panics if called after Delete, which is a programmer
// error rather than a runtime condition a host needs to recover from.
func (a *Algorithm) Observe() State {
	if a.controller == nil {
		invariantViolation("Observe called on a deleted Algorithm")
	}
	return a.controller.State()
}

// registry is the process-wide table of known algorithms (spec.md §4.6,
// "Algorithms are registered by stable id"), mirroring picoquic's global
// array of picoquic_congestion_algorithm_t pointers indexed by id.
var registry = map[AlgorithmID]string{
	TonopahAlgorithmID: TonopahAlgorithmName,
}

// RegisteredAlgorithms lists the stable (id, name) pairs known to this
// package.
func RegisteredAlgorithms() map[AlgorithmID]string {
	out := make(map[AlgorithmID]string, len(registry))
	for id, name := range registry {
		out[id] = name
	}
	return out
}

// LookupAlgorithm resolves name to its numeric id.
func LookupAlgorithm(name string) (AlgorithmID, error) {
	for id, n := range registry {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("congestion: unknown algorithm %q", name)
}
