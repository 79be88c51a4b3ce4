package congestion

import (
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/protocol"
)

// Per-interval path slots. Slot 0 is unused; slots 1 and 2 mirror the
// source's 1-or-2 dominant-path numbering (spec.md §3, "dominant_id").
const (
	pathSlotA = 1
	pathSlotB = 2
)

// intervalRecord is one dominance epoch's bookkeeping (spec.md §3,
// "IntervalRecord"). The doubly-linked list the source uses is realized
// here as a slot in a fixed-capacity ring (spec.md §9, "doubly-linked
// ring with back-traversal"); forward/back pointers aren't needed since
// ring position already encodes order.
type intervalRecord struct {
	dominantID int
	firstSeq   [3]protocol.PacketNumber
	bytesRcvd  [3]protocol.ByteCount
	firstAckT  [3]time.Time
	lastAckT   [3]time.Time
	rttSum     [3]time.Duration
	numAcks    [3]int
	finished   [3]bool
	dontUse    bool
}

// ledger is the array-backed ring of intervalRecords (spec.md §4.2). It
// holds at most 4·REQUIRED+1 entries at once (spec.md §3 invariant 4).
type ledger struct {
	buf   []intervalRecord
	head  int
	count int
}

func newLedger(capacity int) *ledger {
	if capacity < 1 {
		capacity = 1
	}
	return &ledger{buf: make([]intervalRecord, capacity)}
}

func (l *ledger) capacity() int { return len(l.buf) }

// Len reports how many intervals are currently held.
func (l *ledger) Len() int { return l.count }

func (l *ledger) index(i int) int { return (l.head + i) % l.capacity() }

// at returns the i-th record from the head (0 = oldest, Len()-1 = tail).
func (l *ledger) at(i int) *intervalRecord { return &l.buf[l.index(i)] }

// tail returns the most recently opened interval, or nil if the ledger
// is empty.
func (l *ledger) tail() *intervalRecord {
	if l.count == 0 {
		return nil
	}
	return l.at(l.count - 1)
}

// nextOf returns the record immediately after the one at index i (the
// record whose dominance epoch followed it), used by the FQ aggregator
// to compute bytes sent during an interval.
func (l *ledger) nextOf(i int) (*intervalRecord, bool) {
	if i+1 >= l.count {
		return nil, false
	}
	return l.at(i + 1), true
}

// Open appends a new interval for the given dominant path id (1 or 2),
// seeded with the current per-path sequence numbers (spec.md §4.2,
// "open"). An interval opened into an empty ledger (the first one, and the
// first one after every Wipe) is marked dontUse: it has no predecessor to
// derive a sent-bytes baseline from (spec.md §9, Open Question 4;
// original_source/picoquic/new_tonopah.c sets this on the first interval,
// so aggregation must treat it as non-accumulating).
func (l *ledger) Open(dominantID int, seq1, seq2 protocol.PacketNumber) {
	if dominantID != pathSlotA && dominantID != pathSlotB {
		invariantViolation("interval opened with dominant id %d", dominantID)
	}
	if l.count == l.capacity() {
		// Defensive only: RetireIfOverflow is expected to run after
		// every Open, so this path should be unreachable in practice.
		l.dropHead()
	}
	idx := l.index(l.count)
	rec := intervalRecord{
		dominantID: dominantID,
		dontUse:    l.count == 0,
	}
	rec.firstSeq[pathSlotA] = seq1
	rec.firstSeq[pathSlotB] = seq2
	l.buf[idx] = rec
	l.count++
}

// RetireIfOverflow drops the oldest interval until the ledger holds at
// most 4·required entries (spec.md §3 invariant 4; §4.4 step 4).
func (l *ledger) RetireIfOverflow(required int) {
	for l.count > 4*required {
		l.dropHead()
	}
}

func (l *ledger) dropHead() {
	if l.count == 0 {
		return
	}
	l.buf[l.head] = intervalRecord{}
	l.head = l.index(1)
	l.count--
}

// Wipe drops every record (spec.md §4.2, "wipe"). After Wipe, Len() == 0.
func (l *ledger) Wipe() {
	for i := range l.buf {
		l.buf[i] = intervalRecord{}
	}
	l.head = 0
	l.count = 0
}

// RecordAck accumulates ack statistics for the given path slot on rec
// (spec.md §4.2, "record_ack").
func (l *ledger) RecordAck(rec *intervalRecord, slot int, bytes protocol.ByteCount, rtt time.Duration, now time.Time) {
	rec.bytesRcvd[slot] += bytes
	rec.rttSum[slot] += rtt
	rec.numAcks[slot]++
	if rec.firstAckT[slot].IsZero() {
		rec.firstAckT[slot] = now
	}
	rec.lastAckT[slot] = now
}

// FindAndFinalizePredecessor walks from the tail toward the head looking
// for the first interval whose firstSeq[slot] ≤ ackNumber, lazily
// finalizing its predecessor's slot along the way: an ACK that has moved
// past the predecessor's opening sequence proves every byte that
// interval counted has been acknowledged (spec.md §4.2; §3 invariant 3).
// ok is false if no interval contains ackNumber (spec.md §7, error
// kind 4): the caller simply skips recording counters for this ACK.
func (l *ledger) FindAndFinalizePredecessor(slot int, ackNumber protocol.PacketNumber) (rec *intervalRecord, ok bool) {
	for i := l.count - 1; i >= 0; i-- {
		cur := l.at(i)
		if ackNumber >= cur.firstSeq[slot] {
			if i > 0 {
				prev := l.at(i - 1)
				if !prev.finished[slot] {
					prev.finished[slot] = true
				}
			}
			return cur, true
		}
	}
	return nil, false
}
