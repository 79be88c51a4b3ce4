package main

import (
	"context"
	"fmt"
	"time"

	"github.com/muxamilian/fair-queuing-aware-congestion-control/congestion"
	"github.com/muxamilian/fair-queuing-aware-congestion-control/utils"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// pathEvent is one timed congestion.Event produced by a path's goroutine,
// queued for the single dispatcher goroutine to apply in order.
type pathEvent struct {
	at    time.Time
	event congestion.Event
}

// simResult is a snapshot taken at the end of a run, one per path, for
// the summary table printed by the run command.
type simResult struct {
	Path     congestion.PathID
	Name     string
	FinalAck int64
}

// runSimulation drives cfg.Paths concurrently (one goroutine per path,
// via golang.org/x/sync/errgroup) generating Ack/loss events against a
// shared simHost, and serializes their delivery into a single
// congestion.Algorithm instance on the calling goroutine — Controller
// requires serialized Notify calls (spec.md §5), so fanning events in
// through a channel rather than calling Notify from each path's own
// goroutine is load-bearing, not a style choice.
func runSimulation(ctx context.Context, cfg simConfig) ([]simResult, error) {
	host, pathIDs := newSimHost(cfg)
	slices.Sort(pathIDs) // deterministic iteration/printing order

	alg := congestion.NewAlgorithm(host, congestion.Config{
		Ratio: cfg.Ratio,
	})

	events := make(chan pathEvent, 256)
	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range pathIDs {
		id := id
		pc := cfg.Paths[i]
		g.Go(func() error {
			return driveOnePath(gctx, host, id, pc, cfg.TickEvery, events)
		})
	}
	go func() {
		g.Wait()
		close(events)
	}()

	log := utils.Logger()
	latest := make(map[congestion.PathID]congestion.NotifyResult, len(pathIDs))
	for ev := range events {
		result := alg.Notify(ev.event)
		if len(result.Cwnd) > 0 {
			latest[pathEventPath(ev.event)] = result
			for path, cwnd := range result.Cwnd {
				host.setCwnd(path, cwnd)
			}
			log.Debugw("notify", "cwnd", result.Cwnd)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	results := make([]simResult, 0, len(pathIDs))
	for i, id := range pathIDs {
		results = append(results, simResult{
			Path:     id,
			Name:     cfg.Paths[i].Name,
			FinalAck: int64(host.AckNumber(id)),
		})
	}
	return results, nil
}

// driveOnePath emits one AckEvent (or RepeatEvent, on a simulated loss)
// per tick on path until ctx is done.
func driveOnePath(ctx context.Context, host *simHost, path congestion.PathID, pc pathConfig, tick time.Duration, events chan<- pathEvent) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			lost := host.advance(path, 0)
			var ev congestion.Event
			if lost {
				ev = congestion.RepeatEvent{}
				ev = withPath(ev, path, now)
			} else {
				ev = congestion.AckEvent{BytesAcked: 1200}
				ev = withPath(ev, path, now)
			}
			select {
			case events <- pathEvent{at: now, event: ev}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// withPath stamps Path and Now onto an event built with its zero-valued
// eventBase, since congestion.Event's fields are only reachable through
// each concrete struct's embedded eventBase at construction time.
func withPath(ev congestion.Event, path congestion.PathID, now time.Time) congestion.Event {
	switch e := ev.(type) {
	case congestion.AckEvent:
		e.Path, e.Now = path, now
		return e
	case congestion.RepeatEvent:
		e.Path, e.Now = path, now
		return e
	default:
		return ev
	}
}

func pathEventPath(ev congestion.Event) congestion.PathID {
	switch e := ev.(type) {
	case congestion.AckEvent:
		return e.Path
	case congestion.RepeatEvent:
		return e.Path
	default:
		return 0
	}
}
