package service

import (
	"context"
	"time"

	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

// SimulatorService drives playback: one fixed virtual step per frame.
type SimulatorService struct {
	store  *stateStore
	events journal
	log    *logger.Logger
}

func NewSimulatorService(store *stateStore, events journal, log *logger.Logger) *SimulatorService {
	return &SimulatorService{store: store, events: events, log: log.Component("simulator")}
}

// Run ticks at the given frame interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, frame time.Duration) {
	if frame <= 0 {
		frame = solver.FrameStep
	}
	t := time.NewTicker(frame)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step advances a playing state by solver.FrameStep.
func (s *SimulatorService) step(ctx context.Context) {
	finished := false
	next, changed, err := s.store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		if !cur.IsPlaying {
			return cur, false
		}
		n, done := solver.Tick(cur, solver.FrameStep)
		finished = done
		return n, true
	})
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warnw("frame_failed", "error", err)
		}
		return
	}
	if changed && finished {
		s.events.record(ctx, models.EventBurnedOut, "Candle burned out", map[string]any{
			"end":            next.EndDate,
			"initial_height": next.InitialHeight,
		})
		s.log.Infow("candle_burned_out", "end", next.EndDate)
	}
}
