package service

import (
	"context"
	"time"

	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

type PlaybackService struct {
	store  *stateStore
	events journal
	log    *logger.Logger
}

func NewPlaybackService(store *stateStore, events journal, log *logger.Logger) *PlaybackService {
	return &PlaybackService{store: store, events: events, log: log.Component("playback")}
}

// Play starts playback. At the end of the window the state stays paused.
func (s *PlaybackService) Play(ctx context.Context) (models.BurnState, error) {
	return s.transition(ctx, solver.Play)
}

// Pause stops playback.
func (s *PlaybackService) Pause(ctx context.Context) (models.BurnState, error) {
	return s.transition(ctx, solver.Pause)
}

// Toggle flips between playing and paused.
func (s *PlaybackService) Toggle(ctx context.Context) (models.BurnState, error) {
	return s.transition(ctx, func(cur models.BurnState) models.BurnState {
		if cur.IsPlaying {
			return solver.Pause(cur)
		}
		return solver.Play(cur)
	})
}

// Seek moves the playhead to offset past the start of the window.
func (s *PlaybackService) Seek(ctx context.Context, offset time.Duration) (models.BurnState, error) {
	next, _, err := s.store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		n := solver.Seek(cur, offset)
		return n, !n.CurrentTime.Equal(cur.CurrentTime)
	})
	if err != nil {
		s.log.Errorw("playback_seek_failed", "offset", offset, "error", err)
		return models.BurnState{}, err
	}
	return next, nil
}

func (s *PlaybackService) transition(ctx context.Context, fn func(models.BurnState) models.BurnState) (models.BurnState, error) {
	next, changed, err := s.store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		n := fn(cur)
		return n, n.IsPlaying != cur.IsPlaying
	})
	if err != nil {
		s.log.Errorw("playback_transition_failed", "error", err)
		return models.BurnState{}, err
	}
	if !changed {
		return next, nil
	}
	if next.IsPlaying {
		s.events.record(ctx, models.EventPlay, "Playback started",
			map[string]any{"at": next.CurrentTime})
	} else {
		s.events.record(ctx, models.EventPause, "Playback paused",
			map[string]any{"at": next.CurrentTime})
	}
	return next, nil
}
