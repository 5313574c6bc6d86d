package service

import (
	"context"
	"sync"

	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/repository"
	"ember_sculpt/internal/solver"

	"github.com/google/uuid"
)

// stateStore owns the single burn state row. Every read-modify-write goes
// through update, which holds mu for the whole transition, so edits and
// playback frames never interleave.
type stateStore struct {
	mu    sync.Mutex
	repo  repository.StateRepo
	clock Clock

	cached *models.BurnState
	// defaults stands in for the row until the first save.
	defaults *models.BurnState
}

func newStateStore(repo repository.StateRepo, clock Clock) *stateStore {
	return &stateStore{repo: repo, clock: clock}
}

// load returns the current state; fresh reports that nothing was persisted
// and defaults were substituted. Caller holds mu.
func (s *stateStore) load(ctx context.Context) (st models.BurnState, fresh bool, err error) {
	if s.cached != nil {
		return *s.cached, false, nil
	}
	st, err = s.repo.Load(ctx)
	if err != nil {
		return models.BurnState{}, false, err
	}
	if st.ID == 0 {
		if s.defaults == nil {
			d := solver.Defaults(s.clock.Now())
			s.defaults = &d
		}
		return *s.defaults, true, nil
	}
	s.cached = &st
	return st, false, nil
}

func (s *stateStore) get(ctx context.Context) (models.BurnState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, _, err := s.load(ctx)
	return st, err
}

// update applies fn to the current state and persists the result when fn
// reports a change. On a failed save the previous state stays current.
func (s *stateStore) update(ctx context.Context, fn func(models.BurnState) (models.BurnState, bool)) (models.BurnState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, _, err := s.load(ctx)
	if err != nil {
		return models.BurnState{}, false, err
	}
	next, changed := fn(cur)
	if !changed {
		return cur, false, nil
	}
	if err := s.save(ctx, next); err != nil {
		return cur, false, err
	}
	return *s.cached, true, nil
}

// ensure persists defaults when the table is still empty.
func (s *stateStore) ensure(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, fresh, err := s.load(ctx)
	if err != nil || !fresh {
		return false, err
	}
	return true, s.save(ctx, st)
}

func (s *stateStore) save(ctx context.Context, st models.BurnState) error {
	st.ID = 1
	st.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.Save(ctx, st); err != nil {
		return err
	}
	s.cached = &st
	return nil
}

// journal appends history entries. A failed append is logged and does not
// undo the state transition that produced it.
type journal struct {
	repo  repository.EventRepo
	clock Clock
	log   *logger.Logger
}

func (j journal) record(ctx context.Context, typ, desc string, meta map[string]any) {
	ev := models.BurnEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  j.clock.Now().UTC(),
		Type:        typ,
		Description: desc,
	}
	if meta != nil {
		ev.Metadata = meta
	}
	if err := j.repo.Append(ctx, ev); err != nil {
		j.log.Warnw("event_append_failed", "type", typ, "error", err)
	}
}
