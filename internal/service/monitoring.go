package service

import (
	"context"

	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

type MonitoringService struct {
	store *stateStore
}

func NewMonitoringService(store *stateStore) *MonitoringService {
	return &MonitoringService{store: store}
}

// GetState returns the stored burn state, or the defaults when nothing has
// been persisted yet.
func (s *MonitoringService) GetState(ctx context.Context) (models.BurnState, error) {
	return s.store.get(ctx)
}

// GetSnapshot returns the derived view of the current state.
func (s *MonitoringService) GetSnapshot(ctx context.Context) (models.Snapshot, error) {
	st, err := s.GetState(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	return solver.Snapshot(st), nil
}
