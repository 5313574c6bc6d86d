package service

import (
	"context"
	"errors"
	"fmt"

	"ember_sculpt/internal/configio"
	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

// ErrInvalidEdit is returned for edits the solver cannot accept.
var ErrInvalidEdit = errors.New("invalid edit")

type CandleService struct {
	store  *stateStore
	events journal
	log    *logger.Logger
}

func NewCandleService(store *stateStore, events journal, log *logger.Logger) *CandleService {
	return &CandleService{store: store, events: events, log: log.Component("candle")}
}

// Edit merges e over the stored state and re-solves the derived field.
func (s *CandleService) Edit(ctx context.Context, e models.Edit) (models.BurnState, error) {
	if err := validateEdit(e); err != nil {
		return models.BurnState{}, err
	}

	var prev models.BurnState
	next, _, err := s.store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		prev = cur
		return solver.Apply(cur, e), true
	})
	if err != nil {
		s.log.Errorw("candle_edit_failed", "error", err)
		return models.BurnState{}, err
	}

	typ, desc, meta := describeEdit(prev, next)
	s.events.record(ctx, typ, desc, meta)
	s.log.Debugw("candle_edited",
		"calc_mode", next.CalcMode,
		"start", next.StartDate,
		"end", next.EndDate,
		"rate", solver.EffectiveBurnRate(next.BurnConfig),
	)
	return next, nil
}

// Import replaces the configuration with a previously exported snapshot.
// A rejected snapshot leaves the stored state untouched.
func (s *CandleService) Import(ctx context.Context, raw []byte) (models.BurnState, error) {
	cfg, err := configio.Import(raw)
	if err != nil {
		s.log.Warnw("candle_import_rejected", "error", err)
		s.events.record(ctx, models.EventImportFailed, "Config import rejected",
			map[string]any{"error": err.Error()})
		return models.BurnState{}, err
	}

	next, _, err := s.store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		cur.BurnConfig = cfg
		cur.IsPlaying = false
		cur.CurrentTime = solver.ClampCurrentTime(cur.CurrentTime, cfg.StartDate, cfg.EndDate)
		return cur, true
	})
	if err != nil {
		s.log.Errorw("candle_import_failed", "error", err)
		return models.BurnState{}, err
	}

	s.events.record(ctx, models.EventImport, "Config imported", map[string]any{
		"calc_mode": next.CalcMode,
		"burn_mode": next.BurnMode,
		"start":     next.StartDate,
		"end":       next.EndDate,
	})
	return next, nil
}

// Export serializes the current configuration.
func (s *CandleService) Export(ctx context.Context) ([]byte, error) {
	st, err := s.store.get(ctx)
	if err != nil {
		return nil, err
	}
	return configio.Export(st.BurnConfig)
}

// Reset restores defaults anchored at the current time.
func (s *CandleService) Reset(ctx context.Context) (models.BurnState, error) {
	next, _, err := s.store.update(ctx, func(models.BurnState) (models.BurnState, bool) {
		return solver.Defaults(s.store.clock.Now()), true
	})
	if err != nil {
		s.log.Errorw("candle_reset_failed", "error", err)
		return models.BurnState{}, err
	}
	s.events.record(ctx, models.EventReset, "Candle reset to defaults", nil)
	return next, nil
}

// Ensure persists default state if none exists yet.
func (s *CandleService) Ensure(ctx context.Context) error {
	created, err := s.store.ensure(ctx)
	if err != nil {
		return fmt.Errorf("ensure state: %w", err)
	}
	if created {
		s.log.Infow("candle_state_initialized")
	}
	return nil
}

func validateEdit(e models.Edit) error {
	if e.Empty() {
		return fmt.Errorf("%w: nothing to change", ErrInvalidEdit)
	}
	if e.CalcMode != nil && !e.CalcMode.Valid() {
		return fmt.Errorf("%w: calc mode must be burnRate, endDate, or startDate", ErrInvalidEdit)
	}
	if e.BurnMode != nil && !e.BurnMode.Valid() {
		return fmt.Errorf("%w: burn mode must be simple or advanced", ErrInvalidEdit)
	}
	if e.StartDate != nil && !solver.InDateRange(*e.StartDate) {
		return fmt.Errorf("%w: start date must be within years 1 to 9999", ErrInvalidEdit)
	}
	if e.EndDate != nil && !solver.InDateRange(*e.EndDate) {
		return fmt.Errorf("%w: end date must be within years 1 to 9999", ErrInvalidEdit)
	}
	return nil
}

// describeEdit picks the history entry for a transition.
func describeEdit(prev, next models.BurnState) (string, string, map[string]any) {
	switch {
	case prev.CalcMode != next.CalcMode:
		return models.EventModeChange, "Calculation mode changed",
			map[string]any{"from": prev.CalcMode, "to": next.CalcMode}
	case prev.BurnMode != next.BurnMode:
		return models.EventBurnModeChange, "Burn mode changed",
			map[string]any{"from": prev.BurnMode, "to": next.BurnMode}
	}
	return models.EventEdit, "Candle parameters edited", map[string]any{
		"calc_mode":      next.CalcMode,
		"initial_height": next.InitialHeight,
		"burn_rate":      solver.EffectiveBurnRate(next.BurnConfig),
		"start":          next.StartDate,
		"end":            next.EndDate,
	}
}
