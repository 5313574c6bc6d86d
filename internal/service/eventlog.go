package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ember_sculpt/internal/models"
	"ember_sculpt/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// ErrInvalidTimeRange is returned when From is after To.
var ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")

func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeFilter(f LogFilter) (LogFilter, error) {
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
	return f, nil
}

// List returns history entries matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.BurnEvent, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, f.From, f.To, f.Type)
}
