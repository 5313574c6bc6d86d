package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/repository"
)

var errStore = errors.New("store unavailable")

var t0 = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fakeStateRepo keeps the row in memory.
type fakeStateRepo struct {
	mu      sync.Mutex
	st      models.BurnState
	saves   int
	loads   int
	saveErr error
	loadErr error
}

func (r *fakeStateRepo) Save(_ context.Context, s models.BurnState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.st = s
	return nil
}

func (r *fakeStateRepo) Load(_ context.Context) (models.BurnState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.loadErr != nil {
		return models.BurnState{}, r.loadErr
	}
	return r.st, nil
}

func (r *fakeStateRepo) stored() models.BurnState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st
}

type fakeEventRepo struct {
	mu        sync.Mutex
	events    []models.BurnEvent
	appendErr error

	lastFrom, lastTo time.Time
	lastType         string
}

func (r *fakeEventRepo) Append(_ context.Context, e models.BurnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.events = append(r.events, e)
	return nil
}

func (r *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.BurnEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFrom, r.lastTo, r.lastType = from, to, typ
	var out []models.BurnEvent
	for _, e := range r.events {
		if typ == "" || e.Type == typ {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	clock  *fakeClock
	state  *fakeStateRepo
	events *fakeEventRepo
	svc    *Service
}

func newFixture() *fixture {
	f := &fixture{
		clock:  &fakeClock{now: t0},
		state:  &fakeStateRepo{},
		events: &fakeEventRepo{},
	}
	repos := &repository.Repository{StateRepo: f.state, EventRepo: f.events, Auth: &userRepo{}}
	f.svc = NewService(repos, Config{Clock: f.clock, Log: logger.Nop(), SigningKey: "test-key"})
	return f
}

func ptr[T any](v T) *T { return &v }
