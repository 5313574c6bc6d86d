package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ember_sculpt/internal/models"
)

func TestStateStore_CachesAfterFirstSave(t *testing.T) {
	f := newFixture()
	store := newStateStore(f.state, f.clock)
	ctx := context.Background()

	if _, err := store.ensure(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := store.get(ctx); err != nil {
			t.Fatalf("get: %v", err)
		}
	}
	if f.state.loads != 1 {
		t.Fatalf("expected a single repo load, got %d", f.state.loads)
	}
}

func TestStateStore_UnsavedDefaultsStayStable(t *testing.T) {
	f := newFixture()
	store := newStateStore(f.state, f.clock)
	ctx := context.Background()

	first, err := store.get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	f.clock.Advance(time.Hour)
	second, err := store.get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !second.StartDate.Equal(first.StartDate) || !second.EndDate.Equal(first.EndDate) {
		t.Fatalf("window moved: %v..%v then %v..%v", first.StartDate, first.EndDate, second.StartDate, second.EndDate)
	}

	if _, err := store.ensure(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got := f.state.stored(); !got.StartDate.Equal(first.StartDate) {
		t.Fatalf("ensure persisted %v, want %v", got.StartDate, first.StartDate)
	}
}

func TestStateStore_UnchangedSkipsSave(t *testing.T) {
	f := newFixture()
	store := newStateStore(f.state, f.clock)

	_, changed, err := store.update(context.Background(), func(cur models.BurnState) (models.BurnState, bool) {
		return cur, false
	})
	if err != nil || changed {
		t.Fatalf("changed=%v err=%v", changed, err)
	}
	if f.state.saves != 0 {
		t.Fatalf("expected no saves, got %d", f.state.saves)
	}
}

func TestStateStore_FailedSaveIsNotCached(t *testing.T) {
	f := newFixture()
	store := newStateStore(f.state, f.clock)
	ctx := context.Background()
	f.state.saveErr = errStore

	_, _, err := store.update(ctx, func(cur models.BurnState) (models.BurnState, bool) {
		cur.InitialHeight = 99
		return cur, true
	})
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	st, err := store.get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st.InitialHeight == 99 {
		t.Fatalf("failed save leaked into current state")
	}
}
