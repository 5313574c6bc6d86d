package service

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"ember_sculpt/internal/configio"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

func TestCandle_Edit_InitializesDefaultsAndSolves(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	st, err := f.svc.Edit(ctx, models.Edit{InitialHeight: ptr(12.0)})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if st.ID != 1 {
		t.Fatalf("expected id 1, got %d", st.ID)
	}
	if st.CandleWidth != 4.8 {
		t.Errorf("simple width: got %v, want 4.8", st.CandleWidth)
	}
	if want := t0.Add(12 * time.Hour); !st.EndDate.Equal(want) {
		t.Errorf("end: got %v, want %v", st.EndDate, want)
	}
	if f.state.saves != 1 {
		t.Fatalf("expected 1 save, got %d", f.state.saves)
	}
	if got := f.state.stored(); !got.EndDate.Equal(st.EndDate) || !got.UpdatedAt.Equal(t0) {
		t.Fatalf("stored state mismatch: %+v", got)
	}
	if got := f.events.types(); !reflect.DeepEqual(got, []string{models.EventEdit}) {
		t.Fatalf("events: got %v", got)
	}
}

func TestCandle_Edit_RecordsModeChanges(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.svc.Edit(ctx, models.Edit{CalcMode: ptr(models.CalcBurnRate)}); err != nil {
		t.Fatalf("Edit calc mode: %v", err)
	}
	if _, err := f.svc.Edit(ctx, models.Edit{BurnMode: ptr(models.BurnModeAdvanced)}); err != nil {
		t.Fatalf("Edit burn mode: %v", err)
	}

	want := []string{models.EventModeChange, models.EventBurnModeChange}
	if got := f.events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events: got %v, want %v", got, want)
	}
	meta, ok := f.events.events[0].Metadata.(map[string]any)
	if !ok || meta["from"] != models.CalcEndDate || meta["to"] != models.CalcBurnRate {
		t.Fatalf("unexpected metadata: %#v", f.events.events[0].Metadata)
	}
}

func TestCandle_Edit_Rejected(t *testing.T) {
	cases := []struct {
		name string
		edit models.Edit
	}{
		{"empty", models.Edit{}},
		{"unknown calc mode", models.Edit{CalcMode: ptr(models.CalcMode("duration"))}},
		{"unknown burn mode", models.Edit{BurnMode: ptr(models.BurnMode("fast"))}},
		{"start before year 1", models.Edit{StartDate: ptr(solver.MinDate.Add(-time.Second))}},
		{"end past year 9999", models.Edit{EndDate: ptr(solver.MaxDate.Add(time.Nanosecond))}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture()
			_, err := f.svc.Edit(context.Background(), tc.edit)
			if !errors.Is(err, ErrInvalidEdit) {
				t.Fatalf("expected ErrInvalidEdit, got %v", err)
			}
			if f.state.saves != 0 {
				t.Fatalf("expected no save, got %d", f.state.saves)
			}
		})
	}
}

func TestCandle_Edit_SaveErrorKeepsPreviousState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	before, err := f.svc.Edit(ctx, models.Edit{BurnRate: ptr(2.0)})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	f.state.saveErr = errStore
	if _, err := f.svc.Edit(ctx, models.Edit{BurnRate: ptr(5.0)}); !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}

	snap, err := f.svc.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.EffectiveBurnRate != 2 || !snap.EndDate.Equal(before.EndDate) {
		t.Fatalf("state changed after failed save: %+v", snap)
	}
}

func TestCandle_Import_Malformed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if err := f.svc.Ensure(ctx); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	before := f.state.stored()

	_, err := f.svc.Import(ctx, []byte(`{"startDate": "yesterday"}`))
	if !errors.Is(err, configio.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if f.state.saves != 1 {
		t.Fatalf("expected state untouched, saves=%d", f.state.saves)
	}
	if after := f.state.stored(); !after.EndDate.Equal(before.EndDate) || after.InitialHeight != before.InitialHeight {
		t.Fatalf("state changed: %+v", after)
	}
	if got := f.events.types(); !reflect.DeepEqual(got, []string{models.EventImportFailed}) {
		t.Fatalf("events: got %v", got)
	}
}

func TestCandle_Import_ReplacesConfigAndPauses(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.svc.Play(ctx); err != nil {
		t.Fatalf("Play: %v", err)
	}

	raw := []byte(`{
		"startDate": "2025-06-01T00:00:00.000Z",
		"endDate": "2025-06-01T05:00:00.000Z",
		"burnRate": 0.5,
		"initialCandleHeight": 6,
		"candleWidth": 3,
		"calcMode": "burnRate",
		"burnMode": "advanced",
		"flameColor": "#112233",
		"waxColor": "#445566"
	}`)
	st, err := f.svc.Import(ctx, raw)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if st.IsPlaying {
		t.Errorf("expected playback paused after import")
	}
	if want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC); !st.CurrentTime.Equal(want) {
		t.Errorf("current time: got %v, want %v", st.CurrentTime, want)
	}
	if st.CalcMode != models.CalcBurnRate || st.BurnMode != models.BurnModeAdvanced {
		t.Errorf("modes: got %s/%s", st.CalcMode, st.BurnMode)
	}
	if st.CandleWidth != 3 || st.InitialHeight != 6 || st.SimpleBurnRate != 0.5 {
		t.Errorf("geometry not imported verbatim: %+v", st.BurnConfig)
	}
	if st.WaxDensity != 0.554 || st.RulerColor != "#FFFFFF" {
		t.Errorf("defaults not applied: %+v", st.BurnConfig)
	}

	want := []string{models.EventPlay, models.EventImport}
	if got := f.events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events: got %v, want %v", got, want)
	}
}

func TestCandle_ExportRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	st, err := f.svc.Edit(ctx, models.Edit{
		InitialHeight: ptr(8.0),
		BurnRate:      ptr(0.5),
		FlameColor:    ptr("#ABCDEF"),
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	raw, err := f.svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	got, err := configio.Import(raw)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}

	if !got.StartDate.Equal(st.StartDate) || !got.EndDate.Equal(st.EndDate) {
		t.Errorf("dates: got %v..%v, want %v..%v", got.StartDate, got.EndDate, st.StartDate, st.EndDate)
	}
	if got.InitialHeight != 8 || got.SimpleBurnRate != 0.5 || got.FlameColor != "#ABCDEF" {
		t.Errorf("fields lost in round trip: %+v", got)
	}
	if got.CalcMode != st.CalcMode || got.BurnMode != st.BurnMode {
		t.Errorf("modes lost in round trip: %+v", got)
	}
}

func TestCandle_Reset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.svc.Edit(ctx, models.Edit{InitialHeight: ptr(3.0)}); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	f.clock.Advance(time.Hour)

	st, err := f.svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	start := t0.Add(time.Hour)
	if !st.StartDate.Equal(start) || !st.EndDate.Equal(start.Add(10*time.Hour)) {
		t.Errorf("window: got %v..%v", st.StartDate, st.EndDate)
	}
	if st.InitialHeight != 10 || st.IsPlaying {
		t.Errorf("unexpected reset state: %+v", st)
	}
	if got := f.events.types(); got[len(got)-1] != models.EventReset {
		t.Fatalf("events: got %v", got)
	}
}

func TestCandle_Ensure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := f.svc.Ensure(ctx); err != nil {
			t.Fatalf("Ensure #%d: %v", i, err)
		}
	}
	if f.state.saves != 1 {
		t.Fatalf("expected a single save, got %d", f.state.saves)
	}
	if st := f.state.stored(); st.ID != 1 || !st.StartDate.Equal(t0) {
		t.Fatalf("unexpected persisted defaults: %+v", st)
	}
}

func TestCandle_Ensure_LoadError(t *testing.T) {
	f := newFixture()
	f.state.loadErr = errStore

	if err := f.svc.Ensure(context.Background()); !errors.Is(err, errStore) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestCandle_EventAppendFailureDoesNotFailEdit(t *testing.T) {
	f := newFixture()
	f.events.appendErr = errors.New("disk full")

	st, err := f.svc.Edit(context.Background(), models.Edit{BurnRate: ptr(2.0)})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got := st.EndDate.Sub(st.StartDate); math.Abs(got.Hours()-5) > 1e-9 {
		t.Fatalf("expected 5h window, got %v", got)
	}
}
