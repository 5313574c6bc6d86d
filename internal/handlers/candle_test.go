package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ember_sculpt/internal/configio"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/service"
)

var testStart = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

func testState() models.BurnState {
	return models.BurnState{
		ID: 1,
		BurnConfig: models.BurnConfig{
			StartDate:      testStart,
			EndDate:        testStart.Add(10 * time.Hour),
			InitialHeight:  10,
			CandleWidth:    4,
			BurnMode:       models.BurnModeSimple,
			CalcMode:       models.CalcEndDate,
			SimpleBurnRate: 1,
			WaxDensity:     0.554,
			WaxBurnRate:    0.25,
		},
		CurrentTime: testStart.Add(time.Hour),
	}
}

type snapshotResponse struct {
	Status   string          `json:"status"`
	Snapshot models.Snapshot `json:"snapshot"`
}

func TestCandleHandlers_GetSnapshot(t *testing.T) {
	mon := &mockMonitoring{snap: models.Snapshot{CandleHeight: 9, InitialHeight: 10, BurningTime: "01:00:00"}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/candle/state", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/candle/state", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var snap models.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.CandleHeight != 9 || snap.BurningTime != "01:00:00" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	mon.err = errors.New("db down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/candle/state", ""))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestCandleHandlers_Edit(t *testing.T) {
	candle := &mockCandle{state: testState()}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
	r := newTestRouter(s)

	body := `{
		"initial_height": "12in",
		"burn_rate": 0.5,
		"wax_density": "abc",
		"calc_mode": "startDate",
		"end_date": "2025-03-02T06:00:00Z",
		"flame_color": "#ff8800"
	}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/candle/edit", body))
	if w.Code != http.StatusOK {
		t.Fatalf("edit status=%d, body=%s", w.Code, w.Body.String())
	}

	e := candle.lastEdit
	if e.InitialHeight == nil || *e.InitialHeight != 12 {
		t.Errorf("initial height not coerced: %v", e.InitialHeight)
	}
	if e.BurnRate == nil || *e.BurnRate != 0.5 {
		t.Errorf("burn rate: %v", e.BurnRate)
	}
	if e.WaxDensity == nil || *e.WaxDensity != 0 {
		t.Errorf("non-numeric text must read as 0, got %v", e.WaxDensity)
	}
	if e.CalcMode == nil || *e.CalcMode != models.CalcStartDate {
		t.Errorf("calc mode: %v", e.CalcMode)
	}
	if e.EndDate == nil || !e.EndDate.Equal(time.Date(2025, 3, 2, 6, 0, 0, 0, time.UTC)) {
		t.Errorf("end date: %v", e.EndDate)
	}
	if e.CandleWidth != nil || e.StartDate != nil || e.BurnMode != nil {
		t.Errorf("omitted fields must stay nil: %+v", e)
	}

	var resp snapshotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusEdited || resp.Snapshot.CandleHeight != 9 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCandleHandlers_EditValidation(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{"bad hex color", `{"wax_color":"beige"}`, nil, http.StatusBadRequest},
		{"unknown calc mode", `{"calc_mode":"duration"}`, nil, http.StatusBadRequest},
		{"bad date", `{"start_date":"tomorrow"}`, nil, http.StatusBadRequest},
		{"service rejects", `{}`, fmt.Errorf("%w: nothing to change", service.ErrInvalidEdit), http.StatusBadRequest},
		{"service fails", `{"burn_rate":1}`, errors.New("disk full"), http.StatusInternalServerError},
		{"oversized body", `{"burn_rate":"` + strings.Repeat("9", maxEditBytes) + `"}`, nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candle := &mockCandle{err: tc.svcErr}
			s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/candle/edit", tc.body))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestCandleHandlers_Reset(t *testing.T) {
	candle := &mockCandle{state: testState()}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/candle/reset", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("reset status=%d, body=%s", w.Code, w.Body.String())
	}
	if candle.resetCalls != 1 {
		t.Fatalf("expected Reset to be called once, got %d", candle.resetCalls)
	}
	var resp snapshotResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusReset || resp.Snapshot.TotalDurationMs != (10*time.Hour).Milliseconds() {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCandleHandlers_ExportConfig(t *testing.T) {
	raw := []byte(`{"startDate":"2025-03-01T18:00:00.000Z"}`)
	candle := &mockCandle{exportRaw: raw}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/candle/config", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("export status=%d, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, configio.Filename) {
		t.Fatalf("content disposition: %q", got)
	}
	if w.Body.String() != string(raw) {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestCandleHandlers_ImportConfig(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		candle := &mockCandle{state: testState()}
		s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
		r := newTestRouter(s)

		body := `{"startDate":"2025-03-01T18:00:00.000Z","endDate":"2025-03-02T04:00:00.000Z"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/candle/config", body))
		if w.Code != http.StatusOK {
			t.Fatalf("import status=%d, body=%s", w.Code, w.Body.String())
		}
		if string(candle.lastImport) != body {
			t.Fatalf("body not forwarded verbatim: %s", candle.lastImport)
		}
		var resp snapshotResponse
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Status != statusImported {
			t.Fatalf("status: %q", resp.Status)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		candle := &mockCandle{err: fmt.Errorf("%w: endDate missing", configio.ErrMalformed)}
		s := &service.Service{Authorization: &mockAuth{parseID: 7}, Candle: candle}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/candle/config", `{"startDate":"x"}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := map[string]float64{
		`3.5`:     3.5,
		`"3.5"`:   3.5,
		`" 12in"`: 12,
		`""`:      0,
		`"wick"`:  0,
		`-2`:      -2,
	}
	for in, want := range cases {
		var n number
		if err := json.Unmarshal([]byte(in), &n); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if float64(n) != want {
			t.Errorf("%s: got %v, want %v", in, float64(n), want)
		}
	}
}
