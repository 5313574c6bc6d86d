package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"ember_sculpt/internal/models"
	"ember_sculpt/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockCandle struct {
	state     models.BurnState
	err       error
	exportRaw []byte

	lastEdit   models.Edit
	lastImport []byte
	editCalls  int
	resetCalls int
}

func (m *mockCandle) Edit(ctx context.Context, e models.Edit) (models.BurnState, error) {
	m.editCalls++
	m.lastEdit = e
	return m.state, m.err
}
func (m *mockCandle) Import(ctx context.Context, raw []byte) (models.BurnState, error) {
	m.lastImport = raw
	return m.state, m.err
}
func (m *mockCandle) Export(ctx context.Context) ([]byte, error) {
	return m.exportRaw, m.err
}
func (m *mockCandle) Reset(ctx context.Context) (models.BurnState, error) {
	m.resetCalls++
	return m.state, m.err
}
func (m *mockCandle) Ensure(ctx context.Context) error { return m.err }

type mockPlayback struct {
	state      models.BurnState
	err        error
	calls      []string
	lastOffset time.Duration
}

func (m *mockPlayback) Play(ctx context.Context) (models.BurnState, error) {
	m.calls = append(m.calls, "play")
	return m.state, m.err
}
func (m *mockPlayback) Pause(ctx context.Context) (models.BurnState, error) {
	m.calls = append(m.calls, "pause")
	return m.state, m.err
}
func (m *mockPlayback) Toggle(ctx context.Context) (models.BurnState, error) {
	m.calls = append(m.calls, "toggle")
	return m.state, m.err
}
func (m *mockPlayback) Seek(ctx context.Context, offset time.Duration) (models.BurnState, error) {
	m.calls = append(m.calls, "seek")
	m.lastOffset = offset
	return m.state, m.err
}

type mockMonitoring struct {
	state models.BurnState
	snap  models.Snapshot
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.BurnState, error) {
	return m.state, m.err
}

func (m *mockMonitoring) GetSnapshot(ctx context.Context) (models.Snapshot, error) {
	return m.snap, m.err
}

type mockEventLog struct {
	resp     []models.BurnEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.BurnEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// authedRequest builds a request carrying a valid bearer token.
func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
