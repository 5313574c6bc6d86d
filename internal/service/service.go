package service

import (
	"context"
	"time"

	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/models"
	"ember_sculpt/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Candle edits, imports, exports and resets the burn configuration.
type Candle interface {
	Edit(ctx context.Context, e models.Edit) (models.BurnState, error)
	Import(ctx context.Context, raw []byte) (models.BurnState, error)
	Export(ctx context.Context) ([]byte, error)
	Reset(ctx context.Context) (models.BurnState, error)
	Ensure(ctx context.Context) error
}

// Monitoring exposes the current state and its derived view, read-only.
type Monitoring interface {
	GetState(ctx context.Context) (models.BurnState, error)
	GetSnapshot(ctx context.Context) (models.Snapshot, error)
}

// Playback controls the virtual clock.
type Playback interface {
	Play(ctx context.Context) (models.BurnState, error)
	Pause(ctx context.Context) (models.BurnState, error)
	Toggle(ctx context.Context) (models.BurnState, error)
	Seek(ctx context.Context, offset time.Duration) (models.BurnState, error)
}

// EventLog exposes the append-only history with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.BurnEvent, error)
}

// Simulator runs the frame loop. Stop it by canceling ctx.
type Simulator interface {
	Run(ctx context.Context, frame time.Duration)
}

type Service struct {
	Candle
	Monitoring
	Playback
	EventLog
	Simulator
	Authorization
}

// Config carries the non-repository dependencies of the services.
type Config struct {
	Clock      Clock
	Log        *logger.Logger
	SigningKey string
	TokenTTL   time.Duration
}

// NewService wires the repository layer into the concrete services. The
// candle, monitoring, playback and simulator services share one state store.
func NewService(repos *repository.Repository, cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}

	store := newStateStore(repos.StateRepo, cfg.Clock)
	events := journal{repo: repos.EventRepo, clock: cfg.Clock, log: cfg.Log}

	return &Service{
		Candle:        NewCandleService(store, events, cfg.Log),
		Monitoring:    NewMonitoringService(store),
		Playback:      NewPlaybackService(store, events, cfg.Log),
		EventLog:      NewEventLogService(repos.EventRepo),
		Simulator:     NewSimulatorService(store, events, cfg.Log),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL, cfg.Clock),
	}
}
