package repository

import (
	"context"
	"database/sql"
	"time"

	"ember_sculpt/internal/models"
)

// Authorization looks up and creates API users.
type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// StateRepo persists the single burn state row.
type StateRepo interface {
	Save(ctx context.Context, s models.BurnState) error
	Load(ctx context.Context) (models.BurnState, error)
}

// EventRepo is the append-only burn history.
type EventRepo interface {
	Append(ctx context.Context, e models.BurnEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.BurnEvent, error)
}

// Repository groups the sqlite-backed stores the services depend on.
type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
