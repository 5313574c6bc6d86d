package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ember_sculpt/internal/models"

	"github.com/google/uuid"
)

// EventSQLite stores the burn journal in the burn_events table.
type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

const (
	insertEventSQL = `
	INSERT INTO burn_events (id, occurred_at, type, message, meta)
	VALUES (?, ?, ?, ?, ?)
`
	selectEventsSQL = `SELECT id, occurred_at, type, message, meta FROM burn_events`
)

func normalizeEventType(t string) string { return strings.ToUpper(strings.TrimSpace(t)) }

// Append inserts e. A missing EventID gets a fresh uuid and a zero
// OccurredAt becomes the current UTC time.
func (r *EventSQLite) Append(ctx context.Context, e models.BurnEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.UTC(),
		normalizeEventType(e.Type),
		e.Description,
		encodeMeta(e.Metadata),
	)
	if err != nil {
		return fmt.Errorf("append event %s: %w", e.EventID, err)
	}
	return nil
}

// List returns events in [from, to] with the given type, oldest first.
// Zero bounds and an empty type do not filter.
func (r *EventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.BurnEvent, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = normalizeEventType(typ); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectEventsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BurnEvent, 0, 64)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanEvent(rows *sql.Rows) (models.BurnEvent, error) {
	var (
		ev   models.BurnEvent
		meta sql.NullString
	)
	if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Description, &meta); err != nil {
		return ev, err
	}
	ev.OccurredAt = ev.OccurredAt.UTC()
	ev.Metadata = decodeMeta(meta)
	return ev, nil
}

// encodeMeta stores metadata as JSON; unencodable values are dropped.
func encodeMeta(v any) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// decodeMeta returns the parsed JSON, or the raw text when it is not JSON.
func decodeMeta(s sql.NullString) any {
	if !s.Valid || s.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(s.String), &v); err != nil {
		return s.String
	}
	return v
}
