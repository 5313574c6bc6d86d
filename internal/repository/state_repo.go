package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ember_sculpt/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	burnStateRowID = 1

	upsertStateSQL = `
		INSERT INTO burn_state (
			id, start_date, end_date, playhead, initial_height, candle_width,
			burn_mode, calc_mode, burn_rate, wax_density, wax_burn_rate,
			flame_color, wax_color, ruler_color, ruler_label_color, camera_state,
			playing, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			start_date=excluded.start_date,
			end_date=excluded.end_date,
			playhead=excluded.playhead,
			initial_height=excluded.initial_height,
			candle_width=excluded.candle_width,
			burn_mode=excluded.burn_mode,
			calc_mode=excluded.calc_mode,
			burn_rate=excluded.burn_rate,
			wax_density=excluded.wax_density,
			wax_burn_rate=excluded.wax_burn_rate,
			flame_color=excluded.flame_color,
			wax_color=excluded.wax_color,
			ruler_color=excluded.ruler_color,
			ruler_label_color=excluded.ruler_label_color,
			camera_state=excluded.camera_state,
			playing=excluded.playing,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, start_date, end_date, playhead, initial_height, candle_width,
			burn_mode, calc_mode, burn_rate, wax_density, wax_burn_rate,
			flame_color, wax_color, ruler_color, ruler_label_color, camera_state,
			playing, updated_at
		FROM burn_state WHERE id=?
	`
)

// cameraToNull stores an absent camera as NULL.
func cameraToNull(raw []byte) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

// Save upserts the burn_state row (id always 1). Times are written in UTC.
func (r *StateSQLite) Save(ctx context.Context, st models.BurnState) error {
	updated := st.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	} else {
		updated = updated.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		burnStateRowID,
		st.StartDate.UTC(),
		st.EndDate.UTC(),
		st.CurrentTime.UTC(),
		st.InitialHeight,
		st.CandleWidth,
		string(st.BurnMode),
		string(st.CalcMode),
		st.SimpleBurnRate,
		st.WaxDensity,
		st.WaxBurnRate,
		st.FlameColor,
		st.WaxColor,
		st.RulerColor,
		st.RulerLabelColor,
		cameraToNull(st.CameraState),
		st.IsPlaying,
		updated,
	)
	return err
}

// Load fetches the burn_state row. A zero state (ID 0) means nothing is stored yet.
func (r *StateSQLite) Load(ctx context.Context) (models.BurnState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, burnStateRowID)

	var (
		s        models.BurnState
		burnMode string
		calcMode string
		camera   sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.StartDate,
		&s.EndDate,
		&s.CurrentTime,
		&s.InitialHeight,
		&s.CandleWidth,
		&burnMode,
		&calcMode,
		&s.SimpleBurnRate,
		&s.WaxDensity,
		&s.WaxBurnRate,
		&s.FlameColor,
		&s.WaxColor,
		&s.RulerColor,
		&s.RulerLabelColor,
		&camera,
		&s.IsPlaying,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BurnState{}, nil
		}
		return models.BurnState{}, err
	}

	s.BurnMode = models.BurnMode(burnMode)
	s.CalcMode = models.CalcMode(calcMode)
	if camera.Valid && camera.String != "" {
		s.CameraState = []byte(camera.String)
	}
	s.StartDate = s.StartDate.UTC()
	s.EndDate = s.EndDate.UTC()
	s.CurrentTime = s.CurrentTime.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
