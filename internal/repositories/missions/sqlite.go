package missions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moondb/internal/common"
	"moondb/internal/dbx"
	"moondb/internal/models"
)

// SQLiteRepository backs the embedded development database. Launch dates are
// stored as ISO text (sqlite has no DATE type), so they are parsed on read.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	query := `SELECT spacecraft FROM moon_mission ORDER BY mission_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return names, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, missionID int64) (*models.MoonMission, error) {
	query :=
		`SELECT mission_id, spacecraft, launch_date, carrier_rocket, operator, mission_type, outcome
		 FROM moon_mission
		 WHERE mission_id = ?
		 `

	m := &models.MoonMission{}
	var launchDate string
	err := r.db.QueryRowContext(ctx, query, missionID).Scan(
		&m.MissionID, &m.Spacecraft, &launchDate, &m.CarrierRocket,
		&m.Operator, &m.MissionType, &m.Outcome)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	m.LaunchDate, err = time.Parse("2006-01-02", launchDate)
	if err != nil {
		return nil, fmt.Errorf("invalid launch_date %q: %w", launchDate, err)
	}

	return m, nil
}

func (r *SQLiteRepository) CountByYear(ctx context.Context, year int) (int, error) {
	query :=
		`SELECT COUNT(*) FROM moon_mission
		 WHERE CAST(strftime('%Y', launch_date) AS INTEGER) = ?
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
