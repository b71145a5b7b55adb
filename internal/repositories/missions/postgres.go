// Package missions provides read-only data access for the moon_mission
// reference table.
package missions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moondb/internal/common"
	"moondb/internal/dbx"
	"moondb/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]string, error) {
	query :=
		`SELECT spacecraft FROM moon_mission
		 ORDER BY mission_id
		 `

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

func (r *PostgresRepository) GetByID(ctx context.Context, missionID int64) (*models.MoonMission, error) {
	query :=
		`SELECT mission_id, spacecraft, launch_date, carrier_rocket, operator, mission_type, outcome
		 FROM moon_mission
		 WHERE mission_id = $1
		 `

	m := &models.MoonMission{}
	err := r.db.QueryRowContext(ctx, query, missionID).Scan(
		&m.MissionID, &m.Spacecraft, &m.LaunchDate, &m.CarrierRocket,
		&m.Operator, &m.MissionType, &m.Outcome)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) CountByYear(ctx context.Context, year int) (int, error) {
	query :=
		`SELECT COUNT(*) FROM moon_mission
		 WHERE EXTRACT(YEAR FROM launch_date) = $1
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, year).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
