package missions

import (
	"context"

	"moondb/internal/models"
)

// Repository is the read-only data access contract for the moon_mission
// reference table.
type Repository interface {
	// List returns the spacecraft names ordered by mission id ascending.
	List(ctx context.Context) ([]string, error)

	// GetByID returns the full mission record, or common.ErrNotFound when
	// no row has the given id.
	GetByID(ctx context.Context, missionID int64) (*models.MoonMission, error)

	// CountByYear returns how many missions launched in the given calendar
	// year, zero included.
	CountByYear(ctx context.Context, year int) (int, error)
}
