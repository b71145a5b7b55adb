package cli

import (
	"context"
	"errors"
	"fmt"

	"moondb/internal/common"
)

// ListMissions prints the spacecraft names of every reference row, one per
// line, ordered by mission id.
func (a *App) ListMissions(ctx context.Context) error {
	names, err := a.missions.List(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

// ShowMission prompts for a mission id and prints every field of the
// matching row, or "Not found" when no row has that id.
func (a *App) ShowMission(ctx context.Context) error {
	id, err := GetInt(a.reader, "mission_id: ", a.out)
	if err != nil {
		return err
	}

	m, err := a.missions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Not found")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Mission ID: %d\n", m.MissionID)
	fmt.Fprintf(a.out, "Spacecraft: %s\n", m.Spacecraft)
	fmt.Fprintf(a.out, "Launch Date: %s\n", m.LaunchDate.Format("2006-01-02"))
	fmt.Fprintf(a.out, "Carrier Rocket: %s\n", m.CarrierRocket)
	fmt.Fprintf(a.out, "Operator: %s\n", m.Operator)
	fmt.Fprintf(a.out, "Mission Type: %s\n", m.MissionType)
	fmt.Fprintf(a.out, "Outcome: %s\n", m.Outcome)
	return nil
}

// CountMissionsByYear prompts for a year and prints "<year>: <count>".
func (a *App) CountMissionsByYear(ctx context.Context) error {
	year, err := GetInt(a.reader, "Year: ", a.out)
	if err != nil {
		return err
	}

	count, err := a.missions.CountByYear(ctx, int(year))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d: %d\n", year, count)
	return nil
}
