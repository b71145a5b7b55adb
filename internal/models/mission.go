package models

import "time"

// MoonMission is a row of the read-only moon_mission reference table.
// Rows are seeded externally and never mutated by this application.
type MoonMission struct {
	MissionID     int64
	Spacecraft    string
	LaunchDate    time.Time
	CarrierRocket string
	Operator      string
	MissionType   string
	Outcome       string
}
