package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moondb/internal/common"
	"moondb/internal/logging"
	"moondb/internal/models"
)

// memAccounts is an in-memory stand-in for the account repository.
type memAccounts struct {
	nextID int64
	rows   map[int64]*models.Account
	err    error
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: map[int64]*models.Account{}}
}

func (m *memAccounts) seed(a models.Account) int64 {
	m.nextID++
	a.UserID = m.nextID
	m.rows[a.UserID] = &a
	return a.UserID
}

func (m *memAccounts) CheckCredentials(_ context.Context, ssn, password string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, r := range m.rows {
		if r.SSN == ssn && r.Password == password {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAccounts) Create(_ context.Context, account *models.Account) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	account.UserID = m.nextID
	cp := *account
	m.rows[cp.UserID] = &cp
	return cp.UserID, nil
}

func (m *memAccounts) UpdatePassword(_ context.Context, userID int64, newPassword string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	r, ok := m.rows[userID]
	if !ok {
		return 0, nil
	}
	r.Password = newPassword
	return 1, nil
}

func (m *memAccounts) Delete(_ context.Context, userID int64) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.rows[userID]; !ok {
		return 0, nil
	}
	delete(m.rows, userID)
	return 1, nil
}

// memMissions is an in-memory stand-in for the reference table.
type memMissions struct {
	rows []models.MoonMission
	err  error
}

func (m *memMissions) List(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		names = append(names, r.Spacecraft)
	}
	return names, nil
}

func (m *memMissions) GetByID(_ context.Context, missionID int64) (*models.MoonMission, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.rows {
		if m.rows[i].MissionID == missionID {
			return &m.rows[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memMissions) CountByYear(_ context.Context, year int) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range m.rows {
		if r.LaunchDate.Year() == year {
			n++
		}
	}
	return n, nil
}

func seededAccounts() *memAccounts {
	acc := newMemAccounts()
	acc.seed(models.Account{
		Name: "AngFra", FirstName: "Angela", LastName: "Fransson",
		SSN: "371108-9221", Password: "MB=V4cbAqPz4vqmQ",
	})
	return acc
}

func seededMissions() *memMissions {
	d := func(y, m, day int) time.Time { return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC) }
	return &memMissions{rows: []models.MoonMission{
		{MissionID: 1, Spacecraft: "Pioneer 0", LaunchDate: d(1958, 8, 17), CarrierRocket: "Thor DM-18 Able I", Operator: "USAF", MissionType: "Orbiter", Outcome: "Launch failure"},
		{MissionID: 2, Spacecraft: "Luna 2", LaunchDate: d(1959, 9, 12), CarrierRocket: "Luna", Operator: "OKB-1", MissionType: "Impactor", Outcome: "Successful"},
		{MissionID: 3, Spacecraft: "Luna 3", LaunchDate: d(1959, 10, 4), CarrierRocket: "Luna", Operator: "OKB-1", MissionType: "Flyby", Outcome: "Successful"},
		{MissionID: 4, Spacecraft: "Ranger 7", LaunchDate: d(1964, 7, 28), CarrierRocket: "Atlas LV-3 Agena-B", Operator: "NASA", MissionType: "Impactor", Outcome: "Successful"},
	}}
}

func newTestApp(input string, acc *memAccounts, mis *memMissions) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := NewApp(acc, mis, strings.NewReader(input), &out, logger)
	return app, &out
}

func session(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestRun_ValidLogin_ListMissions_Exit(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "1", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "SSN:")
	assert.Contains(t, s, "Password:")
	assert.Contains(t, s, "Luna 2")
	assert.Contains(t, s, "Bye!")
}

func TestRun_InvalidLogin_ExitBeforeMenu(t *testing.T) {
	app, out := newTestApp(
		session("000000-0000", "badPassword", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Invalid ssn or password")
	assert.NotContains(t, s, "Welcome to the Moon Mission Database!")
}

func TestRun_LoginRetryThenSuccess(t *testing.T) {
	app, out := newTestApp(
		session("000000-0000", "badPassword", "1", "371108-9221", "MB=V4cbAqPz4vqmQ", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Invalid ssn or password")
	assert.Contains(t, s, "Welcome to the Moon Mission Database!")
}

func TestRun_ShowMission(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "2", "2", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Mission ID: 2")
	assert.Contains(t, s, "Spacecraft: Luna 2")
	assert.Contains(t, s, "Launch Date: 1959-09-12")
	assert.Contains(t, s, "Carrier Rocket: Luna")
	assert.Contains(t, s, "Operator: OKB-1")
	assert.Contains(t, s, "Mission Type: Impactor")
	assert.Contains(t, s, "Outcome: Successful")
}

func TestRun_ShowMission_NotFound(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "2", "9999", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Not found")
}

func TestRun_CountMissionsByYear(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "3", "1959", "3", "2001", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "1959: 2")
	assert.Contains(t, s, "2001: 0")
}

func TestRun_CreateAccount(t *testing.T) {
	acc := seededAccounts()
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "4", "Ada", "Lovelace", "181512-0001", "s3cr3t", "0"),
		acc, seededMissions())

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Account created for AdaLov")
	assert.Len(t, acc.rows, 2)

	ok, err := acc.CheckCredentials(context.Background(), "181512-0001", "s3cr3t")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRun_UpdatePassword(t *testing.T) {
	acc := seededAccounts()
	id := acc.seed(models.Account{Name: "TesUse", SSN: "111111-1111", Password: "oldpass"})

	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "5", "2", "newpass123", "0"),
		acc, seededMissions())

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Password updated for user ID 2")
	assert.Equal(t, "newpass123", acc.rows[id].Password)
	// other rows untouched
	assert.Equal(t, "MB=V4cbAqPz4vqmQ", acc.rows[1].Password)
}

func TestRun_UpdatePassword_NoSuchAccount(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "5", "9999", "newpass123", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "No account found with user ID 9999")
}

func TestRun_DeleteAccount(t *testing.T) {
	acc := seededAccounts()
	acc.seed(models.Account{Name: "ToDel", SSN: "222222-2222", Password: "pw"})

	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "6", "2", "6", "2", "0"),
		acc, seededMissions())

	require.NoError(t, app.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Account deleted for user ID 2")
	assert.Contains(t, s, "No account found with user ID 2")
	assert.Len(t, acc.rows, 1)
}

func TestRun_InvalidMenuOption_Reprompts(t *testing.T) {
	app, out := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "notanoption", "0"),
		seededAccounts(), seededMissions())

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "invalid option")
}

func TestRun_NonNumericMissionID_IsFatal(t *testing.T) {
	app, _ := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ", "2", "Luna"),
		seededAccounts(), seededMissions())

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidNumber))
}

func TestRun_StoreFailureIsFatal(t *testing.T) {
	acc := seededAccounts()
	acc.err = errors.New("connection reset")

	app, _ := newTestApp(
		session("371108-9221", "MB=V4cbAqPz4vqmQ"),
		acc, seededMissions())

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
