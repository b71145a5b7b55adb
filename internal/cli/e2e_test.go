package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moondb/internal/logging"
	"moondb/internal/store"
)

// Full session against a real embedded store: login with the seeded
// account, list missions, count a year, create an account, exit.
func TestSession_EndToEnd(t *testing.T) {
	ctx := context.Background()

	st, err := store.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	input := session(
		"371108-9221", "MB=V4cbAqPz4vqmQ",
		"1",
		"3", "1959",
		"4", "Ada", "Lovelace", "181512-0001", "s3cr3t",
		"0",
	)

	var out bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := NewApp(st.Accounts, st.Missions, strings.NewReader(input), &out, logger)

	require.NoError(t, app.Run(ctx))

	s := out.String()
	assert.Contains(t, s, "Luna 2")
	assert.Contains(t, s, "1959: 3")
	assert.Contains(t, s, "Account created for AdaLov")
	assert.Contains(t, s, "Bye!")

	ok, err := st.Accounts.CheckCredentials(ctx, "181512-0001", "s3cr3t")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSession_EndToEnd_InvalidLogin(t *testing.T) {
	ctx := context.Background()

	st, err := store.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var out bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := NewApp(st.Accounts, st.Missions,
		strings.NewReader(session("000000-0000", "badPassword", "0")), &out, logger)

	require.NoError(t, app.Run(ctx))

	s := out.String()
	assert.Contains(t, s, "Invalid ssn or password")
	assert.NotContains(t, s, "Welcome to the Moon Mission Database!")
}
