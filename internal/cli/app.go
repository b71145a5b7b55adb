// Package cli implements the interactive surface of the moon mission
// console: the login loop, the numbered menu, and the operations it
// dispatches to the repositories.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"moondb/internal/logging"
	"moondb/internal/repositories/accounts"
	"moondb/internal/repositories/missions"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	accounts accounts.Repository
	missions missions.Repository
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	// non-nil only when input is an interactive terminal; enables no-echo
	// password entry. Scripted input always falls back to plain line reads.
	secretInput *os.File
}

// NewApp wires the interactive session. Input, output, and the repositories
// are injected so the core never touches ambient global streams.
func NewApp(acc accounts.Repository, mis missions.Repository, in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		accounts: acc,
		missions: mis,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		a.secretInput = f
	}
	return a
}

// Run drives one interactive session: the login loop, then the menu loop.
// A nil error means the user chose to exit; any returned error is fatal for
// the run and should terminate the process with a failure status.
func (a *App) Run(ctx context.Context) error {
	ok, err := a.Login(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.Menu(ctx)
}
