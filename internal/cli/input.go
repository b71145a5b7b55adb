package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"

	"moondb/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// readLine reads one line from reader and trims surrounding whitespace.
// If EOF occurs after some input was read, the partial line is returned.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText prints a prompt to w and reads a single trimmed line of
// input from reader. An empty line yields an empty string, not an error.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetInt prints a prompt and parses the next trimmed line as a base-10
// integer. Non-numeric input is returned as common.ErrInvalidNumber; per the
// application's error model the caller treats that as fatal for the run
// rather than re-prompting.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidNumber, text)
	}
	return n, nil
}

// getSecret prints a prompt and reads a secret value. On an interactive
// terminal the input is read without echo; with scripted input it is an
// ordinary trimmed line read so piped sessions keep working.
func (a *App) getSecret(prompt string) (string, error) {
	if a.secretInput == nil {
		return GetSimpleText(a.reader, prompt, a.out)
	}

	if _, err := fmt.Fprintln(a.out, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(a.secretInput.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}
