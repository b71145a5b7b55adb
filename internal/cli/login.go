package cli

import (
	"context"
	"fmt"
)

// Login runs the credential loop. It prompts for SSN and password, checks
// them against the account table, and on mismatch offers a retry/exit
// choice. There is no attempt limit; the loop ends only on a successful
// login (true, nil), an explicit "0" exit (false, nil), or an I/O or store
// failure.
func (a *App) Login(ctx context.Context) (bool, error) {
	for {
		ssn, err := GetSimpleText(a.reader, "SSN: ", a.out)
		if err != nil {
			return false, err
		}

		password, err := a.getSecret("Password: ")
		if err != nil {
			return false, err
		}

		ok, err := a.accounts.CheckCredentials(ctx, ssn, password)
		if err != nil {
			return false, err
		}
		if ok {
			a.logger.Info(ctx, "login successful")
			return true, nil
		}

		a.logger.Warn(ctx, "login rejected")
		fmt.Fprintln(a.out, "Invalid ssn or password")
		fmt.Fprintln(a.out, "1) Try again")
		fmt.Fprintln(a.out, "0) Exit...")

		choice, err := readLine(a.reader)
		if err != nil {
			return false, err
		}
		if choice == "0" {
			return false, nil
		}
	}
}
