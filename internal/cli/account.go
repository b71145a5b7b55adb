package cli

import (
	"context"
	"fmt"

	"moondb/internal/models"
)

// CreateAccount prompts for the new account fields, derives the display
// name, and inserts the row. The generated id is logged but not shown; the
// confirmation carries the derived name.
func (a *App) CreateAccount(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "First name: ", a.out)
	if err != nil {
		return err
	}

	lastName, err := GetSimpleText(a.reader, "Last name: ", a.out)
	if err != nil {
		return err
	}

	ssn, err := GetSimpleText(a.reader, "SSN: ", a.out)
	if err != nil {
		return err
	}

	password, err := a.getSecret("Password: ")
	if err != nil {
		return err
	}

	account := &models.Account{
		Name:      models.DeriveName(firstName, lastName),
		FirstName: firstName,
		LastName:  lastName,
		SSN:       ssn,
		Password:  password,
	}

	id, err := a.accounts.Create(ctx, account)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "account created", "user_id", id)
	fmt.Fprintf(a.out, "Account created for %s\n", account.Name)
	return nil
}

// UpdatePassword prompts for a user id and a new password and applies a
// targeted update. The confirmation is derived from the affected row count
// alone; the row is never read back.
func (a *App) UpdatePassword(ctx context.Context) error {
	userID, err := GetInt(a.reader, "User ID: ", a.out)
	if err != nil {
		return err
	}

	newPassword, err := a.getSecret("New Password: ")
	if err != nil {
		return err
	}

	affected, err := a.accounts.UpdatePassword(ctx, userID, newPassword)
	if err != nil {
		return err
	}

	if affected == 0 {
		fmt.Fprintf(a.out, "No account found with user ID %d\n", userID)
	} else {
		fmt.Fprintf(a.out, "Password updated for user ID %d\n", userID)
	}
	return nil
}

// DeleteAccount prompts for a user id and deletes the matching row, with
// the same zero-vs-nonzero reporting convention as UpdatePassword.
func (a *App) DeleteAccount(ctx context.Context) error {
	userID, err := GetInt(a.reader, "User ID: ", a.out)
	if err != nil {
		return err
	}

	affected, err := a.accounts.Delete(ctx, userID)
	if err != nil {
		return err
	}

	if affected == 0 {
		fmt.Fprintf(a.out, "No account found with user ID %d\n", userID)
	} else {
		fmt.Fprintf(a.out, "Account deleted for user ID %d\n", userID)
	}
	return nil
}
