package accounts

import (
	"context"

	"moondb/internal/models"
)

// Repository is the data access contract for the account table. Every method
// issues exactly one parameterized statement; there are no transactions,
// retries, or caching.
type Repository interface {
	// CheckCredentials reports whether a row matches both values exactly
	// (case-sensitive string equality). Nothing is written.
	CheckCredentials(ctx context.Context, ssn, password string) (bool, error)

	// Create inserts a new account row and returns the generated user id.
	Create(ctx context.Context, account *models.Account) (int64, error)

	// UpdatePassword sets the password of the account with the given id and
	// returns the affected row count (0 when the id does not exist).
	UpdatePassword(ctx context.Context, userID int64, newPassword string) (int64, error)

	// Delete removes the account with the given id and returns the affected
	// row count (0 when the id does not exist).
	Delete(ctx context.Context, userID int64) (int64, error)
}
