package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moondb/internal/dbx"
	"moondb/internal/models"
)

// SQLiteRepository backs the embedded development database. Same contract as
// PostgresRepository, sqlite placeholder and generated-key conventions.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CheckCredentials(ctx context.Context, ssn, password string) (bool, error) {
	query := `SELECT 1 FROM account WHERE ssn = ? AND password = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, ssn, password).Scan(&one)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}

	return true, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	query :=
		`INSERT INTO account (name, first_name, last_name, ssn, password)
		 VALUES (?, ?, ?, ?, ?)
		 `

	res, err := r.db.ExecContext(ctx, query,
		account.Name, account.FirstName, account.LastName, account.SSN, account.Password)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	account.UserID = id
	return id, nil
}

func (r *SQLiteRepository) UpdatePassword(ctx context.Context, userID int64, newPassword string) (int64, error) {
	query := `UPDATE account SET password = ? WHERE user_id = ?`

	res, err := r.db.ExecContext(ctx, query, newPassword, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM account WHERE user_id = ?`

	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}
