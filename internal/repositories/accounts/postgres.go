// Package accounts provides data access for the account table.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moondb/internal/dbx"
	"moondb/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CheckCredentials(ctx context.Context, ssn, password string) (bool, error) {
	query :=
		`SELECT 1 FROM account
		 WHERE ssn = $1 AND password = $2
		 `

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

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	query :=
		`INSERT INTO account (name, first_name, last_name, ssn, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING user_id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.FirstName, account.LastName, account.SSN, account.Password).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	account.UserID = id
	return id, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID int64, newPassword string) (int64, error) {
	query :=
		`UPDATE account SET password = $1
		 WHERE user_id = $2
		 `

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

func (r *PostgresRepository) Delete(ctx context.Context, userID int64) (int64, error) {
	query :=
		`DELETE FROM account
		 WHERE user_id = $1
		 `

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
