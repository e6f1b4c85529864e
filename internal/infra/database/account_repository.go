package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const uniqueViolation = "23505"

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.DB.QueryRowContext(ctx, query,
		account.Username,
		account.PasswordHash,
		account.CreatedAt,
	).Scan(&account.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return entity.ErrDuplicateAccount
		}
		return err
	}

	return nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	query := `
		SELECT id, username, password_hash, reset_token, reset_token_expires_at, created_at
		FROM accounts
		WHERE username = $1
	`

	return r.scanAccount(r.DB.QueryRowContext(ctx, query, username))
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	query := `
		SELECT id, username, password_hash, reset_token, reset_token_expires_at, created_at
		FROM accounts
		WHERE id = $1
	`

	return r.scanAccount(r.DB.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) SetResetToken(ctx context.Context, accountID int64, token string, expiresAt time.Time) error {
	query := `
		UPDATE accounts
		SET reset_token = $1, reset_token_expires_at = $2
		WHERE id = $3
	`

	_, err := r.DB.ExecContext(ctx, query, token, expiresAt, accountID)
	return err
}

// ConsumeResetToken rewrites the password and clears the token in a single
// UPDATE, so a token can only ever be redeemed once and no partial state is
// observable.
func (r *AccountRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) (int64, error) {
	query := `
		UPDATE accounts
		SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL
		WHERE reset_token = $1 AND reset_token_expires_at > $3
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, token, newPasswordHash, now).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, entity.ErrInvalidResetToken
		}
		return 0, err
	}

	return id, nil
}

func (r *AccountRepository) scanAccount(row *sql.Row) (*entity.Account, error) {
	var (
		account   entity.Account
		token     sql.NullString
		expiresAt sql.NullTime
	)

	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.PasswordHash,
		&token,
		&expiresAt,
		&account.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrAccountNotFound
		}
		return nil, err
	}

	if token.Valid {
		account.ResetToken = &token.String
	}
	if expiresAt.Valid {
		account.ResetTokenExpiresAt = &expiresAt.Time
	}

	return &account, nil
}
