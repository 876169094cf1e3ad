package passwordresettoken

import (
	"context"
	"errors"
	"fmt"
	"time"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"

	"github.com/jackc/pgx/v4"
)

const TOKEN_CONSTRAINT_NAME = "password_reset_token_token_idx"

var ErrTokenAlreadyExists = errors.New("password reset token already exists")

type PgxPasswordResetTokenRepository struct {
	db db.DBTX
}

func NewPgxPasswordResetTokenRepository(conn db.DBTX) *PgxPasswordResetTokenRepository {
	if conn == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetTokenRepository{db: conn}
}

func (r *PgxPasswordResetTokenRepository) Create(ctx context.Context, input user.CreatePasswordResetTokenInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO password_reset_token (token, user_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	if db.IsUniqueViolation(err, TOKEN_CONSTRAINT_NAME) {
		return ErrTokenAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("could not create password reset token: %w", err)
	}
	return nil
}

// Consume removes the token row in a single statement so that concurrent
// confirmations cannot both resolve it.
func (r *PgxPasswordResetTokenRepository) Consume(ctx context.Context, token user.PasswordResetToken) (user.ID, error) {
	var userID int64
	err := r.db.QueryRow(
		ctx,
		`DELETE FROM password_reset_token WHERE token = $1 RETURNING user_id`,
		string(token),
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ID(0), user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return user.ID(0), fmt.Errorf("could not consume password reset token: %w", err)
	}
	return user.ID(userID), nil
}

func (r *PgxPasswordResetTokenRepository) DeleteByUser(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE user_id = $1`, int64(userID))
	return err
}

func (r *PgxPasswordResetTokenRepository) DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM password_reset_token WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("could not delete stale password reset tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
