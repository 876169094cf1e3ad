package user

import (
	"context"
	"errors"
	"fmt"
	c "userhub/internal/core/domain/common"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"

	"github.com/jackc/pgx/v4"
)

const (
	EMAIL_CONSTRAINT_NAME     = "user_email_idx"
	PUBLIC_ID_CONSTRAINT_NAME = "user_user_id_idx"
)

const userColumns = `id, user_id, email, first_name, last_name, encrypted_password, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(conn db.DBTX) *PgxUserRepository {
	if conn == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: conn}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (user_id, email, first_name, last_name, encrypted_password, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		string(input.PublicID),
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsUniqueViolation(err, EMAIL_CONSTRAINT_NAME) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, fmt.Errorf("could not create user: %w", err)
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
}

func (r *PgxUserRepository) GetByPublicID(ctx context.Context, id user.PublicID) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE user_id = $1`, string(id))
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (user.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
}

func (r *PgxUserRepository) List(ctx context.Context, pagination c.Pagination) ([]user.User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+userColumns+` FROM "user" ORDER BY id LIMIT $1 OFFSET $2`,
		int64(pagination.Limit),
		int64(pagination.Offset()),
	)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0, pagination.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("could not read user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (user.User, error) {
	return r.getOne(
		ctx,
		`UPDATE "user" SET first_name = $2, last_name = $3 WHERE id = $1 RETURNING `+userColumns,
		int64(input.ID),
		input.FirstName,
		input.LastName,
	)
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
) (persisted user.PasswordHash, err error) {
	var raw string
	err = r.db.QueryRow(
		ctx,
		`UPDATE "user" SET encrypted_password = $2 WHERE id = $1 RETURNING encrypted_password`,
		int64(id),
		string(password),
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return persisted, user.ErrUserDoesNotExist
	}
	if err != nil {
		return persisted, fmt.Errorf("could not set password: %w", err)
	}
	return user.PasswordHash(raw), nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) getOne(ctx context.Context, sql string, args ...interface{}) (u user.User, err error) {
	u, err = scanUser(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		publicID     string
		email        string
		passwordHash string
	)
	err = row.Scan(&id, &publicID, &email, &u.FirstName, &u.LastName, &passwordHash, &u.CreatedAt)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.PublicID = user.PublicID(publicID)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
