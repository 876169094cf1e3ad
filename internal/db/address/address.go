package address

import (
	"context"
	"errors"
	"fmt"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"
	"userhub/internal/db"

	"github.com/jackc/pgx/v4"
)

const addressColumns = `id, address_id, user_id, type, city, country, postal_code, street_name`

type PgxAddressRepository struct {
	db db.DBTX
}

func NewPgxAddressRepository(conn db.DBTX) *PgxAddressRepository {
	if conn == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAddressRepository{db: conn}
}

func (r *PgxAddressRepository) Create(ctx context.Context, input user.CreateAddressInput) (user.Address, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO address (address_id, user_id, type, city, country, postal_code, street_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+addressColumns,
		string(input.PublicID),
		int64(input.UserID),
		string(input.Address.Type),
		input.Address.City,
		input.Address.Country,
		input.Address.PostalCode,
		input.Address.StreetName,
	)
	a, err := scanAddress(row)
	if err != nil {
		return a, fmt.Errorf("could not create address: %w", err)
	}
	return a, nil
}

func (r *PgxAddressRepository) GetByPublicID(ctx context.Context, id user.AddressPublicID) (user.Address, error) {
	a, err := scanAddress(r.db.QueryRow(
		ctx,
		`SELECT `+addressColumns+` FROM address WHERE address_id = $1`,
		string(id),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, user.ErrAddressDoesNotExist
	}
	return a, err
}

func (r *PgxAddressRepository) ListByUser(ctx context.Context, userID user.ID) ([]user.Address, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+addressColumns+` FROM address WHERE user_id = $1 ORDER BY id`,
		int64(userID),
	)
	if err != nil {
		return nil, fmt.Errorf("could not list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]user.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("could not read address: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PgxAddressRepository) DeleteByUser(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM address WHERE user_id = $1`, int64(userID))
	return err
}

func scanAddress(row pgx.Row) (a user.Address, err error) {
	var (
		id       int64
		publicID string
		userID   int64
		kind     string
	)
	err = row.Scan(&id, &publicID, &userID, &kind, &a.City, &a.Country, &a.PostalCode, &a.StreetName)
	if err != nil {
		return a, err
	}
	a.ID = user.AddressID(id)
	a.PublicID = user.AddressPublicID(publicID)
	a.UserID = user.ID(userID)
	a.Type = user.AddressType(kind)
	return a, nil
}
