package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL and applies migrations from
// TEST_MIGRATIONS_PATH. It reports false when no test database is configured.
func CreateTestPool() (*pgxpool.Pool, bool) {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		return nil, false
	}
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must be set.")
	}
	if err := Migrate(connString, migrationsPath); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool, true
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), `TRUNCATE "user", address, password_reset_token RESTART IDENTITY`)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
