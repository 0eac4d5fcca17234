package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const pkg = "postgres/"

type Config struct {
	Addr     string
	Port     int
	User     string
	Password string
	DB       string
	MaxConns int
}

// New opens the shared connection pool and verifies it with a ping.
// MaxConns bounds concurrency at the database; callers beyond the bound
// wait for a free connection instead of failing.
func New(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	op := pkg + "New"

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Addr, cfg.Port, cfg.User, cfg.Password, cfg.DB)

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)

	return db, nil
}
