package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens and pings a pgx connection pool. The pool is handed to each
// repository at construction; there is no package-level handle.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}
