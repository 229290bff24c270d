package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"detailbook/pkg/config"
)

func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	connString := connString(cfg)

	pcfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	// PgBouncer in transaction mode does not support prepared statements.
	// Hosted pooler DSNs typically include `pgbouncer=true`.
	if strings.Contains(strings.ToLower(connString), "pgbouncer=true") {
		pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
		pcfg.ConnConfig.StatementCacheCapacity = 0
		pcfg.ConnConfig.DescriptionCacheCapacity = 0
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func connString(cfg config.Config) string {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		return cfg.DatabaseURL
	}
	return dsn(cfg.DB)
}

func dsn(cfg config.DBConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, sslmode,
	)
}
