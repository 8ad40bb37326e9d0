package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hotpink-connect/internal/config"
)

const messagesSchema = `
	CREATE TABLE IF NOT EXISTS messages (
		id          UUID PRIMARY KEY,
		"from"      TEXT NOT NULL,
		"to"        TEXT NOT NULL,
		msg         TEXT NOT NULL,
		"timestamp" TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS messages_timestamp_idx ON messages ("timestamp");
	CREATE INDEX IF NOT EXISTS messages_from_idx ON messages ("from", "timestamp");
	CREATE INDEX IF NOT EXISTS messages_to_idx ON messages ("to", "timestamp");
`

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

// EnsureSchema crea la tabla de mensajes si todavía no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, messagesSchema)
	return err
}
