package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hotpink-connect/internal/config"
	"hotpink-connect/internal/db"
	"hotpink-connect/internal/repository"
)

// openMessageStore crea el repositorio configurado. Si el store no responde
// solo se registra: el servidor arranca igual y las peticiones fallan con 500
// hasta que vuelva la conectividad.
func openMessageStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.MessageRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return openPostgresStore(ctx, cfg, logger)
	case config.StoreDriverMongo:
		return openMongoStore(ctx, cfg, logger)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openMongoStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.MessageRepository, func(), error) {
	client, err := db.NewMongoClient(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo client: %w", err)
	}

	repo := repository.NewMongoMessageRepository(db.MessagesCollection(client, cfg))

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()
	if err := db.PingMongo(pingCtx, client); err != nil {
		logger.Error("mongodb connection error", zap.Error(err))
	} else {
		logger.Info("mongodb connected", zap.String("database", cfg.MongoDatabaseName()))
		if err := repo.EnsureIndexes(pingCtx); err != nil {
			logger.Warn("mongodb index setup failed", zap.Error(err))
		}
	}

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.DBConnectTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongodb disconnect", zap.Error(err))
		}
	}
	return repo, closeFn, nil
}

func openPostgresStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.MessageRepository, func(), error) {
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectTimeout)
	defer cancel()
	if err := db.Ping(pingCtx, pool); err != nil {
		logger.Error("postgres connection error", zap.Error(err))
	} else {
		logger.Info("postgres connected")
		if err := db.EnsureSchema(pingCtx, pool); err != nil {
			logger.Warn("postgres schema setup failed", zap.Error(err))
		}
	}

	return repository.NewPgMessageRepository(pool), pool.Close, nil
}
