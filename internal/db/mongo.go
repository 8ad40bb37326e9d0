package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hotpink-connect/internal/config"
)

// NewMongoClient crea el cliente de MongoDB. El driver conecta en segundo
// plano, así que solo falla si el URI o las opciones son inválidos.
func NewMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.DBConnectTimeout).
		SetServerSelectionTimeout(cfg.DBConnectTimeout)

	return mongo.Connect(ctx, opts)
}

// MessagesCollection devuelve la colección configurada para los mensajes.
func MessagesCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDatabaseName()).Collection(cfg.MongoCollection)
}

// PingMongo verifica conectividad contra el primario.
func PingMongo(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
