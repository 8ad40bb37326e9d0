package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotpink-connect/internal/domain"
)

type mongoMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	From      string             `bson:"from"`
	To        string             `bson:"to"`
	Msg       string             `bson:"msg"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (m mongoMessage) toDomain() domain.Message {
	return domain.Message{
		ID:        m.ID.Hex(),
		From:      m.From,
		To:        m.To,
		Msg:       m.Msg,
		Timestamp: m.Timestamp.UTC(),
	}
}

// MongoMessageRepository implementa MessageRepository sobre una colección de MongoDB.
type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMongoMessageRepository(coll *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{coll: coll}
}

// EnsureIndexes crea los índices usados por los filtros por participante.
func (r *MongoMessageRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "from", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "timestamp", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create message indexes: %w", err)
	}
	return nil
}

func (r *MongoMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	doc := mongoMessage{
		ID:        primitive.NewObjectID(),
		From:      message.From,
		To:        message.To,
		Msg:       message.Msg,
		Timestamp: message.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoMessageRepository) ListByUser(ctx context.Context, user string) ([]domain.Message, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "from", Value: user}},
		bson.D{{Key: "to", Value: user}},
	}}}
	return r.find(ctx, filter)
}

func (r *MongoMessageRepository) GetByID(ctx context.Context, id string) (domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %q", ErrInvalidMessageID, id)
	}

	var doc mongoMessage
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Message{}, ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, fmt.Errorf("find message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoMessageRepository) DeleteByID(ctx context.Context, id string) (domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Message{}, fmt.Errorf("%w: %q", ErrInvalidMessageID, id)
	}

	var doc mongoMessage
	err = r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Message{}, ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, fmt.Errorf("delete message: %w", err)
	}
	return doc.toDomain(), nil
}

// find aplica el orden por timestamp; _id desempata inserciones del mismo milisegundo.
func (r *MongoMessageRepository) find(ctx context.Context, filter bson.D) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoMessage
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, doc.toDomain())
	}
	return messages, nil
}
