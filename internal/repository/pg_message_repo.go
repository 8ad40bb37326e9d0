package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotpink-connect/internal/domain"
)

// PgMessageRepository implementa MessageRepository usando pgxpool.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	const query = `
		INSERT INTO messages (id, "from", "to", msg, "timestamp")
		VALUES ($1, $2, $3, $4, $5)
	`
	message.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.From,
		message.To,
		message.Msg,
		message.Timestamp,
	)
	if err != nil {
		return domain.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return message, nil
}

func (r *PgMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	const query = `
		SELECT id, "from", "to", msg, "timestamp"
		FROM messages
		ORDER BY "timestamp" ASC, id ASC
	`
	return r.query(ctx, query)
}

func (r *PgMessageRepository) ListByUser(ctx context.Context, user string) ([]domain.Message, error) {
	const query = `
		SELECT id, "from", "to", msg, "timestamp"
		FROM messages
		WHERE "from" = $1 OR "to" = $1
		ORDER BY "timestamp" ASC, id ASC
	`
	return r.query(ctx, query, user)
}

func (r *PgMessageRepository) GetByID(ctx context.Context, id string) (domain.Message, error) {
	const query = `
		SELECT id, "from", "to", msg, "timestamp"
		FROM messages
		WHERE id = $1
	`
	if _, err := uuid.Parse(id); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %q", ErrInvalidMessageID, id)
	}
	return r.queryOne(ctx, query, id)
}

func (r *PgMessageRepository) DeleteByID(ctx context.Context, id string) (domain.Message, error) {
	const query = `
		DELETE FROM messages
		WHERE id = $1
		RETURNING id, "from", "to", msg, "timestamp"
	`
	if _, err := uuid.Parse(id); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %q", ErrInvalidMessageID, id)
	}
	return r.queryOne(ctx, query, id)
}

func (r *PgMessageRepository) queryOne(ctx context.Context, query string, id string) (domain.Message, error) {
	msg, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Message{}, ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, fmt.Errorf("query message: %w", err)
	}
	return msg, nil
}

func (r *PgMessageRepository) query(ctx context.Context, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func scanMessage(row pgx.Row) (domain.Message, error) {
	var msg domain.Message
	err := row.Scan(
		&msg.ID,
		&msg.From,
		&msg.To,
		&msg.Msg,
		&msg.Timestamp,
	)
	if err != nil {
		return domain.Message{}, err
	}
	msg.Timestamp = msg.Timestamp.UTC()
	return msg, nil
}
