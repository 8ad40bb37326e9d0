package repository

import (
	"context"
	"errors"

	"hotpink-connect/internal/domain"
)

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrInvalidMessageID = errors.New("invalid message id")
)

// MessageRepository define el contrato de persistencia para mensajes.
// Create asigna el identificador nativo del store; las listas vienen
// ordenadas por timestamp ascendente.
type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) (domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	ListByUser(ctx context.Context, user string) ([]domain.Message, error)
	GetByID(ctx context.Context, id string) (domain.Message, error)
	DeleteByID(ctx context.Context, id string) (domain.Message, error)
}
