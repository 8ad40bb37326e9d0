package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotpink-connect/internal/domain"
	"hotpink-connect/internal/repository"
)

// MessageService encapsula la lógica para crear, consultar y borrar mensajes.
type MessageService struct {
	repo repository.MessageRepository
	now  func() time.Time
}

var (
	ErrMessageServiceNotConfigured = errors.New("message service not configured")
	ErrMessageInvalidInput         = errors.New("from, to, msg required")
	ErrMessageNotFound             = errors.New("message not found")
	ErrMessageInvalidID            = errors.New("invalid message id")
)

// CreateMessageInput contiene los campos que aporta el cliente.
type CreateMessageInput struct {
	From string
	To   string
	Msg  string
}

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo, now: time.Now}
}

// Create valida presencia de campos y persiste el mensaje con timestamp del servidor.
func (s *MessageService) Create(ctx context.Context, in CreateMessageInput) (domain.Message, error) {
	if s == nil || s.repo == nil {
		return domain.Message{}, ErrMessageServiceNotConfigured
	}
	if in.From == "" || in.To == "" || in.Msg == "" {
		return domain.Message{}, ErrMessageInvalidInput
	}

	msg := domain.Message{
		From:      in.From,
		To:        in.To,
		Msg:       in.Msg,
		Timestamp: ceilMillis(s.now().UTC()),
	}
	return s.repo.Create(ctx, msg)
}

func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	if s == nil || s.repo == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(messages), nil
}

// ListByUser devuelve los mensajes donde user es emisor o receptor.
func (s *MessageService) ListByUser(ctx context.Context, user string) ([]domain.Message, error) {
	if s == nil || s.repo == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	if user == "" {
		return []domain.Message{}, nil
	}
	messages, err := s.repo.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return nonNil(messages), nil
}

func (s *MessageService) Get(ctx context.Context, id string) (domain.Message, error) {
	if s == nil || s.repo == nil {
		return domain.Message{}, ErrMessageServiceNotConfigured
	}
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Message{}, translateRepoError(err, id)
	}
	return msg, nil
}

// Delete borra el mensaje y devuelve el registro eliminado.
func (s *MessageService) Delete(ctx context.Context, id string) (domain.Message, error) {
	if s == nil || s.repo == nil {
		return domain.Message{}, ErrMessageServiceNotConfigured
	}
	msg, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return domain.Message{}, translateRepoError(err, id)
	}
	return msg, nil
}

func translateRepoError(err error, id string) error {
	switch {
	case errors.Is(err, repository.ErrMessageNotFound):
		return fmt.Errorf("%w: %s", ErrMessageNotFound, id)
	case errors.Is(err, repository.ErrInvalidMessageID):
		return fmt.Errorf("%w: %v", ErrMessageInvalidID, err)
	default:
		return err
	}
}

// ceilMillis redondea hacia arriba al milisegundo, la precisión que guarda Mongo,
// para que el timestamp nunca quede antes del instante de la petición.
func ceilMillis(t time.Time) time.Time {
	truncated := t.Truncate(time.Millisecond)
	if truncated.Before(t) {
		return truncated.Add(time.Millisecond)
	}
	return truncated
}

func nonNil(messages []domain.Message) []domain.Message {
	if messages == nil {
		return []domain.Message{}
	}
	return messages
}
