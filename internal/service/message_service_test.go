package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotpink-connect/internal/domain"
	"hotpink-connect/internal/repository"
)

type mockMessageServiceRepo struct {
	lastCreated domain.Message
	createErr   error
	listData    []domain.Message
	listErr     error
	lastUser    string
	getData     domain.Message
	getErr      error
	deleteErr   error
	lastID      string
	creates     int
}

func (m *mockMessageServiceRepo) Create(_ context.Context, message domain.Message) (domain.Message, error) {
	m.creates++
	if m.createErr != nil {
		return domain.Message{}, m.createErr
	}
	message.ID = "m1"
	m.lastCreated = message
	return message, nil
}

func (m *mockMessageServiceRepo) List(_ context.Context) ([]domain.Message, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

func (m *mockMessageServiceRepo) ListByUser(_ context.Context, user string) ([]domain.Message, error) {
	m.lastUser = user
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

func (m *mockMessageServiceRepo) GetByID(_ context.Context, id string) (domain.Message, error) {
	m.lastID = id
	if m.getErr != nil {
		return domain.Message{}, m.getErr
	}
	return m.getData, nil
}

func (m *mockMessageServiceRepo) DeleteByID(_ context.Context, id string) (domain.Message, error) {
	m.lastID = id
	if m.deleteErr != nil {
		return domain.Message{}, m.deleteErr
	}
	return m.getData, nil
}

func TestMessageServiceCreate_AssignsTimestamp(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 1500000, time.FixedZone("ART", -3*3600))
	svc.now = func() time.Time { return fixed }

	msg, err := svc.Create(context.Background(), CreateMessageInput{From: "alice", To: "bob", Msg: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg.ID != "m1" {
		t.Fatalf("expected id from repository, got %q", msg.ID)
	}
	if msg.From != "alice" || msg.To != "bob" || msg.Msg != "hi" {
		t.Fatalf("unexpected fields %+v", msg)
	}
	want := time.Date(2024, 5, 1, 13, 0, 0, 2000000, time.UTC)
	if !msg.Timestamp.Equal(want) || msg.Timestamp.Location() != time.UTC {
		t.Fatalf("expected %v, got %v", want, msg.Timestamp)
	}
	if msg.Timestamp.Before(fixed) {
		t.Fatalf("timestamp must not precede request time")
	}
}

func TestMessageServiceCreate_Validation(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo)

	cases := []CreateMessageInput{
		{To: "bob", Msg: "hi"},
		{From: "alice", Msg: "hi"},
		{From: "alice", To: "bob"},
		{},
	}
	for i, c := range cases {
		if _, err := svc.Create(context.Background(), c); !errors.Is(err, ErrMessageInvalidInput) {
			t.Fatalf("case %d expected ErrMessageInvalidInput, got %v", i, err)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("expected nothing persisted, got %d creates", repo.creates)
	}
}

func TestMessageServiceCreate_StoreError(t *testing.T) {
	repo := &mockMessageServiceRepo{createErr: errors.New("connection refused")}
	svc := NewMessageService(repo)

	_, err := svc.Create(context.Background(), CreateMessageInput{From: "a", To: "b", Msg: "c"})
	if err == nil || errors.Is(err, ErrMessageInvalidInput) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestMessageServiceList_EmptyIsNotNil(t *testing.T) {
	repo := &mockMessageServiceRepo{}
	svc := NewMessageService(repo)

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %+v", out)
	}
}

func TestMessageServiceListByUser(t *testing.T) {
	repo := &mockMessageServiceRepo{
		listData: []domain.Message{{ID: "m1"}, {ID: "m2"}},
	}
	svc := NewMessageService(repo)

	out, err := svc.ListByUser(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastUser != "alice" {
		t.Fatalf("expected user forwarded, got %q", repo.lastUser)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
}

func TestMessageServiceGet_TranslatesErrors(t *testing.T) {
	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"not found", repository.ErrMessageNotFound, ErrMessageNotFound},
		{"invalid id", repository.ErrInvalidMessageID, ErrMessageInvalidID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewMessageService(&mockMessageServiceRepo{getErr: tc.repoErr, deleteErr: tc.repoErr})
			if _, err := svc.Get(context.Background(), "x"); !errors.Is(err, tc.want) {
				t.Fatalf("get: expected %v, got %v", tc.want, err)
			}
			if _, err := svc.Delete(context.Background(), "x"); !errors.Is(err, tc.want) {
				t.Fatalf("delete: expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMessageServiceDelete_ReturnsRecord(t *testing.T) {
	repo := &mockMessageServiceRepo{getData: domain.Message{ID: "m9", From: "a", To: "b", Msg: "c"}}
	svc := NewMessageService(repo)

	msg, err := svc.Delete(context.Background(), "m9")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastID != "m9" || msg.ID != "m9" {
		t.Fatalf("expected deleted record m9, got %+v", msg)
	}
}

func TestMessageService_NotConfigured(t *testing.T) {
	var svc *MessageService
	if _, err := svc.Create(context.Background(), CreateMessageInput{}); !errors.Is(err, ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}

	svc = NewMessageService(nil)
	if _, err := svc.List(context.Background()); !errors.Is(err, ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}
}

func TestCeilMillis(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ceilMillis(base.Add(3 * time.Millisecond)); !got.Equal(base.Add(3 * time.Millisecond)) {
		t.Fatalf("exact millisecond must be kept, got %v", got)
	}
	if got := ceilMillis(base.Add(3*time.Millisecond + time.Nanosecond)); !got.Equal(base.Add(4 * time.Millisecond)) {
		t.Fatalf("expected round up, got %v", got)
	}
}
