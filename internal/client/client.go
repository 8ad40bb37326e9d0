package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotpink-connect/internal/domain"
)

var ErrNotFound = errors.New("not found")

// APIError representa una respuesta de error del API de chat.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api error: status=%d message=%q", e.Status, e.Message)
}

// Is permite errors.Is(err, ErrNotFound) para respuestas 404.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// HTTPClient habla con el API de chat por HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient construye un cliente apuntando a baseURL.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Msg  string `json:"msg"`
}

type deleteResponse struct {
	Success bool           `json:"success"`
	Deleted domain.Message `json:"deleted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Send(ctx context.Context, from, to, msg string) (domain.Message, error) {
	var out domain.Message
	err := c.do(ctx, http.MethodPost, "/chat", sendRequest{From: from, To: to, Msg: msg}, &out)
	return out, err
}

func (c *HTTPClient) List(ctx context.Context) ([]domain.Message, error) {
	var out []domain.Message
	err := c.do(ctx, http.MethodGet, "/chat", nil, &out)
	return out, err
}

// Inbox devuelve la conversación completa de user (enviados y recibidos).
func (c *HTTPClient) Inbox(ctx context.Context, user string) ([]domain.Message, error) {
	var out []domain.Message
	err := c.do(ctx, http.MethodGet, "/chat/"+url.PathEscape(user), nil, &out)
	return out, err
}

func (c *HTTPClient) Get(ctx context.Context, id string) (domain.Message, error) {
	var out domain.Message
	err := c.do(ctx, http.MethodGet, "/chat/id/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *HTTPClient) Delete(ctx context.Context, id string) (domain.Message, error) {
	var out deleteResponse
	if err := c.do(ctx, http.MethodDelete, "/chat/"+url.PathEscape(id), nil, &out); err != nil {
		return domain.Message{}, err
	}
	return out.Deleted, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var er errorResponse
		_ = json.Unmarshal(respBody, &er)
		return &APIError{Status: resp.StatusCode, Message: er.Error}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
