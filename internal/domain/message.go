package domain

import "time"

// Message es el único registro persistido por el servicio.
type Message struct {
	ID        string    `json:"_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Msg       string    `json:"msg"`
	Timestamp time.Time `json:"timestamp"`
}

// Involves indica si user es emisor o receptor del mensaje.
func (m Message) Involves(user string) bool {
	return m.From == user || m.To == user
}
