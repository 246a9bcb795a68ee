package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ziadkadry99/portfoliai/internal/db"
)

// Inbox stores messages in the contact_messages table.
type Inbox struct {
	db *db.DB
}

// NewInbox creates an Inbox backed by the given database.
func NewInbox(database *db.DB) *Inbox {
	return &Inbox{db: database}
}

// Send stores msg. If msg.ID is empty a UUID is generated.
func (i *Inbox) Send(ctx context.Context, msg Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, body, received_at)
		VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Body, msg.ReceivedAt.UTC().Format(time.DateTime),
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

// List returns the newest messages first. limit <= 0 returns all.
func (i *Inbox) List(ctx context.Context, limit int) ([]Message, error) {
	query := "SELECT id, name, email, body, received_at FROM contact_messages ORDER BY received_at DESC, rowid DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := i.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var (
			m  Message
			ts string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &ts); err != nil {
			return nil, err
		}
		if t, parseErr := time.Parse(time.DateTime, ts); parseErr == nil {
			m.ReceivedAt = t
		} else if t, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
			m.ReceivedAt = t
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// RegisterRoutes mounts the inbox under /api/inbox on the given router.
func RegisterRoutes(r chi.Router, inbox *Inbox) {
	r.Get("/api/inbox", func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		messages, err := inbox.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messages)
	})
}
