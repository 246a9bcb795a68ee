// Package contact delivers messages submitted through the portfolio's
// contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultSimulatedDelay is how long the simulated sender takes to "deliver".
const DefaultSimulatedDelay = 1500 * time.Millisecond

// ErrUnknownDelivery is returned by NewSender for an unsupported mode.
var ErrUnknownDelivery = errors.New("unknown contact delivery")

// Message is one contact form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Sender delivers a message to its destination.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// Simulated waits for Delay and reports success. It never delivers anything.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated creates a Simulated sender with the given delay.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay}
}

func (s *Simulated) Send(ctx context.Context, _ Message) error {
	if s.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delivery modes accepted by NewSender.
const (
	DeliverySimulated = "simulated"
	DeliveryWebhook   = "webhook"
	DeliveryInbox     = "inbox"
)

// NewSender builds the sender for a delivery mode. inbox is required for
// DeliveryInbox and ignored otherwise.
func NewSender(mode, webhookURL string, delay time.Duration, inbox *Inbox) (Sender, error) {
	switch mode {
	case "", DeliverySimulated:
		return NewSimulated(delay), nil
	case DeliveryWebhook:
		if webhookURL == "" {
			return nil, fmt.Errorf("webhook delivery requires contact.webhook_url")
		}
		return NewWebhook(webhookURL), nil
	case DeliveryInbox:
		if inbox == nil {
			return nil, fmt.Errorf("inbox delivery requires a database")
		}
		return inbox, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDelivery, mode)
	}
}
