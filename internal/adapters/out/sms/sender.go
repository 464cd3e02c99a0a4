// Package sms implements the SMS sending port.
// The current implementation logs outgoing messages instead of dispatching to
// a carrier gateway, matching the notification behavior expected in
// development and staging environments.
package sms

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"householdplanet/internal/core/ports"

	"github.com/google/uuid"
)

// stubMessageCost mirrors the per-message cost a Kenyan gateway would report.
const stubMessageCost = "KES 1.00"

// SentMessage is the record kept for every stubbed send.
type SentMessage struct {
	MessageID string
	Phone     string
	Text      string
	Cost      string
	SentAt    time.Time
}

// LogSender is a stand-in SMS gateway that records each message in the
// application log and acknowledges it with a generated message ID. Sent
// messages are kept in memory for inspection.
type LogSender struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []SentMessage
}

// NewLogSender creates a logging SMS sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{
		logger: logger.With("component", "sms_sender"),
	}
}

// Send logs the message and returns a synthetic receipt.
func (s *LogSender) Send(ctx context.Context, phone string, text string) (ports.SmsReceipt, error) {
	receipt := ports.SmsReceipt{
		MessageID: uuid.NewString(),
		Cost:      stubMessageCost,
	}

	s.mu.Lock()
	s.sent = append(s.sent, SentMessage{
		MessageID: receipt.MessageID,
		Phone:     phone,
		Text:      text,
		Cost:      receipt.Cost,
		SentAt:    time.Now().UTC(),
	})
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "SMS sent",
		"message_id", receipt.MessageID,
		"phone", phone,
		"text", text,
		"cost", receipt.Cost,
	)

	return receipt, nil
}

// SentMessages returns a copy of every message sent so far, oldest first.
func (s *LogSender) SentMessages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SentMessage, len(s.sent))
	copy(out, s.sent)
	return out
}
