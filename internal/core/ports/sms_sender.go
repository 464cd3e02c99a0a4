package ports

import "context"

// SmsReceipt is the acknowledgement returned for a sent SMS.
type SmsReceipt struct {
	// MessageID is the provider-side identifier for the message.
	MessageID string

	// Cost is the provider-reported cost of the send.
	Cost string
}

// SmsSender sends customer-facing SMS notifications.
// The current implementation is a stub that logs instead of dispatching to a
// carrier; the interface keeps handlers independent of that choice.
type SmsSender interface {
	Send(ctx context.Context, phone string, text string) (SmsReceipt, error)
}
