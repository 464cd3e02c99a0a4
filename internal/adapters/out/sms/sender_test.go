package sms_test

import (
	"bytes"
	"log/slog"
	"testing"

	"householdplanet/internal/adapters/out/sms"

	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sender := sms.NewLogSender(logger)
	receipt, err := sender.Send(t.Context(), "+254712345678", "Household Planet Kenya: test message")
	require.NoError(t, err)
	require.NotEmpty(t, receipt.MessageID)
	require.Equal(t, "KES 1.00", receipt.Cost)

	logged := buf.String()
	require.Contains(t, logged, "+254712345678")
	require.Contains(t, logged, receipt.MessageID)
}

func TestLogSender_Send_UniqueMessageIDs(t *testing.T) {
	sender := sms.NewLogSender(slog.New(slog.DiscardHandler))

	first, err := sender.Send(t.Context(), "+254712345678", "first")
	require.NoError(t, err)
	second, err := sender.Send(t.Context(), "+254712345678", "second")
	require.NoError(t, err)

	require.NotEqual(t, first.MessageID, second.MessageID)
}

func TestLogSender_SentMessages_RecordedInOrder(t *testing.T) {
	sender := sms.NewLogSender(slog.New(slog.DiscardHandler))

	first, err := sender.Send(t.Context(), "+254712345678", "first")
	require.NoError(t, err)
	_, err = sender.Send(t.Context(), "+254700000001", "second")
	require.NoError(t, err)

	messages := sender.SentMessages()
	require.Len(t, messages, 2)
	require.Equal(t, first.MessageID, messages[0].MessageID)
	require.Equal(t, "+254712345678", messages[0].Phone)
	require.Equal(t, "first", messages[0].Text)
	require.Equal(t, "KES 1.00", messages[0].Cost)
	require.False(t, messages[0].SentAt.IsZero())
	require.Equal(t, "second", messages[1].Text)
}
