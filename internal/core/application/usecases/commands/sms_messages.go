package commands

import (
	"fmt"
	"time"

	"householdplanet/internal/core/domain/model/delivery"
)

// Customer-facing SMS texts. Kept next to the handlers that send them so the
// full set of outgoing messages is visible in one place.

func formatOrderConfirmationSms(customerName string, orderTotal float64) string {
	return fmt.Sprintf(
		"Dear %s, thank you for shopping with Household Planet Kenya! Your order of KES %.2f has been received and is being processed.",
		customerName, orderTotal,
	)
}

func formatSchedulingSms(trackingNumber string, date time.Time, slot delivery.TimeSlot) string {
	return fmt.Sprintf(
		"Household Planet Kenya: your delivery %s is scheduled for %s (%s). Track it anytime with your tracking number.",
		trackingNumber, date.Format("Mon, 02 Jan 2006"), slot,
	)
}

func formatStatusUpdateSms(trackingNumber string, status delivery.Status) string {
	return fmt.Sprintf(
		"Household Planet Kenya: delivery %s update - status is now %s.",
		trackingNumber, status,
	)
}

func formatCompletionSms(trackingNumber string) string {
	return fmt.Sprintf(
		"Household Planet Kenya: delivery %s has been completed. Thank you for your order! Reply with any feedback on your experience.",
		trackingNumber,
	)
}

func formatReminderSms(trackingNumber string, date time.Time, slot delivery.TimeSlot) string {
	return fmt.Sprintf(
		"Household Planet Kenya: reminder - your delivery %s is scheduled for %s (%s). Please be available to receive it.",
		trackingNumber, date.Format("Mon, 02 Jan 2006"), slot,
	)
}
