// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The delivery aggregate is stored across three
// tables: the delivery row, its append-only status history and its feedback
// entries. Both child collections cascade on delete.
package deliveryrepo

import (
	"time"

	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// Status and time slot are stored in their wire form so the tracking and
// analytics read paths can use them without mapping.
type DeliveryDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	Status              string             `gorm:"type:varchar(32);not null;index"`
	ScheduledDate       time.Time          `gorm:"type:timestamptz;not null"`
	TimeSlot            string             `gorm:"type:varchar(16);not null"`
	TrackingNumber      string             `gorm:"type:varchar(64);not null;uniqueIndex"`
	SpecialInstructions string             `gorm:"type:text"`
	PhotoProof          string             `gorm:"type:text"`
	FailureReason       string             `gorm:"type:text"`
	RescheduleCount     int                `gorm:"type:int;not null"`
	History             []StatusHistoryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	Feedback            []FeedbackDTO      `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// StatusHistoryDTO represents one audit-trail row. Rows are only ever
// inserted; the workflow never rewrites history.
type StatusHistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(32);not null"`
	Notes      string    `gorm:"type:text"`
	RecordedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "delivery_status_history".
func (StatusHistoryDTO) TableName() string {
	return "delivery_status_history"
}

// FeedbackDTO represents a customer feedback row.
type FeedbackDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating      int       `gorm:"type:int;not null"`
	Comment     string    `gorm:"type:text"`
	SubmittedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "delivery_feedback".
func (FeedbackDTO) TableName() string {
	return "delivery_feedback"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	deliveryID := d.ID().Bytes()

	history := make([]StatusHistoryDTO, 0, len(d.History()))
	for _, entry := range d.History() {
		history = append(history, StatusHistoryDTO{
			ID:         entry.ID().Bytes(),
			DeliveryID: deliveryID,
			Status:     entry.Status().String(),
			Notes:      entry.Notes(),
			RecordedAt: entry.Timestamp(),
		})
	}

	feedback := make([]FeedbackDTO, 0, len(d.Feedback()))
	for _, f := range d.Feedback() {
		feedback = append(feedback, FeedbackDTO{
			ID:          f.ID().Bytes(),
			DeliveryID:  deliveryID,
			Rating:      f.Rating(),
			Comment:     f.Comment(),
			SubmittedAt: f.SubmittedAt(),
		})
	}

	return DeliveryDTO{
		ID:                  deliveryID,
		OrderID:             d.OrderID().Bytes(),
		Status:              d.Status().String(),
		ScheduledDate:       d.ScheduledDate(),
		TimeSlot:            d.TimeSlot().String(),
		TrackingNumber:      d.TrackingNumber(),
		SpecialInstructions: d.SpecialInstructions(),
		PhotoProof:          d.PhotoProof(),
		FailureReason:       d.FailureReason(),
		RescheduleCount:     d.RescheduleCount(),
		History:             history,
		Feedback:            feedback,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	timeSlot, err := delivery.TimeSlotFromString(dto.TimeSlot)
	if err != nil {
		return nil, err
	}

	history := make([]*delivery.StatusHistory, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := historyToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	feedback := make([]*delivery.Feedback, 0, len(dto.Feedback))
	for _, fDto := range dto.Feedback {
		f, fErr := feedbackToDomain(fDto)
		if fErr != nil {
			return nil, fErr
		}
		feedback = append(feedback, f)
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		status,
		dto.TrackingNumber,
		dto.ScheduledDate,
		timeSlot,
		dto.SpecialInstructions,
		dto.PhotoProof,
		dto.FailureReason,
		dto.RescheduleCount,
		history,
		feedback,
	)
}

func historyToDomain(dto StatusHistoryDTO) (*delivery.StatusHistory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreStatusHistory(id, status, dto.Notes, dto.RecordedAt)
}

func feedbackToDomain(dto FeedbackDTO) (*delivery.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreFeedback(id, dto.Rating, dto.Comment, dto.SubmittedAt)
}
