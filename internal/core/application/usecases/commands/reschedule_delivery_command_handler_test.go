package commands_test

import (
	"testing"
	"time"

	"householdplanet/internal/core/application/usecases/commands"
	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/ports"
	"householdplanet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRescheduleDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o := newTestOrder(t, orderID)
	d := newTestDelivery(t, orderID)
	require.NoError(t, d.ChangeStatus(delivery.Confirmed, "", d.ScheduledDate()))
	require.NoError(t, d.MarkFailed("Customer not available", "", d.ScheduledDate()))

	newDate := time.Now().UTC().Add(72 * time.Hour)
	cmd, err := commands.NewRescheduleDeliveryCommand(
		d.TrackingNumber(), newDate, delivery.Evening, "Customer requested evening",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByTrackingNumber", mock.Anything, d.TrackingNumber()).Return(d, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockTrackingCache)
	cache.On("Invalidate", mock.Anything, d.TrackingNumber()).Return(nil).Once()

	sms := new(MockSmsSender)
	sms.On("Send", mock.Anything, "+254712345678", mock.AnythingOfType("string")).
		Return(ports.SmsReceipt{MessageID: "msg-1", Cost: "KES 1.00"}, nil).Once()

	h := commands.NewRescheduleDeliveryCommandHandler(factory, cache, sms, discardLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, delivery.Rescheduled, d.Status())
	require.Equal(t, newDate, d.ScheduledDate())
	require.Equal(t, delivery.Evening, d.TimeSlot())
	require.Equal(t, 1, d.RescheduleCount())
}

func TestRescheduleDeliveryCommandHandler_Handle_DeliveredCannotBeRescheduled(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	d := newTestDelivery(t, orderID)
	require.NoError(t, d.ChangeStatus(delivery.Confirmed, "", d.ScheduledDate()))
	require.NoError(t, d.ChangeStatus(delivery.PickedUp, "", d.ScheduledDate()))
	require.NoError(t, d.ChangeStatus(delivery.InTransit, "", d.ScheduledDate()))
	require.NoError(t, d.ChangeStatus(delivery.OutForDelivery, "", d.ScheduledDate()))
	require.NoError(t, d.MarkDelivered("photo.jpg", "", d.ScheduledDate()))

	cmd, err := commands.NewRescheduleDeliveryCommand(
		d.TrackingNumber(), time.Now().UTC().Add(72*time.Hour), delivery.Morning, "",
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByTrackingNumber", mock.Anything, d.TrackingNumber()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRescheduleDeliveryCommandHandler(
		factory, new(MockTrackingCache), new(MockSmsSender), discardLogger(),
	)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, delivery.Delivered, d.Status())
}

func TestRescheduleDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRescheduleDeliveryCommand(
		"DL-1700000000000AB", time.Now().UTC().Add(72*time.Hour), delivery.Morning, "",
	)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetByTrackingNumber", mock.Anything, "DL-1700000000000AB").
			Return(nil, errs.NewObjectNotFoundError("trackingNumber", "DL-1700000000000AB")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRescheduleDeliveryCommandHandler(
		factory, new(MockTrackingCache), new(MockSmsSender), discardLogger(),
	)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
