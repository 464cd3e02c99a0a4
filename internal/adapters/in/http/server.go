// Package http exposes the delivery service over a JSON API built on Echo.
// Every response is wrapped in an envelope with a success flag; domain errors
// map to 400 for validation failures, 404 for missing objects, 409 for
// workflow conflicts and 500 otherwise.
package http

import (
	"errors"
	"net/http"
	"time"

	"householdplanet/internal/core/application/usecases/commands"
	"householdplanet/internal/core/application/usecases/queries"
	"householdplanet/internal/core/domain/model/delivery"
	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// scheduledDateLayout is the wire format for delivery dates.
const scheduledDateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createLocationHandler       commands.CreateLocationCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	scheduleDeliveryHandler     commands.ScheduleDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	rescheduleDeliveryHandler   commands.RescheduleDeliveryCommandHandler
	submitFeedbackHandler       commands.SubmitFeedbackCommandHandler

	getLocationsHandler        queries.GetLocationsQueryHandler
	getDeliveryPriceHandler    queries.GetDeliveryPriceQueryHandler
	getDeliveryTrackingHandler queries.GetDeliveryTrackingQueryHandler
	getAnalyticsHandler        queries.GetDeliveryAnalyticsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createLocationHandler commands.CreateLocationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	rescheduleDeliveryHandler commands.RescheduleDeliveryCommandHandler,
	submitFeedbackHandler commands.SubmitFeedbackCommandHandler,
	getLocationsHandler queries.GetLocationsQueryHandler,
	getDeliveryPriceHandler queries.GetDeliveryPriceQueryHandler,
	getDeliveryTrackingHandler queries.GetDeliveryTrackingQueryHandler,
	getAnalyticsHandler queries.GetDeliveryAnalyticsQueryHandler,
) *Server {
	return &Server{
		createLocationHandler:       createLocationHandler,
		createOrderHandler:          createOrderHandler,
		scheduleDeliveryHandler:     scheduleDeliveryHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		rescheduleDeliveryHandler:   rescheduleDeliveryHandler,
		submitFeedbackHandler:       submitFeedbackHandler,
		getLocationsHandler:         getLocationsHandler,
		getDeliveryPriceHandler:     getDeliveryPriceHandler,
		getDeliveryTrackingHandler:  getDeliveryTrackingHandler,
		getAnalyticsHandler:         getAnalyticsHandler,
	}
}

// RegisterRoutes wires the API routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1/delivery")
	api.GET("/locations", s.GetLocations)
	api.POST("/locations", s.CreateLocation)
	api.POST("/orders", s.CreateOrder)
	api.GET("/price", s.GetDeliveryPrice)
	api.POST("/calculate", s.CalculateDelivery)
	api.POST("/schedule", s.ScheduleDelivery)
	api.GET("/track/:trackingNumber", s.TrackDelivery)
	api.PUT("/track/:trackingNumber/status", s.UpdateDeliveryStatus)
	api.PUT("/track/:trackingNumber/reschedule", s.RescheduleDelivery)
	api.POST("/track/:trackingNumber/feedback", s.SubmitFeedback)
	api.GET("/analytics", s.GetAnalytics)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"status":  "ok",
	})
}

// GetLocations handles GET /api/v1/delivery/locations.
func (s *Server) GetLocations(ctx echo.Context) error {
	locations, err := s.getLocationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetLocationsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]LocationResponse, 0, len(locations))
	for _, loc := range locations {
		response = append(response, LocationResponse{
			ID:               loc.ID.String(),
			Name:             loc.Name,
			Tier:             loc.Tier,
			Price:            loc.Price,
			Description:      loc.Description,
			EstimatedDays:    loc.EstimatedDays,
			ExpressAvailable: loc.ExpressAvailable,
			ExpressPrice:     loc.ExpressPrice,
		})
	}

	return dataResponse(ctx, http.StatusOK, response)
}

// CreateLocation handles POST /api/v1/delivery/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var req CreateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateLocationCommand(
		req.Name, req.Tier, req.Price, req.Description,
		req.EstimatedDays, req.ExpressAvailable, req.ExpressPrice,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusCreated, map[string]string{"name": req.Name})
}

// CreateOrder handles POST /api/v1/delivery/orders.
// Registers a placed order so a delivery can later be scheduled against it.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequestResponse(ctx, "invalid order id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.CustomerName, req.Phone, req.LocationName, req.ItemCount, req.Subtotal,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusCreated, map[string]string{"orderId": req.OrderID})
}

// GetDeliveryPrice handles GET /api/v1/delivery/price?location=.
// Returns the standard delivery price for a destination.
func (s *Server) GetDeliveryPrice(ctx echo.Context) error {
	locationName := ctx.QueryParam("location")

	query, err := queries.NewGetDeliveryPriceQuery(locationName, 1, 0, false)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quote, err := s.getDeliveryPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, PriceResponse{
		LocationName:  quote.LocationName,
		Price:         quote.DeliveryCost,
		EstimatedDays: quote.EstimatedDays,
	})
}

// CalculateDelivery handles POST /api/v1/delivery/calculate.
// Returns the full shipping cost breakdown, including bulk discounts.
func (s *Server) CalculateDelivery(ctx echo.Context) error {
	var req CalculateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	query, err := queries.NewGetDeliveryPriceQuery(
		req.LocationName, req.ItemCount, req.Subtotal, req.Express,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quote, err := s.getDeliveryPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, CalculateResponse{
		LocationName:   quote.LocationName,
		Subtotal:       quote.Subtotal,
		DeliveryCost:   quote.DeliveryCost,
		ExpressApplied: quote.ExpressApplied,
		DiscountRate:   quote.DiscountRate,
		DiscountAmount: quote.DiscountAmount,
		Total:          quote.Total,
		EstimatedDays:  quote.EstimatedDays,
	})
}

// ScheduleDelivery handles POST /api/v1/delivery/schedule.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	var req ScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequestResponse(ctx, "invalid order id")
	}

	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		return badRequestResponse(ctx, "invalid scheduled date")
	}

	timeSlot, err := delivery.TimeSlotFromString(req.TimeSlot)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		orderID, scheduledDate, timeSlot, req.SpecialInstructions,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	trackingNumber, err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusCreated, ScheduleResponse{
		TrackingNumber: trackingNumber,
		ScheduledDate:  scheduledDate.Format(scheduledDateLayout),
		TimeSlot:       timeSlot.String(),
	})
}

// TrackDelivery handles GET /api/v1/delivery/track/:trackingNumber.
func (s *Server) TrackDelivery(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryTrackingQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	snapshot, err := s.getDeliveryTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, snapshot)
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery/track/:trackingNumber/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		ctx.Param("trackingNumber"), status, req.Notes, req.PhotoProof, req.FailureReason,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, map[string]string{
		"trackingNumber": cmd.TrackingNumber(),
		"status":         status.String(),
	})
}

// RescheduleDelivery handles PUT /api/v1/delivery/track/:trackingNumber/reschedule.
func (s *Server) RescheduleDelivery(ctx echo.Context) error {
	var req RescheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	newDate, err := parseDate(req.NewDate)
	if err != nil {
		return badRequestResponse(ctx, "invalid new date")
	}

	timeSlot, err := delivery.TimeSlotFromString(req.TimeSlot)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRescheduleDeliveryCommand(
		ctx.Param("trackingNumber"), newDate, timeSlot, req.Notes,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rescheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, map[string]string{
		"trackingNumber": cmd.TrackingNumber(),
		"newDate":        newDate.Format(scheduledDateLayout),
		"timeSlot":       timeSlot.String(),
	})
}

// SubmitFeedback handles POST /api/v1/delivery/track/:trackingNumber/feedback.
func (s *Server) SubmitFeedback(ctx echo.Context) error {
	var req FeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	cmd, err := commands.NewSubmitFeedbackCommand(
		ctx.Param("trackingNumber"), req.Rating, req.Comment,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.submitFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusCreated, map[string]any{
		"trackingNumber": cmd.TrackingNumber(),
		"rating":         req.Rating,
	})
}

// GetAnalytics handles GET /api/v1/delivery/analytics.
func (s *Server) GetAnalytics(ctx echo.Context) error {
	analytics, err := s.getAnalyticsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDeliveryAnalyticsQuery(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return dataResponse(ctx, http.StatusOK, AnalyticsResponse{
		TotalDeliveries:  analytics.TotalDeliveries,
		CountsByStatus:   analytics.CountsByStatus,
		SuccessRate:      analytics.SuccessRate,
		AverageRating:    analytics.AverageRating,
		FeedbackCount:    analytics.FeedbackCount,
		TotalReschedules: analytics.TotalReschedules,
	})
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(scheduledDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func dataResponse(ctx echo.Context, status int, data any) error {
	return ctx.JSON(status, Envelope{Success: true, Data: data})
}

func badRequestResponse(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, delivery.ErrStatusTransitionNotAllowed),
		errors.Is(err, commands.ErrDeliveryAlreadyScheduled):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Envelope{Success: false, Message: err.Error()})
}
