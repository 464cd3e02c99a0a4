package http

// Envelope is the uniform response wrapper.
// Data is set on success, Message on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// CreateLocationRequest is the payload for registering a catalog entry.
type CreateLocationRequest struct {
	Name             string   `json:"name"`
	Tier             int      `json:"tier"`
	Price            float64  `json:"price"`
	Description      string   `json:"description"`
	EstimatedDays    int      `json:"estimatedDays"`
	ExpressAvailable bool     `json:"expressAvailable"`
	ExpressPrice     *float64 `json:"expressPrice"`
}

// LocationResponse is a catalog entry as returned to clients.
type LocationResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tier             int      `json:"tier"`
	Price            float64  `json:"price"`
	Description      string   `json:"description,omitempty"`
	EstimatedDays    int      `json:"estimatedDays"`
	ExpressAvailable bool     `json:"expressAvailable"`
	ExpressPrice     *float64 `json:"expressPrice,omitempty"`
}

// CreateOrderRequest is the payload for registering a placed order.
type CreateOrderRequest struct {
	OrderID      string  `json:"orderId"`
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	LocationName string  `json:"locationName"`
	ItemCount    int     `json:"itemCount"`
	Subtotal     float64 `json:"subtotal"`
}

// PriceResponse is the standard price lookup result.
type PriceResponse struct {
	LocationName  string  `json:"locationName"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimatedDays"`
}

// CalculateRequest is the payload for a shipping cost breakdown.
type CalculateRequest struct {
	LocationName string  `json:"locationName"`
	ItemCount    int     `json:"itemCount"`
	Subtotal     float64 `json:"subtotal"`
	Express      bool    `json:"express"`
}

// CalculateResponse is the resolved shipping cost breakdown.
type CalculateResponse struct {
	LocationName   string  `json:"locationName"`
	Subtotal       float64 `json:"subtotal"`
	DeliveryCost   float64 `json:"deliveryCost"`
	ExpressApplied bool    `json:"expressApplied"`
	DiscountRate   float64 `json:"discountRate"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
	EstimatedDays  int     `json:"estimatedDays"`
}

// ScheduleRequest is the payload for scheduling a delivery.
type ScheduleRequest struct {
	OrderID             string `json:"orderId"`
	ScheduledDate       string `json:"scheduledDate"`
	TimeSlot            string `json:"timeSlot"`
	SpecialInstructions string `json:"specialInstructions"`
}

// ScheduleResponse acknowledges a scheduled delivery.
type ScheduleResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	ScheduledDate  string `json:"scheduledDate"`
	TimeSlot       string `json:"timeSlot"`
}

// UpdateStatusRequest is the payload for a status transition.
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	PhotoProof    string `json:"photoProof"`
	FailureReason string `json:"failureReason"`
}

// RescheduleRequest is the payload for moving a delivery to a new date.
type RescheduleRequest struct {
	NewDate  string `json:"newDate"`
	TimeSlot string `json:"timeSlot"`
	Notes    string `json:"notes"`
}

// FeedbackRequest is the payload for customer feedback on a delivery.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AnalyticsResponse aggregates delivery performance metrics.
type AnalyticsResponse struct {
	TotalDeliveries  int            `json:"totalDeliveries"`
	CountsByStatus   map[string]int `json:"countsByStatus"`
	SuccessRate      float64        `json:"successRate"`
	AverageRating    float64        `json:"averageRating"`
	FeedbackCount    int            `json:"feedbackCount"`
	TotalReschedules int            `json:"totalReschedules"`
}
