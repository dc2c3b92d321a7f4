package response

import "eventscheduler/internal/models"

// ErrorResponse is the API error body.
type ErrorResponse struct {
	// Error category for programmatic handling
	// example: Bad Request
	Error string `json:"error"`

	// Human-readable detail
	// example: Missing required field: 'title'
	Message string `json:"message"`
}

// MessageResponse is a success body carrying only a confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Event deleted successfully"`
}

// EventResponse is the success body for create and update.
type EventResponse struct {
	Message string       `json:"message" example:"Event created successfully"`
	Event   models.Event `json:"event"`
}

// EventListResponse is the success body for listing events.
type EventListResponse struct {
	Events []models.Event `json:"events"`
}
