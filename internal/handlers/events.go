package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"eventscheduler/internal/response"
	"eventscheduler/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	categoryBadRequest  = "Bad Request"
	categoryNotFound    = "Not Found"
	categoryServerError = "Internal Server Error"
)

// EventHandler exposes the event store over HTTP. All state lives in the
// store; handlers only decode requests and map store errors to statuses.
type EventHandler struct {
	Store *store.EventStore
}

func NewEventHandler(s *store.EventStore) *EventHandler {
	return &EventHandler{Store: s}
}

func (h *EventHandler) Register(r *gin.Engine) {
	r.GET("/", h.Home)
	r.POST("/events", h.CreateEvent)
	r.GET("/events", h.ListEvents)
	r.PUT("/events/:id", h.UpdateEvent)
	r.DELETE("/events/:id", h.DeleteEvent)
}

// Home godoc
// @Summary		API welcome message
// @Tags			events
// @Produce		json
// @Success		200	{object}	response.MessageResponse
// @Router			/ [get]
func (h *EventHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{
		Message: "Welcome to the Event Scheduler API! Use /events to manage events.",
	})
}

// CreateEvent godoc
// @Summary		Create an event
// @Description	Creates a new event. Requires title, description, start_time and end_time in ISO 8601 format.
// @Tags			events
// @Accept			json
// @Produce		json
// @Param			event	body		object	true	"Event fields"
// @Success		201		{object}	response.EventResponse	"Event created"
// @Failure		400		{object}	response.ErrorResponse	"Validation error"
// @Failure		500		{object}	response.ErrorResponse	"Server error"
// @Router			/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}

	event, err := h.Store.Create(data)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.EventResponse{
		Message: "Event created successfully",
		Event:   event,
	})
}

// ListEvents godoc
// @Summary		List all events
// @Description	Retrieves all scheduled events, sorted by start_time (earliest first).
// @Tags			events
// @Produce		json
// @Success		200	{object}	response.EventListResponse
// @Router			/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, response.EventListResponse{Events: h.Store.List()})
}

// UpdateEvent godoc
// @Summary		Update an event
// @Description	Partially updates an existing event. Any subset of title, description, start_time and end_time may be supplied.
// @Tags			events
// @Accept			json
// @Produce		json
// @Param			id		path		string	true	"Event ID"
// @Param			event	body		object	true	"Fields to update"
// @Success		200		{object}	response.EventResponse	"Event updated"
// @Failure		400		{object}	response.ErrorResponse	"Validation error"
// @Failure		404		{object}	response.ErrorResponse	"Event not found"
// @Failure		500		{object}	response.ErrorResponse	"Server error"
// @Router			/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	data, ok := bindBody(c)
	if !ok {
		return
	}

	event, err := h.Store.Update(c.Param("id"), data)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.EventResponse{
		Message: "Event updated successfully",
		Event:   event,
	})
}

// DeleteEvent godoc
// @Summary		Delete an event
// @Tags			events
// @Produce		json
// @Param			id	path		string	true	"Event ID"
// @Success		200	{object}	response.MessageResponse	"Event deleted"
// @Failure		404	{object}	response.ErrorResponse	"Event not found"
// @Failure		500	{object}	response.ErrorResponse	"Server error"
// @Router			/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	event, err := h.Store.Delete(id)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Message: fmt.Sprintf("Event '%s' with ID '%s' deleted successfully", event.Title, id),
	})
}

// bindBody decodes the request body into a raw JSON object. Field presence
// matters for partial updates, so handlers work with the map instead of a
// bound struct. A missing, malformed or empty body is rejected here.
func bindBody(c *gin.Context) (map[string]any, bool) {
	var data map[string]any
	if err := c.ShouldBindJSON(&data); err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   categoryBadRequest,
			Message: "Request body must be JSON.",
		})
		return nil, false
	}
	return data, true
}

func writeStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   categoryBadRequest,
			Message: validationErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Error:   categoryNotFound,
			Message: notFoundErr.Error(),
		})
	default:
		// Persistence and anything unanticipated: generic, no internal detail.
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error:   categoryServerError,
			Message: "An unexpected error occurred on the server.",
		})
	}
}
