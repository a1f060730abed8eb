package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vendotha/mini-event-finder/internal/api"
	"github.com/vendotha/mini-event-finder/internal/application"
	"github.com/vendotha/mini-event-finder/internal/domain/event"
	"github.com/vendotha/mini-event-finder/internal/pkg/metrics"
)

// 返却するメッセージはクライアントが文字列一致で扱うため固定
const (
	msgEventNotFound = "Event not found"
	msgMissingFields = "Missing required fields: title, location, date, maxParticipants"
)

type EventHandler struct {
	eventService EventServiceInterface
}

func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	Title           string `json:"title" validate:"required" example:"Tech Meetup Hyderabad"`
	Description     string `json:"description" example:"A meetup for tech enthusiasts."`
	Location        string `json:"location" validate:"required" example:"Hyderabad"`
	Date            string `json:"date" validate:"required" example:"2025-11-15"`
	MaxParticipants int    `json:"maxParticipants" validate:"required" example:"50"`
}

type EventResponse struct {
	ID                  string `json:"id" example:"1"`
	Title               string `json:"title" example:"Tech Meetup Hyderabad"`
	Description         string `json:"description" example:"A meetup for tech enthusiasts."`
	Location            string `json:"location" example:"Hyderabad"`
	Date                string `json:"date" example:"2025-11-15"`
	MaxParticipants     int    `json:"maxParticipants" example:"50"`
	CurrentParticipants int    `json:"currentParticipants" example:"25"`
}

func toEventResponse(e *event.Event) *EventResponse {
	return &EventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Location:            e.Location,
		Date:                e.Date,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
	}
}

// List godoc
// @Summary イベント一覧を取得
// @Description イベントの一覧を取得します
// @Tags events
// @Produce json
// @Param location query string false "場所の完全一致フィルター（大文字小文字を区別しない）"
// @Success 200 {array} EventResponse
// @Router /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	location := c.QueryParam("location")

	events, err := h.eventService.ListEvents(c.Request().Context(), location)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: err.Error()})
	}

	responses := make([]*EventResponse, len(events))
	for i, e := range events {
		responses[i] = toEventResponse(e)
	}
	return c.JSON(http.StatusOK, responses)
}

// GetByID godoc
// @Summary イベントを取得
// @Description 指定IDのイベントを取得します
// @Tags events
// @Produce json
// @Param id path string true "イベントID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} api.MessageResponse
// @Router /api/events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	e, err := h.eventService.GetEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, api.MessageResponse{Message: msgEventNotFound})
		}
		return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: err.Error()})
	}
	return c.JSON(http.StatusOK, toEventResponse(e))
}

// Create godoc
// @Summary イベントを作成
// @Description 新しいイベントを作成します
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "イベント情報"
// @Success 201 {object} EventResponse
// @Failure 400 {object} api.MessageResponse
// @Router /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgMissingFields})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgMissingFields})
	}

	input := application.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Date:            req.Date,
		MaxParticipants: req.MaxParticipants,
	}

	e, err := h.eventService.CreateEvent(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, event.ErrMissingRequiredFields) {
			return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgMissingFields})
		}
		return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: err.Error()})
	}

	if m := metrics.Get(); m != nil {
		m.EventsCreatedTotal.Inc()
	}

	return c.JSON(http.StatusCreated, toEventResponse(e))
}
