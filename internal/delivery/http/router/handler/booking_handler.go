// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"homely/internal/delivery/http/middleware"
	"homely/internal/delivery/http/response"
	"homely/internal/domain/entity"
	"homely/internal/domain/repository"
	"homely/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking-related handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	ServiceName string    `json:"serviceName" validate:"required"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	DateTime    time.Time `json:"dateTime" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
}

// UpdateBookingRequest represents the request body for a partial booking update.
// All fields are optional; at least one must be present.
type UpdateBookingRequest struct {
	Status   *string    `json:"status,omitempty"`
	Name     *string    `json:"name,omitempty"`
	Email    *string    `json:"email,omitempty" validate:"omitempty,email"`
	DateTime *time.Time `json:"dateTime,omitempty"`
}

// CreateBooking handles creating a new booking for the authenticated user
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, &usecase.CreateBookingInput{
		ServiceName: req.ServiceName,
		Cost:        req.Cost,
		DateTime:    req.DateTime,
		Name:        req.Name,
		Email:       req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created successfully")
}

// ListBookings handles retrieving all bookings of the authenticated user
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// GetBooking handles retrieving a single booking owned by the authenticated user
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	booking, err := h.bookingUC.GetUserBooking(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking retrieved successfully")
}

// UpdateBooking handles a partial update of a booking owned by the
// authenticated user. Status may only be changed to Cancelled from here;
// other status values belong to the provider workflow.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patch := &repository.BookingPatch{
		Name:     req.Name,
		Email:    req.Email,
		DateTime: req.DateTime,
	}
	if req.Status != nil {
		status := entity.BookingStatus(*req.Status)
		patch.Status = &status
	}

	booking, err := h.bookingUC.UpdateUserBooking(c.Request().Context(), userID, c.Param("id"), patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking updated successfully")
}
