package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/intake"
	"go.uber.org/zap"
)

func (s *Server) postPreBooking(c echo.Context) error {
	var booking intake.PreBooking
	if err := c.Bind(&booking); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse pre-booking")
	}
	id, err := s.intake.SubmitPreBooking(c.Request().Context(), booking)
	if errors.Is(err, intake.ErrValidation) {
		return fail(c, http.StatusBadRequest, "Name, phone, email and product are required")
	}
	if err != nil {
		zap.L().Error("webapi: submit pre-booking failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to submit pre-booking")
	}
	return ok(c, map[string]interface{}{
		"message": "Pre-booking submitted successfully",
		"id":      id,
	})
}

func (s *Server) listPreBookings(c echo.Context) error {
	bookings, err := s.intake.ListPreBookings(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: list pre-bookings failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to get pre-bookings")
	}
	return ok(c, map[string]interface{}{"bookings": bookings})
}

func (s *Server) postPreOrderRequest(c echo.Context) error {
	var req intake.PreOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse pre-order request")
	}
	id, err := s.intake.SubmitPreOrderRequest(c.Request().Context(), req)
	if errors.Is(err, intake.ErrValidation) {
		return fail(c, http.StatusBadRequest, "Name, phone and occasion are required")
	}
	if err != nil {
		zap.L().Error("webapi: submit pre-order request failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to submit pre-order request")
	}
	return ok(c, map[string]interface{}{
		"message": "Pre-order request submitted successfully",
		"id":      id,
	})
}

func (s *Server) listPreOrderRequests(c echo.Context) error {
	requests, err := s.intake.ListPreOrderRequests(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: list pre-order requests failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to get pre-order requests")
	}
	return ok(c, map[string]interface{}{"requests": requests})
}

func (s *Server) postContactMessage(c echo.Context) error {
	var msg intake.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse message")
	}
	id, err := s.intake.SubmitContactMessage(c.Request().Context(), msg)
	if errors.Is(err, intake.ErrValidation) {
		return fail(c, http.StatusBadRequest, "Name, email and message are required")
	}
	if err != nil {
		zap.L().Error("webapi: submit contact message failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to send message")
	}
	return ok(c, map[string]interface{}{
		"message": "Your message has been sent. We'll get back to you soon.",
		"id":      id,
	})
}

func (s *Server) listContactMessages(c echo.Context) error {
	messages, err := s.intake.ListContactMessages(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: list contact messages failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to get messages")
	}
	return ok(c, map[string]interface{}{"messages": messages})
}
