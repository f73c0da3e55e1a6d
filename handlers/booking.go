package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourbase/middleware"
	"tourbase/services/booking"
	"tourbase/utils"
)

// BookingHandler drives the three-phase booking flow over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession starts a booking session for a tour.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		TourID string `json:"tourId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	session, err := h.Service.InitiateSession(c.Request.Context(), userID, input.TourID)
	if err != nil {
		h.Logger.Warn("booking session initiation failed", zap.String("tourId", input.TourID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to start booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession records the departure and traveller selection and returns the
// recomputed quote.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var input struct {
		DepartureIndex int                `json:"departureIndex"`
		Pax            []booking.PaxInput `json:"pax" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), c.Param("sessionID"), input.DepartureIndex, input.Pax)
	if err != nil {
		utils.JSONError(c, statusForSessionError(err), "failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm charges the quote and finalizes the booking.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.ConfirmBooking(c.Request.Context(), input.SessionID)
	if err != nil {
		h.Logger.Warn("booking confirmation failed", zap.String("sessionId", input.SessionID), zap.Error(err))
		utils.JSONError(c, statusForSessionError(err), "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// MyBookings lists the caller's confirmed bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func statusForSessionError(err error) int {
	if se, ok := err.(*booking.SessionError); ok {
		if se.Code == "sessionNotFound" {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
