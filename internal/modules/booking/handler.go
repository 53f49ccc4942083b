package booking

import (
	"errors"
	"net/http"
	"strconv"

	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the booking endpoints to an authenticated group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/book/:step", h.Advance)
	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("/:id", h.Act)
	}
}

// Advance handles one wizard step submission. The booking session id rides
// in the body or the bookingId query parameter, matching the web client.
func (h *Handler) Advance(c *gin.Context) {
	stepName := c.Param("step")
	step, ok := StepIndex(stepName)
	if !ok {
		response.Error(c, http.StatusNotFound, "UNKNOWN_STEP", "Unknown booking step")
		return
	}

	var req AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sessionID := req.BookingID
	if sessionID == "" {
		sessionID = c.Query("bookingId")
	}

	identityID := c.GetString("identity_id")
	result, err := h.service.Advance(c.Request.Context(), identityID, sessionID, step, req.Fields)
	if err != nil {
		var fieldErrs FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			// Field-scoped and non-destructive: the client keeps its form
			// state and re-renders the same step with these messages.
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Step validation failed", fieldErrs)
		case errors.Is(err, ErrSessionNotFound):
			response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Booking session not found or expired")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_STEP_FAILED", "Failed to process booking step, please try again")
		}
		return
	}

	if result.Booking != nil {
		response.Success(c, http.StatusCreated, gin.H{
			"booking":   result.Booking,
			"next_step": "confirmation",
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking_id": result.Session.ID,
		"next_step":  StepName(result.NextStep),
	})
}

func (h *Handler) Get(c *gin.Context) {
	identityID := c.GetString("identity_id")
	b, err := h.service.Get(c.Request.Context(), identityID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(c, "You don't own this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FETCH_FAILED", "Failed to load booking")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	identityID := c.GetString("identity_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.List(c.Request.Context(), identityID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BOOKING_LIST_FAILED", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Act(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "action must be confirm or cancel")
		return
	}

	identityID := c.GetString("identity_id")
	isAdmin := c.GetString("role") == "admin"

	b, err := h.service.Act(c.Request.Context(), identityID, isAdmin, c.Param("id"), req.Action)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotOwner):
			response.Forbidden(c, "You don't own this booking")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this action")
		case errors.Is(err, ErrInvalidAction):
			response.Error(c, http.StatusBadRequest, "INVALID_ACTION", "action must be confirm or cancel")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_ACTION_FAILED", "Failed to update booking, please try again")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}
