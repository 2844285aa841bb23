package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"homestay/internal/domain"
	"homestay/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the authenticated booking endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.RequestBooking)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.POST("/bookings/:id/payment/confirm", h.ConfirmPayment)
	rg.GET("/me/bookings", h.MyBookings)
	rg.GET("/listings/:id/bookings", h.ListingBookings)
}

// RegisterPublicRoutes wires endpoints that need no authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/listings/:id/unavailable-dates", h.UnavailableDates)
}

func (h *Handler) RequestBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, err1 := time.Parse(dateLayout, req.CheckIn)
	checkOut, err2 := time.Parse(dateLayout, req.CheckOut)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
		return
	}

	b, err := h.service.RequestBooking(c.Request.Context(), CreateBookingInput{
		ListingID:       req.ListingID,
		GuestID:         c.GetInt64("user_id"),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		Addons:          req.Addons,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, err1 := time.Parse(dateLayout, req.CheckIn)
	checkOut, err2 := time.Parse(dateLayout, req.CheckOut)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), c.Param("id"), UpdateBookingInput{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		Addons:   req.Addons,
	}, c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason, c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status), c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	b, err := h.service.ConfirmPayment(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.GetMyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) ListingBookings(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing ID")
		return
	}

	list, err := h.service.GetBookingsForListing(c.Request.Context(), listingID, c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) UnavailableDates(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing ID")
		return
	}

	dates, err := h.service.ListUnavailableDates(c.Request.Context(), listingID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	response.Success(c, http.StatusOK, gin.H{"unavailable_dates": out})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", "Guest count exceeds listing capacity")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or listing not found")
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Listing is not available for the selected dates")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Operation not allowed in the current booking status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
