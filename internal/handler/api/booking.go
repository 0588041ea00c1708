package api

import (
	"errors"
	"net/http"

	reqdto "gymbook/internal/handler/dto/request"
	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/handler/middleware"
	"gymbook/internal/usecase/commands"
	"gymbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	uid, ok := middleware.GetUID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	res := h.bookingQueries.ActiveByUser(c.Request.Context(), uid)
	c.JSON(http.StatusOK, resdto.FromBookingsResult(res))
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	uid, ok := middleware.GetUID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bookingCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		UserID:        uid,
		EquipmentID:   req.EquipmentID,
		EquipmentName: req.EquipmentName,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		case errors.Is(err, commands.ErrEquipmentUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Equipment is currently in use",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid booking window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{ID: id})
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing booking ID",
		})
		return
	}

	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, req.EquipmentID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Equipment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
