package api

import (
	"net/http"

	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/handler/middleware"
	"gymbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type DashboardHandler struct {
	equipmentQueries queries.EquipmentQueries
	bookingQueries   queries.BookingQueries
}

func NewDashboardHandler(equipmentQueries queries.EquipmentQueries, bookingQueries queries.BookingQueries) *DashboardHandler {
	return &DashboardHandler{
		equipmentQueries: equipmentQueries,
		bookingQueries:   bookingQueries,
	}
}

// Dashboard fetches equipment categories and the caller's active bookings
// concurrently. Each query degrades to fallback data on its own, so the
// combined fetch never fails outright.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	uid, ok := middleware.GetUID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var (
		categories queries.CategoriesResult
		bookings   queries.BookingsResult
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		categories = h.equipmentQueries.Categories(ctx)
		return nil
	})
	g.Go(func() error {
		bookings = h.bookingQueries.ActiveByUser(ctx, uid)
		return nil
	})
	_ = g.Wait()

	c.JSON(http.StatusOK, resdto.DashboardResponse{
		Categories: resdto.FromCategoriesResult(categories),
		Bookings:   resdto.FromBookingsResult(bookings),
	})
}
