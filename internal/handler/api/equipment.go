package api

import (
	"io"
	"net/http"

	resdto "gymbook/internal/handler/dto/response"
	"gymbook/internal/handler/httperr"
	"gymbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	equipmentQueries queries.EquipmentQueries
}

func NewEquipmentHandler(equipmentQueries queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentQueries: equipmentQueries,
	}
}

func (h *EquipmentHandler) Categories(c *gin.Context) {
	res := h.equipmentQueries.Categories(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCategoriesResult(res))
}

func (h *EquipmentHandler) Available(c *gin.Context) {
	items := h.equipmentQueries.Available(c.Request.Context(), c.Query("category"))
	c.JSON(http.StatusOK, resdto.FromEquipmentList(items))
}

// StreamCategories pushes category snapshots over SSE until the client
// disconnects. Updates arriving faster than the client drains are dropped
// in favor of the newest snapshot.
func (h *EquipmentHandler) StreamCategories(c *gin.Context) {
	ctx := c.Request.Context()

	updates := make(chan queries.CategoriesResult, 1)
	sub, err := h.equipmentQueries.SubscribeToCategories(ctx, func(res queries.CategoriesResult) {
		for {
			select {
			case updates <- res:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Could not subscribe to equipment updates", nil)
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case res := <-updates:
			c.SSEvent("categories", resdto.FromCategoriesResult(res))
			return true
		case <-sub.Done():
			return false
		case <-ctx.Done():
			return false
		}
	})
}
