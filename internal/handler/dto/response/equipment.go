package response

import (
	"time"

	"gymbook/internal/domain/equipment"
	"gymbook/internal/usecase/queries"
)

type EquipmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	IsAvailable   bool      `json:"isAvailable"`
	CurrentUserID *string   `json:"currentUserId,omitempty"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

func FromEquipment(e equipment.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		IsAvailable:   e.IsAvailable,
		CurrentUserID: e.CurrentUserID,
		LastUpdated:   e.LastUpdated,
	}
}

func FromEquipmentList(items []equipment.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEquipment(e))
	}
	return out
}

type CategoriesResponse struct {
	Categories []equipment.Category `json:"categories"`
	Degraded   bool                 `json:"degraded"`
}

func FromCategoriesResult(res queries.CategoriesResult) CategoriesResponse {
	return CategoriesResponse{Categories: res.Categories, Degraded: res.Degraded}
}
