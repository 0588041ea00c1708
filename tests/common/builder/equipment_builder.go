//go:build unit || e2e

package builder

import (
	"time"

	"gymbook/internal/domain/equipment"
)

type EquipmentBuilder struct {
	ID            string
	Name          string
	Category      string
	IsAvailable   bool
	CurrentUserID *string
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:          "treadmill-1",
		Name:        "Treadmill 1",
		Category:    "Cardio",
		IsAvailable: true,
	}
}

func (e *EquipmentBuilder) WithID(id string) *EquipmentBuilder {
	e.ID = id
	return e
}

func (e *EquipmentBuilder) WithCategory(category string) *EquipmentBuilder {
	e.Category = category
	return e
}

func (e *EquipmentBuilder) InUseBy(userID string) *EquipmentBuilder {
	e.IsAvailable = false
	e.CurrentUserID = &userID
	return e
}

func (e *EquipmentBuilder) Build() equipment.Equipment {
	return equipment.Equipment{
		ID:            e.ID,
		Name:          e.Name,
		Category:      e.Category,
		IsAvailable:   e.IsAvailable,
		CurrentUserID: e.CurrentUserID,
		LastUpdated:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}
