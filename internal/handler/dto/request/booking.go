package request

import "time"

type CreateBookingRequest struct {
	EquipmentID   string    `json:"equipmentId" binding:"required"`
	EquipmentName string    `json:"equipmentName" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required"`
}

// CancelBookingRequest names the equipment to release along with the
// booking identified in the path.
type CancelBookingRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required"`
}
