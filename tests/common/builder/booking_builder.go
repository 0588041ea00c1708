//go:build unit || e2e

package builder

import (
	"time"

	"gymbook/internal/domain/booking"
	reqdto "gymbook/internal/handler/dto/request"
	"gymbook/internal/usecase/commands"
)

type BookingBuilder struct {
	ID            string
	UserID        string
	EquipmentID   string
	EquipmentName string
	StartTime     time.Time
	EndTime       time.Time
	Status        booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:            "booking-1",
		UserID:        "user-123",
		EquipmentID:   "treadmill-1",
		EquipmentName: "Treadmill 1",
		StartTime:     start,
		EndTime:       start.Add(30 * time.Minute),
		Status:        booking.StatusUpcoming,
	}
}

func (b *BookingBuilder) WithUserID(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithWindow(start, end time.Time) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.UserID, b.EquipmentID, b.EquipmentName, b.StartTime, b.EndTime)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	duration := int(b.EndTime.Sub(b.StartTime).Minutes())
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.EquipmentID, b.EquipmentName,
		b.StartTime, b.EndTime, duration, b.Status,
		b.StartTime.Add(-time.Hour),
	)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
	}
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		UserID:        b.UserID,
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
	}
}
