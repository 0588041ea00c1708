package response

import (
	"time"

	"gymbook/internal/domain/booking"
	"gymbook/internal/usecase/queries"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	EquipmentID   string    `json:"equipmentId"`
	EquipmentName string    `json:"equipmentName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID(),
		UserID:        b.UserID(),
		EquipmentID:   b.EquipmentID(),
		EquipmentName: b.EquipmentName(),
		StartTime:     b.StartTime(),
		EndTime:       b.EndTime(),
		Duration:      b.Duration(),
		Status:        string(b.Status()),
		CreatedAt:     b.CreatedAt(),
	}
}

type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Degraded bool              `json:"degraded"`
}

func FromBookingsResult(res queries.BookingsResult) BookingsResponse {
	out := make([]BookingResponse, 0, len(res.Bookings))
	for _, b := range res.Bookings {
		out = append(out, FromBooking(b))
	}
	return BookingsResponse{Bookings: out, Degraded: res.Degraded}
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}
