package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUserID      = errors.New("user id cannot be empty")
	ErrEmptyEquipmentID = errors.New("equipment id cannot be empty")
	ErrInvalidWindow    = errors.New("end time must be after start time")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// Booking reserves one piece of equipment for one user over a time
// window. ID and CreatedAt are assigned by the store on insert.
type Booking struct {
	id            string
	userID        string
	equipmentID   string
	equipmentName string
	startTime     time.Time
	endTime       time.Time
	duration      int // minutes
	status        Status
	createdAt     time.Time
}

// NewBooking validates a booking request. The duration is derived from
// the window rather than taken from the caller.
func NewBooking(userID, equipmentID, equipmentName string, start, end time.Time) (*Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID == "" {
		return nil, ErrEmptyEquipmentID
	}
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}

	return &Booking{
		userID:        userID,
		equipmentID:   equipmentID,
		equipmentName: equipmentName,
		startTime:     start,
		endTime:       end,
		duration:      int(end.Sub(start).Minutes()),
		status:        StatusUpcoming,
	}, nil
}

// ReconstructBooking rebuilds a booking from a store snapshot without
// re-validating; the stored duration is kept even if it disagrees with
// the window.
func ReconstructBooking(
	id, userID, equipmentID, equipmentName string,
	start, end time.Time,
	duration int,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		equipmentID:   equipmentID,
		equipmentName: equipmentName,
		startTime:     start,
		endTime:       end,
		duration:      duration,
		status:        status,
		createdAt:     createdAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) HasExpired(now time.Time) bool {
	return now.After(b.endTime)
}

func (b *Booking) ID() string            { return b.id }
func (b *Booking) UserID() string        { return b.userID }
func (b *Booking) EquipmentID() string   { return b.equipmentID }
func (b *Booking) EquipmentName() string { return b.equipmentName }
func (b *Booking) StartTime() time.Time  { return b.startTime }
func (b *Booking) EndTime() time.Time    { return b.endTime }
func (b *Booking) Duration() int         { return b.duration }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
