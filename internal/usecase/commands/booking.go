package commands

import (
	"context"
	"log/slog"
	"time"

	"gymbook/internal/domain/booking"
	"gymbook/internal/infra"
	"gymbook/internal/pkg/clock"
	"gymbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound    = errs.New("equipment not found")
	ErrEquipmentUnavailable = errs.New("equipment unavailable")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreOperationFailed = errs.New("store operation failed")
)

// BookingWriteStore performs the paired booking/equipment writes. Both
// methods are transactional at the store: the booking transition and
// the equipment flag move together or not at all.
type BookingWriteStore interface {
	CreateBooking(ctx context.Context, b *booking.Booking) (string, error)
	CancelBooking(ctx context.Context, bookingID, equipmentID string) error
}

// EventPublisher emits booking lifecycle events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type CreateBookingParams struct {
	UserID        string
	EquipmentID   string
	EquipmentName string
	StartTime     time.Time
	EndTime       time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, p CreateBookingParams) (string, error)
	CancelBooking(ctx context.Context, bookingID, equipmentID string) error
}

type bookingCommandsImpl struct {
	store BookingWriteStore
	pub   EventPublisher
	clock clock.Clock
}

func NewBookingCommands(store BookingWriteStore, pub EventPublisher, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{store: store, pub: pub, clock: clock}
}

// CreateBooking inserts the booking and marks the equipment held in a
// single store transaction. Write failures propagate to the caller;
// there is no degrade path on this side.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, p CreateBookingParams) (string, error) {
	entity, err := booking.NewBooking(p.UserID, p.EquipmentID, p.EquipmentName, p.StartTime, p.EndTime)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.store.CreateBooking(ctx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return "", errs.Mark(err, ErrEquipmentNotFound)
		case infra.IsKind(err, infra.KindConflict):
			return "", errs.Mark(err, ErrEquipmentUnavailable)
		default:
			return "", errs.Mark(err, ErrStoreOperationFailed)
		}
	}

	c.publish(ctx, "booking.created", bookingEvent{
		EventID:     uuid.NewString(),
		BookingID:   id,
		UserID:      p.UserID,
		EquipmentID: p.EquipmentID,
		StartTime:   p.StartTime.Unix(),
		EndTime:     p.EndTime.Unix(),
		OccurredAt:  c.clock.Now(),
	})

	return id, nil
}

// CancelBooking is the inverse transition: booking → cancelled and the
// equipment released, again as one store transaction.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, equipmentID string) error {
	if err := c.store.CancelBooking(ctx, bookingID, equipmentID); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrBookingNotFound)
		default:
			return errs.Mark(err, ErrStoreOperationFailed)
		}
	}

	c.publish(ctx, "booking.cancelled", bookingEvent{
		EventID:     uuid.NewString(),
		BookingID:   bookingID,
		EquipmentID: equipmentID,
		OccurredAt:  c.clock.Now(),
	})

	return nil
}

// publish is fire-and-forget: a broker outage must not fail the
// booking transition the store already committed.
func (c *bookingCommandsImpl) publish(ctx context.Context, key string, ev bookingEvent) {
	if c.pub == nil {
		return
	}
	if err := c.pub.PublishJSON(ctx, key, ev); err != nil {
		slog.Warn("booking event publish failed", "key", key, "booking_id", ev.BookingID, "error", err.Error())
	}
}

type bookingEvent struct {
	EventID     string    `json:"event_id"`
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id,omitempty"`
	EquipmentID string    `json:"equipment_id"`
	StartTime   int64     `json:"start,omitempty"`
	EndTime     int64     `json:"end,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
