package queries

import (
	"context"
	"log/slog"
	"time"

	"gymbook/internal/domain/booking"
	"gymbook/internal/pkg/clock"
	"gymbook/internal/pkg/stream"
)

// BookingsResult carries a user's active bookings. Degraded is set
// when a store failure replaced live data with the fixed fallback.
type BookingsResult struct {
	Bookings []*booking.Booking
	Degraded bool
}

type BookingReadStore interface {
	// ListActiveByUser returns bookings with status in
	// {upcoming, active} for the user, ordered by ascending startTime.
	ListActiveByUser(ctx context.Context, userID string) ([]*booking.Booking, error)
}

// BookingWatcher delivers the mapped snapshot for the same filter as
// ListActiveByUser on every remote change. Unlike the read path there
// is no fallback on listener errors.
type BookingWatcher interface {
	WatchUserBookings(ctx context.Context, userID string, onChange func([]*booking.Booking)) (*stream.Subscription, error)
}

type BookingQueries interface {
	ActiveByUser(ctx context.Context, userID string) BookingsResult
	SubscribeToUserBookings(ctx context.Context, userID string, fn func([]*booking.Booking)) (*stream.Subscription, error)
}

type bookingQueriesImpl struct {
	store   BookingReadStore
	watcher BookingWatcher
	clock   clock.Clock
}

func NewBookingQueries(store BookingReadStore, watcher BookingWatcher, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, watcher: watcher, clock: clock}
}

func (q *bookingQueriesImpl) ActiveByUser(ctx context.Context, userID string) BookingsResult {
	bookings, err := q.store.ListActiveByUser(ctx, userID)
	if err != nil {
		slog.Warn("booking fetch failed, serving fallback bookings", "user_id", userID, "error", err.Error())
		return BookingsResult{Bookings: FallbackBookings(userID, q.clock.Now()), Degraded: true}
	}
	return BookingsResult{Bookings: bookings}
}

func (q *bookingQueriesImpl) SubscribeToUserBookings(ctx context.Context, userID string, fn func([]*booking.Booking)) (*stream.Subscription, error) {
	return q.watcher.WatchUserBookings(ctx, userID, fn)
}

// FallbackBookings is the fixed two-item degrade payload with synthetic
// near-future windows, anchored at now.
func FallbackBookings(userID string, now time.Time) []*booking.Booking {
	return []*booking.Booking{
		booking.ReconstructBooking(
			"1", userID, "treadmill-5", "Treadmill 5",
			now.Add(2*time.Hour), now.Add(2*time.Hour+30*time.Minute),
			30, booking.StatusUpcoming, now,
		),
		booking.ReconstructBooking(
			"2", userID, "bench-press-2", "Bench Press 2",
			now.Add(4*time.Hour), now.Add(4*time.Hour+45*time.Minute),
			45, booking.StatusUpcoming, now,
		),
	}
}
