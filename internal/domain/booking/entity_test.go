//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gymbook/internal/domain/booking"
	"gymbook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Empty(t, actual.ID(), "store assigns the ID on insert")
		assert.True(t, actual.CreatedAt().IsZero(), "store assigns createdAt on insert")
		assert.Equal(t, booking.StatusUpcoming, actual.Status())
		assert.Equal(t, 30, actual.Duration())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsCancelled())
	})

	t.Run("duration is derived from the window", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		actual, err := builder.NewBookingBuilder().
			WithWindow(start, start.Add(45*time.Minute)).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 45, actual.Duration())
	})

	t.Run("validation", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "empty user id",
				mutate: func(b *builder.BookingBuilder) { b.UserID = "" },
				errIs:  booking.ErrEmptyUserID,
			},
			{
				name:   "whitespace user id",
				mutate: func(b *builder.BookingBuilder) { b.UserID = "   " },
				errIs:  booking.ErrEmptyUserID,
			},
			{
				name:   "empty equipment id",
				mutate: func(b *builder.BookingBuilder) { b.EquipmentID = "" },
				errIs:  booking.ErrEmptyEquipmentID,
			},
			{
				name:   "end equals start",
				mutate: func(b *builder.BookingBuilder) { b.WithWindow(start, start) },
				errIs:  booking.ErrInvalidWindow,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.WithWindow(start, start.Add(-time.Minute)) },
				errIs:  booking.ErrInvalidWindow,
			},
			{
				name:   "one minute window is valid",
				mutate: func(b *builder.BookingBuilder) { b.WithWindow(start, start.Add(time.Minute)) },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestReconstructBooking(t *testing.T) {
	t.Run("keeps stored fields without re-validation", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildReconstructed()

		assert.Equal(t, "booking-1", b.ID())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.IsCancelled())
		assert.False(t, b.IsActive())
	})
}

func TestBookingExpiry(t *testing.T) {
	b := builder.NewBookingBuilder().BuildReconstructed()

	assert.False(t, b.HasExpired(b.EndTime()))
	assert.True(t, b.HasExpired(b.EndTime().Add(time.Second)))
}

func TestStatus(t *testing.T) {
	t.Run("active statuses", func(t *testing.T) {
		assert.True(t, booking.StatusUpcoming.IsActive())
		assert.True(t, booking.StatusActive.IsActive())
		assert.False(t, booking.StatusCompleted.IsActive())
		assert.False(t, booking.StatusCancelled.IsActive())
	})

	t.Run("ActiveStatuses matches the active set", func(t *testing.T) {
		assert.Equal(t, []string{"upcoming", "active"}, booking.ActiveStatuses())
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, booking.Status("upcoming").IsValid())
		assert.False(t, booking.Status("expired").IsValid())
		assert.False(t, booking.Status("").IsValid())
	})
}
