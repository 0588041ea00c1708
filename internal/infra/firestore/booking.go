package firestore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymbook/internal/domain/booking"
	"gymbook/internal/infra"
	"gymbook/internal/pkg/stream"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type bookingDoc struct {
	UserID        string    `firestore:"userId"`
	EquipmentID   string    `firestore:"equipmentId"`
	EquipmentName string    `firestore:"equipmentName"`
	StartTime     time.Time `firestore:"startTime"`
	EndTime       time.Time `firestore:"endTime"`
	Duration      int       `firestore:"duration"`
	Status        string    `firestore:"status"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d bookingDoc) toDomain(id string) *booking.Booking {
	return booking.ReconstructBooking(
		id, d.UserID, d.EquipmentID, d.EquipmentName,
		d.StartTime, d.EndTime, d.Duration,
		booking.Status(d.Status), d.CreatedAt,
	)
}

func newBookingDoc(b *booking.Booking) bookingDoc {
	return bookingDoc{
		UserID:        b.UserID(),
		EquipmentID:   b.EquipmentID(),
		EquipmentName: b.EquipmentName(),
		StartTime:     b.StartTime(),
		EndTime:       b.EndTime(),
		Duration:      b.Duration(),
		Status:        b.Status().String(),
		// CreatedAt left zero: the store assigns the server timestamp.
	}
}

type BookingStore struct {
	client *firestore.Client
}

func NewBookingStore(client *firestore.Client) *BookingStore {
	return &BookingStore{client: client}
}

func (s *BookingStore) activeByUserQuery(userID string) firestore.Query {
	return s.client.Collection(bookingsCollection).
		Where("userId", "==", userID).
		Where("status", "in", booking.ActiveStatuses()).
		OrderBy("startTime", firestore.Asc)
}

func (s *BookingStore) ListActiveByUser(ctx context.Context, userID string) ([]*booking.Booking, error) {
	return collectBookings(s.activeByUserQuery(userID).Documents(ctx))
}

func collectBookings(iter *firestore.DocumentIterator) ([]*booking.Booking, error) {
	defer iter.Stop()

	bookings := make([]*booking.Booking, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to iterate bookings", err)
		}

		var doc bookingDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to decode booking document", err)
		}
		bookings = append(bookings, doc.toDomain(snap.Ref.ID))
	}
	return bookings, nil
}

// CreateBooking inserts the booking document and flips the equipment
// to held in one transaction, so a failure on either side leaves no
// orphaned booking or stale availability flag. The equipment must
// exist and be free; a held item rejects the booking outright.
func (s *BookingStore) CreateBooking(ctx context.Context, b *booking.Booking) (string, error) {
	equipRef := s.client.Collection(equipmentCollection).Doc(b.EquipmentID())
	bookingRef := s.client.Collection(bookingsCollection).NewDoc()

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(equipRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return infra.WrapStoreErr(infra.KindNotFound, "equipment not found", err)
			}
			return err
		}

		var doc equipmentDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		if !doc.IsAvailable {
			return infra.WrapStoreErr(infra.KindConflict, "equipment already held by another booking", nil)
		}

		if err := tx.Create(bookingRef, newBookingDoc(b)); err != nil {
			return err
		}
		return tx.Update(equipRef, []firestore.Update{
			{Path: "isAvailable", Value: false},
			{Path: "currentUserId", Value: b.UserID()},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		var se infra.StoreError
		if errors.As(err, &se) {
			return "", err
		}
		return "", infra.WrapStoreErr(infra.KindStoreFailure, "create booking transaction failed", err)
	}

	return bookingRef.ID, nil
}

// CancelBooking marks the booking cancelled and releases its equipment
// as one transaction, the exact inverse of CreateBooking on the
// equipment fields.
func (s *BookingStore) CancelBooking(ctx context.Context, bookingID, equipmentID string) error {
	bookingRef := s.client.Collection(bookingsCollection).Doc(bookingID)
	equipRef := s.client.Collection(equipmentCollection).Doc(equipmentID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(bookingRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return infra.WrapStoreErr(infra.KindNotFound, "booking not found", err)
			}
			return err
		}

		if err := tx.Update(bookingRef, []firestore.Update{
			{Path: "status", Value: booking.StatusCancelled.String()},
		}); err != nil {
			return err
		}
		return tx.Update(equipRef, []firestore.Update{
			{Path: "isAvailable", Value: true},
			{Path: "currentUserId", Value: firestore.Delete},
			{Path: "lastUpdated", Value: firestore.ServerTimestamp},
		})
	})
	if err != nil {
		var se infra.StoreError
		if errors.As(err, &se) {
			return err
		}
		return infra.WrapStoreErr(infra.KindStoreFailure, "cancel booking transaction failed", err)
	}

	return nil
}

// WatchUserBookings registers a live listener scoped to the same
// filter as ListActiveByUser and delivers each mapped snapshot
// directly; listener errors end the stream without a fallback.
func (s *BookingStore) WatchUserBookings(ctx context.Context, userID string, onChange func([]*booking.Booking)) (*stream.Subscription, error) {
	wctx, cancel := context.WithCancel(ctx)
	snaps := s.activeByUserQuery(userID).Snapshots(wctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer snaps.Stop()
		for {
			qsnap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					slog.Error("booking listener stopped", "user_id", userID, "error", err.Error())
				}
				return
			}

			bookings, err := collectBookings(qsnap.Documents)
			if err != nil {
				slog.Error("booking snapshot decode failed", "user_id", userID, "error", err.Error())
				continue
			}
			onChange(bookings)
		}
	}()

	return stream.NewSubscription(cancel, done), nil
}
