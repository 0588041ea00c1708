package firestore

import (
	"context"
	"log/slog"
	"time"

	"gymbook/internal/domain/equipment"
	"gymbook/internal/infra"
	"gymbook/internal/pkg/stream"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type equipmentDoc struct {
	Name          string    `firestore:"name"`
	Category      string    `firestore:"category"`
	IsAvailable   bool      `firestore:"isAvailable"`
	CurrentUserID *string   `firestore:"currentUserId"`
	LastUpdated   time.Time `firestore:"lastUpdated"`
}

func (d equipmentDoc) toDomain(id string) equipment.Equipment {
	return equipment.Equipment{
		ID:            id,
		Name:          d.Name,
		Category:      d.Category,
		IsAvailable:   d.IsAvailable,
		CurrentUserID: d.CurrentUserID,
		LastUpdated:   d.LastUpdated,
	}
}

type EquipmentStore struct {
	client *firestore.Client
}

func NewEquipmentStore(client *firestore.Client) *EquipmentStore {
	return &EquipmentStore{client: client}
}

func (s *EquipmentStore) ListEquipment(ctx context.Context) ([]equipment.Equipment, error) {
	return collectEquipment(s.client.Collection(equipmentCollection).Documents(ctx))
}

func (s *EquipmentStore) ListAvailable(ctx context.Context, category string) ([]equipment.Equipment, error) {
	q := s.client.Collection(equipmentCollection).Where("isAvailable", "==", true)
	if category != "" {
		q = q.Where("category", "==", category)
	}
	return collectEquipment(q.Documents(ctx))
}

func collectEquipment(iter *firestore.DocumentIterator) ([]equipment.Equipment, error) {
	defer iter.Stop()

	items := make([]equipment.Equipment, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to iterate equipment", err)
		}

		var doc equipmentDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to decode equipment document", err)
		}
		items = append(items, doc.toDomain(snap.Ref.ID))
	}
	return items, nil
}

// WatchEquipment registers a live listener over the whole equipment
// collection. Every snapshot, including the initial one, signals
// onChange; consumers re-read and re-aggregate. A listener failure
// other than cancellation is logged and ends the stream.
func (s *EquipmentStore) WatchEquipment(ctx context.Context, onChange func()) (*stream.Subscription, error) {
	wctx, cancel := context.WithCancel(ctx)
	snaps := s.client.Collection(equipmentCollection).Snapshots(wctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer snaps.Stop()
		for {
			_, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					slog.Error("equipment listener stopped", "error", err.Error())
				}
				return
			}
			onChange()
		}
	}()

	return stream.NewSubscription(cancel, done), nil
}
