//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"gymbook/internal/domain/equipment"
	"gymbook/internal/pkg/stream"
	"gymbook/internal/usecase/queries"
	"gymbook/tests/common/builder"
	queriesmock "gymbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEquipmentQueries_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates live equipment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		store.EXPECT().ListEquipment(gomock.Any()).Return([]equipment.Equipment{
			builder.NewEquipmentBuilder().WithID("t1").WithCategory("Cardio").Build(),
			builder.NewEquipmentBuilder().WithID("b1").WithCategory("Strength").InUseBy("u1").Build(),
		}, nil)

		res := q.Categories(ctx)
		assert.False(t, res.Degraded)
		require.Len(t, res.Categories, 2)
		assert.Equal(t, "Cardio", res.Categories[0].Name)
		assert.Equal(t, 1, res.Categories[0].Available)
		assert.Equal(t, 0, res.Categories[1].Available)
	})

	t.Run("store failure degrades to the fixed fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		store.EXPECT().ListEquipment(gomock.Any()).Return(nil, errors.New("store unreachable"))

		res := q.Categories(ctx)
		assert.True(t, res.Degraded)
		if diff := cmp.Diff(queries.FallbackCategories(), res.Categories); diff != "" {
			t.Errorf("fallback mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFallbackCategories(t *testing.T) {
	want := []equipment.Category{
		{ID: "1", Name: "Cardio", Available: 8, Total: 12, Color: "#4CAF50"},
		{ID: "2", Name: "Strength", Available: 15, Total: 20, Color: "#2196F3"},
		{ID: "3", Name: "Free Weights", Available: 6, Total: 10, Color: "#FF9800"},
		{ID: "4", Name: "Functional", Available: 4, Total: 6, Color: "#9C27B0"},
	}

	if diff := cmp.Diff(want, queries.FallbackCategories()); diff != "" {
		t.Errorf("FallbackCategories mismatch (-want +got):\n%s", diff)
	}
}

func TestEquipmentQueries_Available(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the category filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		items := []equipment.Equipment{builder.NewEquipmentBuilder().Build()}
		store.EXPECT().ListAvailable(gomock.Any(), "Cardio").Return(items, nil)

		assert.Equal(t, items, q.Available(ctx, "Cardio"))
	})

	t.Run("failure yields an empty list, not nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		store.EXPECT().ListAvailable(gomock.Any(), "").Return(nil, errors.New("store unreachable"))

		got := q.Available(ctx, "")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestEquipmentQueries_SubscribeToCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("every change signal re-aggregates and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		var onChange func()
		done := make(chan struct{})
		watcher.EXPECT().WatchEquipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func()) (*stream.Subscription, error) {
				onChange = fn
				return stream.NewSubscription(func() { close(done) }, done), nil
			})
		store.EXPECT().ListEquipment(gomock.Any()).Return([]equipment.Equipment{
			builder.NewEquipmentBuilder().Build(),
		}, nil).Times(2)

		var received []queries.CategoriesResult
		sub, err := q.SubscribeToCategories(ctx, func(res queries.CategoriesResult) {
			received = append(received, res)
		})
		require.NoError(t, err)
		defer sub.Close()

		onChange()
		onChange()

		require.Len(t, received, 2)
		assert.False(t, received[0].Degraded)
		assert.Equal(t, "Cardio", received[0].Categories[0].Name)
	})

	t.Run("watcher failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockEquipmentReadStore(ctrl)
		watcher := queriesmock.NewMockEquipmentWatcher(ctrl)
		q := queries.NewEquipmentQueries(store, watcher)

		watcher.EXPECT().WatchEquipment(gomock.Any(), gomock.Any()).Return(nil, errors.New("listen failed"))

		sub, err := q.SubscribeToCategories(ctx, func(queries.CategoriesResult) {})
		assert.Error(t, err)
		assert.Nil(t, sub)
	})
}
