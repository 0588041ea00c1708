package queries

import (
	"context"
	"log/slog"

	"gymbook/internal/domain/equipment"
	"gymbook/internal/pkg/stream"
)

// CategoriesResult carries the aggregated dashboard view. Degraded is
// set when a store failure replaced live data with the fixed fallback,
// so callers can tell placeholder content from the real thing.
type CategoriesResult struct {
	Categories []equipment.Category `json:"categories"`
	Degraded   bool                 `json:"degraded"`
}

type EquipmentReadStore interface {
	ListEquipment(ctx context.Context) ([]equipment.Equipment, error)
	ListAvailable(ctx context.Context, category string) ([]equipment.Equipment, error)
}

// EquipmentWatcher signals on every remote change to the equipment
// collection. The callback carries no payload; consumers re-read.
type EquipmentWatcher interface {
	WatchEquipment(ctx context.Context, onChange func()) (*stream.Subscription, error)
}

type EquipmentQueries interface {
	Categories(ctx context.Context) CategoriesResult
	Available(ctx context.Context, category string) []equipment.Equipment
	SubscribeToCategories(ctx context.Context, fn func(CategoriesResult)) (*stream.Subscription, error)
}

type equipmentQueriesImpl struct {
	store   EquipmentReadStore
	watcher EquipmentWatcher
}

func NewEquipmentQueries(store EquipmentReadStore, watcher EquipmentWatcher) EquipmentQueries {
	return &equipmentQueriesImpl{store: store, watcher: watcher}
}

// Categories fetches all equipment and aggregates per-category
// availability. Read failures degrade to the fixed fallback instead of
// propagating; the failure is logged and the result flagged.
func (q *equipmentQueriesImpl) Categories(ctx context.Context) CategoriesResult {
	items, err := q.store.ListEquipment(ctx)
	if err != nil {
		slog.Warn("equipment fetch failed, serving fallback categories", "error", err.Error())
		return CategoriesResult{Categories: FallbackCategories(), Degraded: true}
	}
	return CategoriesResult{Categories: equipment.BuildCategories(items)}
}

// Available lists equipment with isAvailable set, optionally scoped to
// one category. Failures are logged and return an empty list.
func (q *equipmentQueriesImpl) Available(ctx context.Context, category string) []equipment.Equipment {
	items, err := q.store.ListAvailable(ctx, category)
	if err != nil {
		slog.Warn("available equipment fetch failed", "category", category, "error", err.Error())
		return []equipment.Equipment{}
	}
	return items
}

// SubscribeToCategories re-runs the full aggregation on every remote
// equipment change and hands the fresh result to fn. There is no
// debouncing: a burst of remote writes means a burst of callbacks.
func (q *equipmentQueriesImpl) SubscribeToCategories(ctx context.Context, fn func(CategoriesResult)) (*stream.Subscription, error) {
	return q.watcher.WatchEquipment(ctx, func() {
		fn(q.Categories(ctx))
	})
}

// FallbackCategories is the fixed degrade-to-fallback payload served
// when the store cannot be read.
func FallbackCategories() []equipment.Category {
	return []equipment.Category{
		{ID: "1", Name: "Cardio", Available: 8, Total: 12, Color: "#4CAF50"},
		{ID: "2", Name: "Strength", Available: 15, Total: 20, Color: "#2196F3"},
		{ID: "3", Name: "Free Weights", Available: 6, Total: 10, Color: "#FF9800"},
		{ID: "4", Name: "Functional", Available: 4, Total: 6, Color: "#9C27B0"},
	}
}
