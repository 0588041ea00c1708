package components

import (
	"go.uber.org/fx"

	"gymbook/internal/infra/firestore"
	"gymbook/internal/usecase/commands"
	"gymbook/internal/usecase/queries"
)

var StoreAdapterModule = fx.Module("stores",
	fx.Provide(
		fx.Annotate(
			firestore.NewEquipmentStore,
			fx.As(new(queries.EquipmentReadStore)),
			fx.As(new(queries.EquipmentWatcher)),
		),
		fx.Annotate(
			firestore.NewBookingStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingWatcher)),
			fx.As(new(commands.BookingWriteStore)),
		),
	),
)
