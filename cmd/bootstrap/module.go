package bootstrap

import (
	"gymbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	IdentityModule,
	EventsModule,
	JWTModule,
	components.StoreAdapterModule,
	components.UseCaseModule,
	components.SessionModule,
	components.HandlerModule,
)
