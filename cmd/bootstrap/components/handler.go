package components

import (
	"go.uber.org/fx"

	"gymbook/internal/handler"
	"gymbook/internal/handler/api"
	"gymbook/internal/handler/middleware"
	"gymbook/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewEquipmentHandler,
		api.NewBookingHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
