package bootstrap

import (
	"go.uber.org/fx"

	"gymbook/internal/domain/identity"
	"gymbook/internal/infra/identitytoolkit"
	"gymbook/internal/pkg/config"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			NewIdentityProvider,
			fx.As(new(identity.Provider)),
		),
	),
)

func NewIdentityProvider(cfg config.Config) *identitytoolkit.Client {
	return identitytoolkit.NewClient(cfg.Identity)
}
