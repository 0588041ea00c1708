package bootstrap

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/fx"

	"gymbook/internal/infra/firestore"
	"gymbook/internal/pkg/config"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStoreClient,
	),
)

func NewStoreClient(lc fx.Lifecycle, cfg config.Config) (*fs.Client, error) {
	client, cleanup, err := firestore.Connect(context.Background(), cfg.Store)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
