// Package firestore adapts the external document store holding the
// equipment and bookings collections: one-shot filtered queries,
// transactional paired writes for the booking lifecycle, and live
// snapshot listeners behind closable subscription handles.
package firestore

import (
	"context"
	"fmt"

	"gymbook/internal/pkg/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	equipmentCollection = "equipment"
	bookingsCollection  = "bookings"
)

// Connect opens the store client. The emulator host, when set in the
// environment, is honored by the client library itself.
func Connect(ctx context.Context, cfg config.StoreConfig) (*firestore.Client, func(), error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store client: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}
