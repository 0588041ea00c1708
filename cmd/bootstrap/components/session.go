package components

import (
	"context"

	"go.uber.org/fx"

	"gymbook/internal/session"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		session.New,
	),
	fx.Invoke(startSession),
)

// startSession ties the provider session watcher to the app lifecycle so
// the current-user cache is live for the whole run.
func startSession(lc fx.Lifecycle, sess *session.Session) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sess.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sess.Stop()
			return nil
		},
	})
}
