//go:build unit

package stream_test

import (
	"testing"

	"gymbook/internal/pkg/stream"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionClose(t *testing.T) {
	t.Run("close runs the stop function exactly once", func(t *testing.T) {
		var stops int
		done := make(chan struct{})
		sub := stream.NewSubscription(func() {
			stops++
			close(done)
		}, done)

		sub.Close()
		sub.Close()
		sub.Close()

		assert.Equal(t, 1, stops)
	})

	t.Run("done is observable after the producer exits", func(t *testing.T) {
		done := make(chan struct{})
		sub := stream.NewSubscription(func() { close(done) }, done)

		sub.Close()

		select {
		case <-sub.Done():
		default:
			t.Fatal("done channel should be closed")
		}
	})

	t.Run("close from inside a delivery callback does not deadlock", func(t *testing.T) {
		done := make(chan struct{})
		var sub *stream.Subscription
		sub = stream.NewSubscription(func() {}, done)

		// simulates a consumer tearing down its own subscription from
		// the delivery path
		deliver := func() {
			sub.Close()
		}
		deliver()
		close(done)

		<-sub.Done()
	})
}
