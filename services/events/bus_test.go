package events

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus(logging.NewTestLogger())

	var first, second int32
	bus.Subscribe("payment.created", func(_ context.Context, e Event) {
		require.Equal(t, "pay-1", e.Payload.(string))
		atomic.AddInt32(&first, 1)
	})
	bus.Subscribe("payment.created", func(_ context.Context, _ Event) {
		atomic.AddInt32(&second, 1)
	})
	bus.Subscribe("payment.errored", func(_ context.Context, _ Event) {
		t.Error("wrong event name delivered")
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Name: "payment.created", Payload: "pay-1"}))
	bus.Drain()

	require.EqualValues(t, 1, atomic.LoadInt32(&first))
	require.EqualValues(t, 1, atomic.LoadInt32(&second))
}

func TestBusSurvivesPanickingSubscriber(t *testing.T) {
	bus := NewBus(logging.NewTestLogger())

	var delivered int32
	bus.Subscribe("boom", func(_ context.Context, _ Event) {
		panic("subscriber bug")
	})
	bus.Subscribe("boom", func(_ context.Context, _ Event) {
		atomic.AddInt32(&delivered, 1)
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Name: "boom"}))
	bus.Drain()

	require.EqualValues(t, 1, atomic.LoadInt32(&delivered))
}

func TestBusStampsPublishTime(t *testing.T) {
	bus := NewBus(logging.NewTestLogger())

	done := make(chan Event, 1)
	bus.Subscribe("stamped", func(_ context.Context, e Event) {
		done <- e
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Name: "stamped"}))
	bus.Drain()

	e := <-done
	require.False(t, e.At.IsZero())
}
