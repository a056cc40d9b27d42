package event_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/event"
	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

func TestBusDispatchesInRegistrationOrder(t *testing.T) {
	var order []string
	observer := func(name string) event.Observer {
		return event.ObserverFunc(func(context.Context, string, map[string]any) {
			order = append(order, name)
		})
	}

	bus := event.NewBus(observer("first"), observer("second"), observer("third"))
	bus.Dispatch(context.Background(), domain.EventAssignData, nil)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBusWithoutObservers(t *testing.T) {
	assert.NotPanics(t, func() {
		event.NewBus().Dispatch(context.Background(), domain.EventAssignData, nil)
	})
}

func TestRedisObserverPublishesWireEvent(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	sub := client.Subscribe(ctx, "vaultgate.events")
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	observer := event.NewRedisObserver(zap.NewNop(), client, "vaultgate.events")
	observer.Notify(ctx, domain.EventAssignData, map[string]any{
		domain.PayloadData: domain.AssignedData{"cc_last4": "4242"},
	})

	select {
	case msg := <-sub.Channel():
		var got struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, domain.EventAssignData, got.Event)
		assert.Equal(t, "4242", got.Data["cc_last4"])
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestRedisObserverNilClientIsNoop(t *testing.T) {
	observer := event.NewRedisObserver(zap.NewNop(), nil, "vaultgate.events")

	assert.NotPanics(t, func() {
		observer.Notify(context.Background(), domain.EventAssignData, nil)
	})
}
