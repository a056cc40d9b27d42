package event

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// RedisObserver publishes dispatched events to a redis channel so external
// consumers can react to vault data binding. Publishing is fire-and-forget:
// failures are logged and never surface to the dispatching operation.
type RedisObserver struct {
	log     *zap.Logger
	client  *redis.Client
	channel string
}

func NewRedisObserver(log *zap.Logger, client *redis.Client, channel string) *RedisObserver {
	return &RedisObserver{
		log:     log.Named("event.redis"),
		client:  client,
		channel: channel,
	}
}

type wireEvent struct {
	Event      string         `json:"event"`
	MethodCode string         `json:"method_code,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

func (o *RedisObserver) Notify(ctx context.Context, event string, payload map[string]any) {
	if o.client == nil {
		return
	}

	// The payload carries live objects (the facade, the payment info); only
	// the event name, the method code and the assigned data go on the wire.
	msg := wireEvent{Event: event}
	if m, ok := payload[domain.PayloadMethod].(domain.Method); ok {
		msg.MethodCode = m.Code()
	}
	if d, ok := payload[domain.PayloadData].(domain.AssignedData); ok {
		msg.Data = d
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		o.log.Warn("event not serializable", zap.String("event", event), zap.Error(err))
		return
	}

	if err := o.client.Publish(ctx, o.channel, raw).Err(); err != nil {
		o.log.Warn("event publish failed", zap.String("event", event), zap.Error(err))
	}
}
