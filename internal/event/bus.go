package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/railzwaylabs/vaultgate/internal/vault/domain"
)

// Observer receives one dispatched event. Observers run synchronously in
// registration order; they must not fail the dispatching operation.
type Observer interface {
	Notify(ctx context.Context, event string, payload map[string]any)
}

// ObserverFunc adapts a function to the Observer contract.
type ObserverFunc func(ctx context.Context, event string, payload map[string]any)

func (f ObserverFunc) Notify(ctx context.Context, event string, payload map[string]any) {
	f(ctx, event, payload)
}

// Bus fans an event out to an explicit, ordered observer chain. There is no
// process-wide registry: every observer is injected at construction.
type Bus struct {
	observers []Observer
}

var _ domain.EventSink = (*Bus)(nil)

func NewBus(observers ...Observer) *Bus {
	return &Bus{observers: observers}
}

func (b *Bus) Dispatch(ctx context.Context, event string, payload map[string]any) {
	for _, o := range b.observers {
		o.Notify(ctx, event, payload)
	}
}

// LoggingObserver records dispatched events at debug level.
type LoggingObserver struct {
	log *zap.Logger
}

func NewLoggingObserver(log *zap.Logger) *LoggingObserver {
	return &LoggingObserver{log: log.Named("event")}
}

func (o *LoggingObserver) Notify(_ context.Context, event string, payload map[string]any) {
	o.log.Debug("event dispatched",
		zap.String("event", event),
		zap.Int("payload_keys", len(payload)))
}
