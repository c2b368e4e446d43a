// Package handler holds event bus middleware shared by account event
// subscribers.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/finsible/pkg/cache"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/eventbus"
	"golang.org/x/sync/singleflight"
)

// KeyExtractor extracts an idempotency key from an event.
type KeyExtractor func(events.Event) string

// EventIDKey keys events by the unique id they were built with.
func EventIDKey(e events.Event) string {
	if ided, ok := e.(interface{ EventID() string }); ok {
		return ided.EventID()
	}
	return ""
}

// IdempotencyTracker remembers processed keys in a cache so redelivered
// events are handled once per ttl, across every instance sharing the cache.
type IdempotencyTracker struct {
	cache    cache.Cache
	prefix   string
	ttl      time.Duration
	inflight singleflight.Group
}

// NewIdempotencyTracker namespaces keys under prefix and keeps each one for ttl.
func NewIdempotencyTracker(c cache.Cache, prefix string, ttl time.Duration) *IdempotencyTracker {
	return &IdempotencyTracker{cache: c, prefix: "idempotency:" + prefix + ":", ttl: ttl}
}

func (t *IdempotencyTracker) processed(ctx context.Context, key string) (bool, error) {
	v, err := t.cache.Get(ctx, t.prefix+key)
	return v != nil, err
}

// Store marks key as processed.
func (t *IdempotencyTracker) Store(ctx context.Context, key string) error {
	return t.cache.Set(ctx, t.prefix+key, []byte{1}, t.ttl)
}

// WithIdempotency wraps h so an event whose key was already processed is
// skipped. Concurrent deliveries of one key share a single execution. A
// tracker failure never blocks delivery: the handler runs and duplicates
// stay possible.
func WithIdempotency(
	h eventbus.HandlerFunc,
	tracker *IdempotencyTracker,
	keyExtractor KeyExtractor,
	handlerName string,
	logger *slog.Logger,
) eventbus.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, e events.Event) error {
		key := keyExtractor(e)
		if key == "" {
			return h(ctx, e)
		}
		log := logger.With(
			"handler", handlerName,
			"event_type", e.Type(),
			"idempotency_key", key,
		)

		_, err, _ := tracker.inflight.Do(key, func() (any, error) {
			done, err := tracker.processed(ctx, key)
			if err != nil {
				log.Warn("idempotency lookup failed", "error", err)
			}
			if done {
				log.Info("event already processed, skipping")
				return nil, nil
			}
			if err := h(ctx, e); err != nil {
				return nil, err
			}
			if err := tracker.Store(ctx, key); err != nil {
				log.Warn("failed to record processed event", "error", err)
			}
			return nil, nil
		})
		return err
	}
}
