// Package app wires the services and event subscribers of the account
// service from its infrastructure dependencies.
package app

import (
	"time"

	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/handler"
	"github.com/amirasaad/finsible/pkg/handler/audit"
)

// processedEventTTL bounds how long a delivered event id is remembered.
const processedEventTTL = 24 * time.Hour

// setupEventBus registers the account event subscribers.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	logger := a.Deps.Logger

	tracker := handler.NewIdempotencyTracker(a.Deps.Cache, "audit", processedEventTTL)
	auditHandler := handler.WithIdempotency(
		audit.HandleAccountEvent(logger.With("subscriber", "audit")),
		tracker,
		handler.EventIDKey,
		"HandleAccountEvent",
		logger,
	)
	for _, et := range []events.EventType{
		events.EventTypeAccountCreated,
		events.EventTypeAccountUpdated,
		events.EventTypeAccountDeleted,
	} {
		bus.Register(et, auditHandler)
	}
}
