// Package audit records account lifecycle events in the structured log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/amirasaad/finsible/pkg/eventbus"
)

// HandleAccountEvent logs one audit line per account event. Events that are
// not account events are rejected so a misrouted subscription surfaces in the
// bus error path.
func HandleAccountEvent(logger *slog.Logger) eventbus.HandlerFunc {
	return func(ctx context.Context, e events.Event) error {
		var base events.AccountEvent
		switch ev := e.(type) {
		case *events.AccountCreated:
			base = ev.AccountEvent
		case *events.AccountUpdated:
			base = ev.AccountEvent
		case *events.AccountDeleted:
			base = ev.AccountEvent
		default:
			return fmt.Errorf("audit: unexpected event %T", e)
		}
		attrs := []any{
			"event_id", base.ID,
			"event_type", e.Type(),
			"userID", base.UserID,
			"accountID", base.AccountID,
			"kind", base.Kind,
			"group", base.GroupName,
			"occurred_at", base.OccurredAt,
		}
		switch ev := e.(type) {
		case *events.AccountCreated:
			attrs = append(attrs, "version", ev.Version)
		case *events.AccountUpdated:
			attrs = append(attrs, "version", ev.Version)
		}
		logger.InfoContext(ctx, "account audit", attrs...)
		return nil
	}
}
