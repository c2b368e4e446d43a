// Package events defines the account lifecycle events published after a
// successful commit.
package events

import (
	"time"

	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// EventType represents the type of an event in the system.
type EventType string

const (
	EventTypeAccountCreated EventType = "account.created"
	EventTypeAccountUpdated EventType = "account.updated"
	EventTypeAccountDeleted EventType = "account.deleted"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is implemented by every event carried on the bus.
type Event interface {
	Type() string
}

// AccountEvent holds the fields shared by account lifecycle events.
type AccountEvent struct {
	ID         string    `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	AccountID  uuid.UUID `json:"account_id"`
	Kind       string    `json:"kind"`
	GroupName  string    `json:"group_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventID returns the unique id assigned when the event was built.
func (e AccountEvent) EventID() string { return e.ID }

func newAccountEvent(userID uuid.UUID, a *account.Account) AccountEvent {
	return AccountEvent{
		ID:         ulid.Make().String(),
		UserID:     userID,
		AccountID:  a.ID,
		Kind:       string(a.Kind()),
		GroupName:  a.GroupName,
		OccurredAt: time.Now().UTC(),
	}
}

// AccountCreated is emitted once a new account and its extension are committed.
type AccountCreated struct {
	AccountEvent
	Version int64 `json:"version"`
}

func (*AccountCreated) Type() string { return EventTypeAccountCreated.String() }

// NewAccountCreated builds an AccountCreated event for a.
func NewAccountCreated(userID uuid.UUID, a *account.Account) *AccountCreated {
	return &AccountCreated{AccountEvent: newAccountEvent(userID, a), Version: a.Version}
}

// AccountUpdated is emitted when an update changed the stored state.
type AccountUpdated struct {
	AccountEvent
	Version int64 `json:"version"`
}

func (*AccountUpdated) Type() string { return EventTypeAccountUpdated.String() }

// NewAccountUpdated builds an AccountUpdated event for a.
func NewAccountUpdated(userID uuid.UUID, a *account.Account) *AccountUpdated {
	return &AccountUpdated{AccountEvent: newAccountEvent(userID, a), Version: a.Version}
}

// AccountDeleted is emitted after an account was removed.
type AccountDeleted struct {
	AccountEvent
}

func (*AccountDeleted) Type() string { return EventTypeAccountDeleted.String() }

// NewAccountDeleted builds an AccountDeleted event for a.
func NewAccountDeleted(userID uuid.UUID, a *account.Account) *AccountDeleted {
	return &AccountDeleted{AccountEvent: newAccountEvent(userID, a)}
}

// EventTypes maps each event type to a constructor used when decoding
// events received from a broker.
var EventTypes = map[EventType]func() Event{
	EventTypeAccountCreated: func() Event { return &AccountCreated{} },
	EventTypeAccountUpdated: func() Event { return &AccountUpdated{} },
	EventTypeAccountDeleted: func() Event { return &AccountDeleted{} },
}
