package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of accounts. Identity is established by an external
// provider; only the fields account operations need are kept here.
type User struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	DefaultCurrencyCode string    `json:"default_currency"`
	CreatedAt           time.Time `json:"created"`
	UpdatedAt           time.Time `json:"updated"`
}
