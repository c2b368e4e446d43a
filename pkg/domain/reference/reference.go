// Package reference holds read-only reference data consumed by account
// operations: account groups and supported currencies.
package reference

import "github.com/google/uuid"

// AccountGroup is a named category of accounts. Its name selects the account
// variant.
type AccountGroup struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	IsSystemDefault bool       `json:"is_system_default"`
	DisplayOrder    int        `json:"display_order"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty"`
}

// Currency is a supported currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
