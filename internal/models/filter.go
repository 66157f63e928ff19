package models

import "time"

// DefaultSearchLimit caps search results when the caller does not ask for a limit.
const DefaultSearchLimit = 100

// SearchFilter contains the filtering options for transaction searches.
// Zero/nil fields are not applied. Search supersedes Payee when both are set.
type SearchFilter struct {
	Search      string
	Type        string
	ExpenseType string
	NeedsWants  string
	Mode        string
	Payee       string
	StartDate   *time.Time
	EndDate     *time.Time
	MinAmount   *float64
	MaxAmount   *float64
	Limit       int
}
