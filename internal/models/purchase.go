package models

// Purchase represents a single expense record: who paid, how much, and the
// people the cost is split across.
type Purchase struct {
	// ID is the unique identifier for the purchase (UUID format).
	ID string `json:"id"`

	// Date is the calendar date of the purchase in string form
	// (e.g. "2024-01-01"). Stored as given, not parsed.
	Date string `json:"date"`

	// Name describes the purchase (e.g. "Groceries").
	Name string `json:"name"`

	// Cost is the non-negative purchase amount. The stored value is never
	// rounded; rounding happens only when the split is computed for display.
	Cost float64 `json:"cost"`

	// Category is free text (e.g. "Food").
	Category string `json:"category"`

	// Person is who paid, free text.
	Person string `json:"person"`

	// Assignees are the people the cost is split across. Free text (emails
	// or names), not validated against any household roster.
	Assignees []string `json:"assignees"`

	// HouseholdID optionally links the purchase to a household. Not enforced
	// anywhere: the primary listing path is global.
	HouseholdID string `json:"householdId,omitempty"`

	// SplitAmount is the computed per-assignee share, rounded to 2 decimals.
	// Populated for presentation only; absent when Assignees is empty.
	SplitAmount *float64 `json:"splitAmount,omitempty"`

	// CreatedAt is the Unix timestamp when the purchase was recorded.
	CreatedAt int64 `json:"createdAt"`
}
