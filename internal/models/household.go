package models

// Roommate is a participant in a household. Roommates are labels, not
// accounts: nothing links a roommate to a User record, and no uniqueness is
// enforced across a household's list.
type Roommate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Household represents an owner-scoped grouping of roommates used to
// organize shared expenses. Only the owning user may mutate or delete it.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string `json:"id"`

	// OwnerID is the user who created the household.
	OwnerID string `json:"ownerId"`

	// Name is the display name of the household (required, non-empty).
	Name string `json:"householdName"`

	// Roommates is the ordered list of participants. The list may be
	// emptied entirely without deleting the household.
	Roommates []Roommate `json:"roommates"`

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64 `json:"createdAt"`
}
