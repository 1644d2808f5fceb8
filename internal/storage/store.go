// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/roomiesplit/roomiesplit/internal/models"
)

// ErrNotFound is returned by mutating operations when the target record does
// not exist — or, for ownership-gated operations, when it is not owned by
// the caller. The two cases are deliberately indistinguishable so that
// non-owners cannot probe for a record's existence.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for RoomieSplit storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
type Store interface {
	// CreateUser persists a new user. The user's email must already be
	// lowercased (models.NewUser does this).
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, case-insensitively.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// SetDarkMode updates the user's dark-mode preference and returns the
	// updated user. Returns ErrNotFound if the user does not exist.
	SetDarkMode(ctx context.Context, userID string, enabled bool) (*models.User, error)

	// CreateHousehold persists a new household with its roommate list.
	// The household.ID and CreatedAt fields are populated by the store.
	CreateHousehold(ctx context.Context, household *models.Household) error

	// GetHouseholdByOwner retrieves the single household owned by the given
	// user. Returns (nil, nil) when the owner has no household yet.
	GetHouseholdByOwner(ctx context.Context, ownerID string) (*models.Household, error)

	// ReplaceRoommates replaces the household's entire roommate list.
	// Only succeeds when the household exists AND is owned by ownerID;
	// otherwise returns ErrNotFound.
	ReplaceRoommates(ctx context.Context, householdID, ownerID string, roommates []models.Roommate) (*models.Household, error)

	// DeleteHousehold removes a household and its roommates. Same
	// ownership-gated ErrNotFound semantics as ReplaceRoommates.
	DeleteHousehold(ctx context.Context, householdID, ownerID string) error

	// CreatePurchase persists a new purchase with its assignee list.
	// The purchase.ID and CreatedAt fields are populated by the store.
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error

	// ListPurchases returns every purchase in the system, oldest first.
	// The listing is not scoped to a caller or household.
	ListPurchases(ctx context.Context) ([]models.Purchase, error)

	// GetPurchase retrieves a purchase by ID.
	// Returns (nil, nil) when no such purchase exists.
	GetPurchase(ctx context.Context, id string) (*models.Purchase, error)

	// UpdatePurchase replaces the stored purchase with the given one,
	// matched by purchase.ID. Returns ErrNotFound if it does not exist.
	UpdatePurchase(ctx context.Context, purchase *models.Purchase) error

	// DeletePurchase removes a purchase and its assignees.
	// Returns ErrNotFound if it does not exist.
	DeletePurchase(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
