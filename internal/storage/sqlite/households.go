package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roomiesplit/roomiesplit/internal/models"
	"github.com/roomiesplit/roomiesplit/internal/storage"
)

// CreateHousehold persists a new household and its roommate list.
func (s *SQLiteStore) CreateHousehold(ctx context.Context, household *models.Household) error {
	if household.ID == "" {
		household.ID = uuid.New().String()
	}
	if household.CreatedAt == 0 {
		household.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO households (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)",
		household.ID, household.OwnerID, household.Name, household.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert household: %w", err)
	}

	if err := insertRoommates(ctx, tx, household.ID, household.Roommates); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetHouseholdByOwner retrieves the single household owned by the given user.
func (s *SQLiteStore) GetHouseholdByOwner(ctx context.Context, ownerID string) (*models.Household, error) {
	household := &models.Household{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM households WHERE owner_id = ? LIMIT 1",
		ownerID,
	).Scan(&household.ID, &household.OwnerID, &household.Name, &household.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // No household created yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	if err := s.loadRoommates(ctx, household); err != nil {
		return nil, err
	}

	return household, nil
}

// ReplaceRoommates replaces the household's entire roommate list,
// gated on ownership.
func (s *SQLiteStore) ReplaceRoommates(ctx context.Context, householdID, ownerID string, roommates []models.Roommate) (*models.Household, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The ownership check and the existence check are a single query so the
	// two failure cases stay indistinguishable.
	household := &models.Household{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM households WHERE id = ? AND owner_id = ?",
		householdID, ownerID,
	).Scan(&household.ID, &household.OwnerID, &household.Name, &household.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM roommates WHERE household_id = ?", householdID); err != nil {
		return nil, fmt.Errorf("failed to clear roommates: %w", err)
	}

	if err := insertRoommates(ctx, tx, householdID, roommates); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	household.Roommates = roommates
	if household.Roommates == nil {
		household.Roommates = []models.Roommate{}
	}
	return household, nil
}

// DeleteHousehold removes a household, gated on ownership. Roommates cascade.
func (s *SQLiteStore) DeleteHousehold(ctx context.Context, householdID, ownerID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM households WHERE id = ? AND owner_id = ?",
		householdID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete household: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRoommates(ctx context.Context, tx execer, householdID string, roommates []models.Roommate) error {
	for i, rm := range roommates {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO roommates (household_id, position, name, email) VALUES (?, ?, ?, ?)",
			householdID, i, rm.Name, rm.Email,
		)
		if err != nil {
			return fmt.Errorf("failed to insert roommate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadRoommates(ctx context.Context, household *models.Household) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, email FROM roommates WHERE household_id = ? ORDER BY position",
		household.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get roommates: %w", err)
	}
	defer rows.Close()

	household.Roommates = []models.Roommate{}
	for rows.Next() {
		var rm models.Roommate
		if err := rows.Scan(&rm.Name, &rm.Email); err != nil {
			return fmt.Errorf("failed to scan roommate: %w", err)
		}
		household.Roommates = append(household.Roommates, rm)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate roommates: %w", err)
	}

	return nil
}
