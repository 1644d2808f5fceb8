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

// CreatePurchase persists a new purchase and its assignee list.
func (s *SQLiteStore) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if purchase.CreatedAt == 0 {
		purchase.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO purchases (id, date, name, cost, category, person, household_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		purchase.ID, purchase.Date, purchase.Name, purchase.Cost,
		purchase.Category, purchase.Person, nullString(purchase.HouseholdID), purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	if err := insertAssignees(ctx, tx, purchase.ID, purchase.Assignees); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListPurchases returns every purchase in the system, oldest first.
func (s *SQLiteStore) ListPurchases(ctx context.Context) ([]models.Purchase, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, name, cost, category, person, household_id, created_at FROM purchases ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}

	for i := range purchases {
		if err := s.loadAssignees(ctx, &purchases[i]); err != nil {
			return nil, err
		}
	}

	return purchases, nil
}

// GetPurchase retrieves a purchase by ID, including its assignees.
func (s *SQLiteStore) GetPurchase(ctx context.Context, id string) (*models.Purchase, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, date, name, cost, category, person, household_id, created_at FROM purchases WHERE id = ?",
		id,
	)

	purchase, err := scanPurchase(row)
	if err == sql.ErrNoRows {
		return nil, nil // Purchase not found
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadAssignees(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// UpdatePurchase replaces the stored purchase, matched by ID.
func (s *SQLiteStore) UpdatePurchase(ctx context.Context, purchase *models.Purchase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE purchases SET date = ?, name = ?, cost = ?, category = ?, person = ?, household_id = ? WHERE id = ?",
		purchase.Date, purchase.Name, purchase.Cost, purchase.Category,
		purchase.Person, nullString(purchase.HouseholdID), purchase.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM purchase_assignees WHERE purchase_id = ?", purchase.ID); err != nil {
		return fmt.Errorf("failed to clear assignees: %w", err)
	}

	if err := insertAssignees(ctx, tx, purchase.ID, purchase.Assignees); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeletePurchase removes a purchase by ID. Assignees cascade.
func (s *SQLiteStore) DeletePurchase(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM purchases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchase(row rowScanner) (*models.Purchase, error) {
	purchase := &models.Purchase{}
	var householdID sql.NullString
	err := row.Scan(
		&purchase.ID,
		&purchase.Date,
		&purchase.Name,
		&purchase.Cost,
		&purchase.Category,
		&purchase.Person,
		&householdID,
		&purchase.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchase: %w", err)
	}

	purchase.HouseholdID = householdID.String
	return purchase, nil
}

func insertAssignees(ctx context.Context, tx execer, purchaseID string, assignees []string) error {
	for i, assignee := range assignees {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO purchase_assignees (purchase_id, position, assignee) VALUES (?, ?, ?)",
			purchaseID, i, assignee,
		)
		if err != nil {
			return fmt.Errorf("failed to insert assignee: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadAssignees(ctx context.Context, purchase *models.Purchase) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT assignee FROM purchase_assignees WHERE purchase_id = ? ORDER BY position",
		purchase.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get assignees: %w", err)
	}
	defer rows.Close()

	purchase.Assignees = []string{}
	for rows.Next() {
		var assignee string
		if err := rows.Scan(&assignee); err != nil {
			return fmt.Errorf("failed to scan assignee: %w", err)
		}
		purchase.Assignees = append(purchase.Assignees, assignee)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate assignees: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
