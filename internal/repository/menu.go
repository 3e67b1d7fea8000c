// Package repository provides persistence implementations for the menu
// catalog and admin accounts using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/oshaad/backoffice/internal/models"
)

// ErrNotFound is returned when a menu item with the requested ID does not exist.
var ErrNotFound = sql.ErrNoRows

// PostgresMenuRepository implements menu catalog operations against a PostgreSQL database.
type PostgresMenuRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresMenuRepository creates a new PostgresMenuRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{DB: db}
}

const menuColumns = `id, name, description, price::float8, category, image, ingredients, vegetarian, vegan, gluten_free, is_available`

// List fetches the full catalog, including unavailable items, ordered by
// category and name. The admin view needs to see everything.
func (r *PostgresMenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+` FROM menu_items ORDER BY category, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("list menu items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// GetByID fetches a single menu item. Returns ErrNotFound if the ID is unknown.
func (r *PostgresMenuRepository) GetByID(ctx context.Context, id string) (models.MenuItem, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+menuColumns+` FROM menu_items WHERE id = $1
	`, id)

	item, err := scanMenuItem(row)
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Insert stores a new menu item. The caller assigns the ID.
func (r *PostgresMenuRepository) Insert(ctx context.Context, item models.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_items (id, name, description, price, category, image, ingredients, vegetarian, vegan, gluten_free, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image,
		pq.Array(item.Ingredients), item.Dietary.Vegetarian, item.Dietary.Vegan,
		item.Dietary.GlutenFree, item.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// Update replaces every editable field of an existing menu item.
// Returns ErrNotFound if the ID is unknown.
func (r *PostgresMenuRepository) Update(ctx context.Context, item models.MenuItem) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		   SET name = $2, description = $3, price = $4, category = $5, image = $6,
		       ingredients = $7, vegetarian = $8, vegan = $9, gluten_free = $10,
		       is_available = $11, updated_at = now()
		 WHERE id = $1
	`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Image,
		pq.Array(item.Ingredients), item.Dietary.Vegetarian, item.Dietary.Vegan,
		item.Dietary.GlutenFree, item.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a menu item by ID. Returns ErrNotFound if the ID is unknown.
func (r *PostgresMenuRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Image, pq.Array(&item.Ingredients), &item.Dietary.Vegetarian,
		&item.Dietary.Vegan, &item.Dietary.GlutenFree, &item.IsAvailable,
	)
	return item, err
}
