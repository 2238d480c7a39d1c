package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/little-lemon/internal/domain"
)

// MenuRepository implements domain.MenuRepository using SQLite.
type MenuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new SQLite-backed MenuRepository.
func NewMenuRepository(db *DB) *MenuRepository {
	return &MenuRepository{db: db.SqlDB}
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, price, image, category
		 FROM menu_items ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Price, &m.Image, &m.Category); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// InsertAll writes every item in one transaction. If any row violates the
// unique id constraint the transaction is rolled back and nothing is stored.
func (r *MenuRepository) InsertAll(ctx context.Context, items []domain.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO menu_items (id, title, description, price, image, category)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range items {
		if _, err := stmt.ExecContext(ctx, m.ID, m.Title, m.Description, m.Price, m.Image, m.Category); err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("%w: id %d", domain.ErrDuplicateMenuItem, m.ID)
			}
			return fmt.Errorf("insert menu item %d: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit menu items: %w", err)
	}
	return nil
}
