package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/msomdec/little-lemon/internal/domain"
)

// ProfileStore implements domain.ProfileStore on a key-value table scoped
// by namespace.
type ProfileStore struct {
	db        *sql.DB
	namespace string
}

// NewProfileStore creates a SQLite-backed ProfileStore for the namespace.
func NewProfileStore(db *DB, namespace string) *ProfileStore {
	return &ProfileStore{db: db.SqlDB, namespace: namespace}
}

// Save writes all four profile keys in a single transaction.
func (s *ProfileStore) Save(ctx context.Context, profile domain.UserProfile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	values := []struct{ key, value string }{
		{domain.KeyRegistered, strconv.FormatBool(profile.Registered)},
		{domain.KeyFirstName, profile.FirstName},
		{domain.KeyLastName, profile.LastName},
		{domain.KeyEmail, profile.Email},
	}
	for _, kv := range values {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO preferences (namespace, key, value) VALUES (?, ?, ?)
			 ON CONFLICT (namespace, key) DO UPDATE SET value = excluded.value`,
			s.namespace, kv.key, kv.value,
		)
		if err != nil {
			return fmt.Errorf("write preference %s: %w", kv.key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}

// Load reads the profile. Missing keys fall back to their zero values.
func (s *ProfileStore) Load(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile

	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value FROM preferences WHERE namespace = ?", s.namespace)
	if err != nil {
		return profile, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return profile, fmt.Errorf("scan preference: %w", err)
		}
		switch key {
		case domain.KeyRegistered:
			profile.Registered, _ = strconv.ParseBool(value)
		case domain.KeyFirstName:
			profile.FirstName = value
		case domain.KeyLastName:
			profile.LastName = value
		case domain.KeyEmail:
			profile.Email = value
		}
	}
	return profile, rows.Err()
}

// Clear removes every key in the namespace in one statement.
func (s *ProfileStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE namespace = ?", s.namespace); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}
