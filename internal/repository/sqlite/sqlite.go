package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/msomdec/little-lemon/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB is the process-wide SQLite handle. It is opened once at startup and
// passed by reference to every repository that needs it.
type DB struct {
	SqlDB *sql.DB

	menu     *MenuRepository
	profiles *ProfileStore
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps readers off the writer's back.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single connection serializes every writer to both stores.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.menu = NewMenuRepository(db)
	db.profiles = NewProfileStore(db, domain.ProfileNamespace)
	return db, nil
}

// Migrate applies any pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Menu returns the menu cache repository.
func (db *DB) Menu() *MenuRepository { return db.menu }

// Profiles returns the profile store for the default namespace.
func (db *DB) Profiles() *ProfileStore { return db.profiles }
