package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/little-lemon/internal/domain"
	"github.com/msomdec/little-lemon/internal/repository/sqlite"
)

// Verify the SQLite types implement the domain ports at compile time.
var (
	_ domain.Database       = (*sqlite.DB)(nil)
	_ domain.MenuRepository = (*sqlite.MenuRepository)(nil)
	_ domain.ProfileStore   = (*sqlite.ProfileStore)(nil)
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	var journal string
	if err := db.SqlDB.QueryRow("PRAGMA journal_mode").Scan(&journal); err != nil {
		t.Fatalf("check journal_mode: %v", err)
	}
	if journal != "wal" {
		t.Fatalf("expected journal_mode=wal, got %q", journal)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}

func TestDurableAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "durable.db")
	ctx := context.Background()

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := db.Menu().InsertAll(ctx, []domain.MenuItem{{ID: 1, Title: "Bruschetta", Category: "starters"}}); err != nil {
		t.Fatalf("InsertAll: %v", err)
	}
	if err := db.Profiles().Save(ctx, domain.UserProfile{Registered: true, FirstName: "Ana", LastName: "Lee", Email: "a@x.com"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	db.Close()

	reopened, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	items, err := reopened.Menu().GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Bruschetta" {
		t.Fatalf("expected persisted Bruschetta, got %+v", items)
	}

	profile, err := reopened.Profiles().Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !profile.Registered || profile.FirstName != "Ana" {
		t.Fatalf("expected persisted profile, got %+v", profile)
	}
}
