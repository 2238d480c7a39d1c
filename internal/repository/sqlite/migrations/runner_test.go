package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/msomdec/little-lemon/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first migration run: %v", err)
	}

	// Both tables exist.
	_, err := db.ExecContext(ctx,
		"INSERT INTO menu_items (id, title, description, price, image, category) VALUES (?, ?, ?, ?, ?, ?)",
		1, "Greek Salad", "Crispy lettuce", "10", "https://example.com/greek.jpg", "starters",
	)
	if err != nil {
		t.Fatalf("insert into menu_items: %v", err)
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO preferences (namespace, key, value) VALUES (?, ?, ?)",
		"little_lemon", "email", "a@x.com",
	)
	if err != nil {
		t.Fatalf("insert into preferences: %v", err)
	}
}

func TestRunMigrationsIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		t.Fatalf("second run (idempotent): %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}

func TestRunFS_OrderAndFailure(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"002_seed.sql":  {Data: []byte("INSERT INTO things (name) VALUES ('a');")},
		"001_table.sql": {Data: []byte("CREATE TABLE things (name TEXT NOT NULL);")},
		"README.md":     {Data: []byte("not a migration")},
	}
	if err := migrations.RunFS(ctx, db, fsys); err != nil {
		t.Fatalf("RunFS: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM things").Scan(&count); err != nil {
		t.Fatalf("count things: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}

	broken := fstest.MapFS{
		"003_broken.sql": {Data: []byte("CREATE TABLE nope (")},
	}
	if err := migrations.RunFS(ctx, db, broken); err == nil {
		t.Fatal("expected error for broken migration")
	}

	var recorded int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE filename = '003_broken.sql'").Scan(&recorded)
	if err != nil {
		t.Fatalf("count broken: %v", err)
	}
	if recorded != 0 {
		t.Fatal("failed migration must not be recorded")
	}
}
