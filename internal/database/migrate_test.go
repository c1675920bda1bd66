package database

import (
	"context"
	"testing"
)

func TestMigrator_Up(t *testing.T) {
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	defer db.DB.Close()

	migrator, err := NewMigrator(db)
	if err != nil {
		t.Fatalf("creating migrator: %v", err)
	}

	ctx := context.Background()
	result, err := migrator.Up(ctx)
	if err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	if len(result.Applied) == 0 {
		t.Fatal("expected at least one migration to apply")
	}

	// All domain tables must exist afterwards.
	tables := []string{"houses", "rooms", "materials", "construction_systems", "room_finishes"}
	for _, table := range tables {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("expected table %s to exist: %v", table, err)
		}
	}

	if err := migrator.Verify(ctx); err != nil {
		t.Errorf("verify after up: %v", err)
	}
}

func TestMigrator_UpIsIdempotent(t *testing.T) {
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	defer db.DB.Close()

	migrator, err := NewMigrator(db)
	if err != nil {
		t.Fatalf("creating migrator: %v", err)
	}

	ctx := context.Background()
	if _, err := migrator.Up(ctx); err != nil {
		t.Fatalf("first up: %v", err)
	}

	result, err := migrator.Up(ctx)
	if err != nil {
		t.Fatalf("second up: %v", err)
	}
	if len(result.Applied) != 0 {
		t.Errorf("expected no migrations on second run, applied %d", len(result.Applied))
	}
}
