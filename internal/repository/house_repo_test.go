package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/costwise/costwise/internal/models"
	"github.com/costwise/costwise/internal/testutil"
)

func TestHouseRepository_SaveAndLoad(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	house := testutil.FixtureHouse()
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to save house: %v", err)
	}

	loaded, err := repo.GetByID(ctx, house.ID)
	if err != nil {
		t.Fatalf("failed to load house: %v", err)
	}

	t.Run("House and rooms round-trip", func(t *testing.T) {
		if loaded.Name != house.Name {
			t.Errorf("expected name %q, got %q", house.Name, loaded.Name)
		}
		if len(loaded.Rooms) != 2 {
			t.Fatalf("expected 2 rooms, got %d", len(loaded.Rooms))
		}
		if loaded.Rooms[0].Name != "Kitchen" || loaded.Rooms[1].Name != "Study" {
			t.Errorf("room order not preserved: %v", loaded.RoomNames())
		}
	})

	t.Run("Finishes resolve against catalog tables", func(t *testing.T) {
		kitchen := loaded.FindRoom("Kitchen")
		if kitchen == nil {
			t.Fatal("expected Kitchen room")
		}
		if kitchen.FloorMaterial == nil || kitchen.FloorMaterial.Name != "Premium Ceramic" {
			t.Errorf("unexpected floor material: %+v", kitchen.FloorMaterial)
		}
		if kitchen.WallMaterial == nil || kitchen.WallMaterial.Name != "Premium Paint" {
			t.Errorf("unexpected wall material: %+v", kitchen.WallMaterial)
		}
		if kitchen.System == nil || kitchen.System.CostFactor != 0.8 {
			t.Errorf("unexpected system: %+v", kitchen.System)
		}
	})

	t.Run("Unassigned finishes stay unassigned", func(t *testing.T) {
		study := loaded.FindRoom("Study")
		if study == nil {
			t.Fatal("expected Study room")
		}
		if study.FloorMaterial != nil || study.WallMaterial != nil || study.System != nil {
			t.Error("expected bare room after load")
		}
		if study.TotalCost() != 0 {
			t.Errorf("expected zero cost, got %v", study.TotalCost())
		}
	})

	t.Run("Costs survive the round-trip", func(t *testing.T) {
		want := house.TotalCost()
		got := loaded.TotalCost()
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("total cost = %v, want %v", got, want)
		}
	})
}

func TestHouseRepository_SharedMaterialPointer(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	// Two rooms sharing one wall material.
	paint := testutil.FixtureWallMaterial()
	a := testutil.FixtureRoom(func(r *models.Room) { r.Name = "A" })
	b := testutil.FixtureRoom(func(r *models.Room) { r.Name = "B"; r.ID = "" })
	a.AssignWallMaterial(paint)
	b.AssignWallMaterial(paint)

	house := models.NewHouse("Shared")
	if err := house.AddRoom(a); err != nil {
		t.Fatalf("adding room A: %v", err)
	}
	if err := house.AddRoom(b); err != nil {
		t.Fatalf("adding room B: %v", err)
	}

	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to save house: %v", err)
	}
	db.AssertRowCount(t, "materials", 1)

	loaded, err := repo.GetByID(ctx, house.ID)
	if err != nil {
		t.Fatalf("failed to load house: %v", err)
	}

	ra := loaded.FindRoom("A")
	rb := loaded.FindRoom("B")
	if ra.WallMaterial != rb.WallMaterial {
		t.Error("expected both rooms to share one material pointer after load")
	}

	// A live edit through one room must reprice the other.
	ra.WallMaterial.PricePerSqm = 30000
	if rb.WallCost() != 30000*rb.WallArea() {
		t.Errorf("price edit did not propagate: %v", rb.WallCost())
	}
}

func TestHouseRepository_ResaveAfterRemoveRoom(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	house := testutil.FixtureHouse()
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to save house: %v", err)
	}
	db.AssertRowCount(t, "rooms", 2)

	house.RemoveRoom("Study")
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to re-save house: %v", err)
	}
	db.AssertRowCount(t, "rooms", 1)

	loaded, err := repo.GetByID(ctx, house.ID)
	if err != nil {
		t.Fatalf("failed to load house: %v", err)
	}
	if len(loaded.Rooms) != 1 || loaded.Rooms[0].Name != "Kitchen" {
		t.Errorf("unexpected rooms after prune: %v", loaded.RoomNames())
	}
}

func TestHouseRepository_SaveIsIdempotentOnCatalogRows(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	house := testutil.FixtureHouse()
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// Kitchen has one floor and one wall material; re-saving must not
	// duplicate the shared catalog rows.
	db.AssertRowCount(t, "materials", 2)
	db.AssertRowCount(t, "construction_systems", 1)
	db.AssertRowCount(t, "houses", 1)
}

func TestHouseRepository_GetByName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	house := testutil.FixtureHouse()
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to save house: %v", err)
	}

	loaded, err := repo.GetByName(ctx, "Fixture House")
	if err != nil {
		t.Fatalf("failed to load by name: %v", err)
	}
	if loaded.ID != house.ID {
		t.Errorf("expected id %s, got %s", house.ID, loaded.ID)
	}

	if _, err := repo.GetByName(ctx, "Missing Manor"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHouseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	house := testutil.FixtureHouse()
	if err := repo.Save(ctx, house); err != nil {
		t.Fatalf("failed to save house: %v", err)
	}

	if err := repo.Delete(ctx, house.ID); err != nil {
		t.Fatalf("failed to delete house: %v", err)
	}

	db.AssertRowCount(t, "houses", 0)
	db.AssertRowCount(t, "rooms", 0)
	db.AssertRowCount(t, "room_finishes", 0)
	// Shared catalog rows are not owned by the house.
	db.AssertRowCount(t, "materials", 2)
	db.AssertRowCount(t, "construction_systems", 1)

	if err := repo.Delete(ctx, house.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestHouseRepository_ListNames(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewHouseRepository(db.DB)
	ctx := context.Background()

	for _, name := range []string{"Cottage", "Apartment"} {
		h := testutil.FixtureHouse(func(h *models.House) {
			h.ID = ""
			h.Name = name
			h.Rooms = nil
		})
		if err := repo.Save(ctx, h); err != nil {
			t.Fatalf("failed to save %s: %v", name, err)
		}
	}

	names, err := repo.ListNames(ctx)
	if err != nil {
		t.Fatalf("failed to list names: %v", err)
	}
	if len(names) != 2 || names[0] != "Apartment" || names[1] != "Cottage" {
		t.Errorf("unexpected names: %v", names)
	}
}
