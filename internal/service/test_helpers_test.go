package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/manu2699/nutri-track/internal/catalog"
	"github.com/manu2699/nutri-track/internal/db"
	"github.com/manu2699/nutri-track/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutritrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb, zap.NewNop()); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func mustLookup(t *testing.T, cat *catalog.Catalog, id string) *catalog.Food {
	t.Helper()
	food := cat.Lookup(id)
	if food == nil {
		t.Fatalf("food %q missing from catalog", id)
	}
	return food
}

func createTestProfile(t *testing.T, sqldb *sql.DB) int64 {
	t.Helper()
	id, err := service.CreateProfile(sqldb, service.CreateProfileInput{
		Name:          "Manu",
		Age:           27,
		Gender:        "male",
		WeightKg:      79,
		HeightCm:      174,
		BodyFatPct:    fptr(23),
		ActivityLevel: "lightly active",
		Region:        "south_india",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return id
}

func fptr(v float64) *float64 { return &v }
