package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

func TestSettingsGetDefaultsWithoutPersisting(t *testing.T) {
	dir := t.TempDir()
	store, err := db.Open(dir)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	repo := NewFileSettingsRepository(store)

	settings, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.SeasonName != "Temporada 2025" || settings.PointsWin != 3 || settings.PointsDraw != 1 || settings.PointsLoss != 0 {
		t.Errorf("defaults = %+v", settings)
	}

	if _, err := os.Stat(filepath.Join(dir, "settings.json")); !os.IsNotExist(err) {
		t.Error("reading defaults wrote settings.json")
	}
}

func TestSettingsReplaceThenGet(t *testing.T) {
	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	repo := NewFileSettingsRepository(store)
	ctx := context.Background()

	next := models.Settings{SeasonName: "Temporada 2026", PointsWin: 2, PointsDraw: 1, PointsLoss: 0}
	if err := repo.Replace(ctx, next); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != next {
		t.Errorf("Get = %+v, want %+v", got, next)
	}
}
