package services

import (
	"context"
	"testing"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
)

func TestStatsOverviewAggregates(t *testing.T) {
	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	clipRepo := repositories.NewFileClipRepository(store)
	matchRepo := repositories.NewFileMatchRepository(store)
	svc := NewStatsService(clipRepo, matchRepo)
	ctx := context.Background()

	clips := []models.Clip{
		{ID: "a", Views: 10, Likes: 3, UploadDate: "2025-01-01T00:00:00Z"},
		{ID: "b", Views: 5, Likes: 1, UploadDate: "2025-01-02T00:00:00Z"},
	}
	for _, clip := range clips {
		if err := clipRepo.Append(ctx, clip); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	fixtures := []models.Match{
		{HomeTeam: "a", AwayTeam: "b", Status: models.MatchStatusPlayed},
		{HomeTeam: "c", AwayTeam: "d", Status: models.MatchStatusScheduled},
		{HomeTeam: "e", AwayTeam: "f", Status: models.MatchStatusPlayed},
	}
	for _, fixture := range fixtures {
		if _, err := matchRepo.Create(ctx, fixture); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	stats, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if stats.TotalClips != 2 || stats.TotalViews != 15 || stats.TotalLikes != 4 {
		t.Errorf("clip totals = %+v", stats)
	}
	if stats.TotalMatches != 3 || stats.PlayedMatches != 2 {
		t.Errorf("match totals = %+v", stats)
	}
}
