package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
)

func newStandingService(t *testing.T) StandingService {
	t.Helper()
	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	return NewStandingService(repositories.NewFileStandingRepository(store), nil)
}

func TestStandingListRanksTable(t *testing.T) {
	svc := newStandingService(t)
	ctx := context.Background()

	table := []models.TeamStanding{
		{Team: "Coiner FC", Points: 4, GoalsFor: 5, GoalsAgainst: 3, GoalDifference: 2},
		{Team: "Raven Law", Points: 9, GoalsFor: 10, GoalsAgainst: 2, GoalDifference: 8},
		{Team: "fly city", Points: 4, GoalsFor: 7, GoalsAgainst: 5, GoalDifference: 2},
		{Team: "ACP 507", Points: 4, GoalsFor: 6, GoalsAgainst: 2, GoalDifference: 4},
	}
	if err := svc.Replace(ctx, table); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	ranked, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	wantOrder := []string{"Raven Law", "ACP 507", "fly city", "Coiner FC"}
	for i, want := range wantOrder {
		if ranked[i].Team != want {
			t.Errorf("rank %d = %s, want %s", i+1, ranked[i].Team, want)
		}
	}
	for i, row := range ranked {
		if row.Position != i+1 {
			t.Errorf("position of %s = %d, want %d", row.Team, row.Position, i+1)
		}
	}
	// Every adjacent pair respects points, then goal difference, then
	// goals scored.
	for i := 1; i < len(ranked); i++ {
		a, b := ranked[i-1], ranked[i]
		switch {
		case a.Points > b.Points:
		case a.Points == b.Points && a.GoalDifference > b.GoalDifference:
		case a.Points == b.Points && a.GoalDifference == b.GoalDifference && a.GoalsFor >= b.GoalsFor:
		default:
			t.Errorf("ordering violated between %s and %s", a.Team, b.Team)
		}
	}
}

func TestStandingListStableForFullTies(t *testing.T) {
	svc := newStandingService(t)
	ctx := context.Background()

	table := []models.TeamStanding{
		{Team: "Humacao Fc", Points: 3, GoalsFor: 2, GoalDifference: 0},
		{Team: "Punta Coco Fc", Points: 3, GoalsFor: 2, GoalDifference: 0},
	}
	if err := svc.Replace(ctx, table); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	ranked, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if ranked[0].Team != "Humacao Fc" || ranked[1].Team != "Punta Coco Fc" {
		t.Errorf("full tie reordered: %s, %s", ranked[0].Team, ranked[1].Team)
	}
}

func TestStandingReplaceRejectsNilTable(t *testing.T) {
	svc := newStandingService(t)

	if err := svc.Replace(context.Background(), nil); !errors.Is(err, ErrInvalidStandingsTable) {
		t.Errorf("err = %v, want ErrInvalidStandingsTable", err)
	}
}

func TestStandingResetReturnsDefaultRoster(t *testing.T) {
	svc := newStandingService(t)
	ctx := context.Background()

	if err := svc.Replace(ctx, []models.TeamStanding{{Team: "Raven Law", Points: 99}}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	standings, err := svc.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(standings) != 10 {
		t.Fatalf("reset returned %d teams, want 10", len(standings))
	}
	for _, row := range standings {
		if row.Played != 0 || row.Won != 0 || row.Drawn != 0 || row.Lost != 0 ||
			row.GoalsFor != 0 || row.GoalsAgainst != 0 || row.GoalDifference != 0 || row.Points != 0 {
			t.Errorf("reset row not zeroed: %+v", row)
		}
	}
}
