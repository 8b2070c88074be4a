package services

import (
	"context"
	"sort"

	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
)

type StandingService interface {
	// List returns the table ranked by points, goal difference, goals
	// scored, with positions reassigned 1..N. The recomputed positions
	// are not written back.
	List(ctx context.Context) ([]models.TeamStanding, error)
	Replace(ctx context.Context, standings []models.TeamStanding) error
	Reset(ctx context.Context) ([]models.TeamStanding, error)
}

type standingService struct {
	standingRepo repositories.StandingRepository
	hub          *live.Hub
}

func NewStandingService(standingRepo repositories.StandingRepository, hub *live.Hub) StandingService {
	return &standingService{
		standingRepo: standingRepo,
		hub:          hub,
	}
}

// rankStandings sorts by points desc, then goal difference desc, then
// goals for desc. Ties beyond that keep their stored order (stable sort),
// deliberately: no further tie-break exists.
func rankStandings(standings []models.TeamStanding) {
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	for i := range standings {
		standings[i].Position = i + 1
	}
}

func (s *standingService) List(ctx context.Context) ([]models.TeamStanding, error) {
	standings, err := s.standingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rankStandings(standings)
	return standings, nil
}

func (s *standingService) Replace(ctx context.Context, standings []models.TeamStanding) error {
	if standings == nil {
		return ErrInvalidStandingsTable
	}
	if err := s.standingRepo.Replace(ctx, standings); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Publish("standings_updated", standings)
	}
	return nil
}

func (s *standingService) Reset(ctx context.Context) ([]models.TeamStanding, error) {
	standings, err := s.standingRepo.Reset(ctx)
	if err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Publish("standings_updated", standings)
	}
	return standings, nil
}
