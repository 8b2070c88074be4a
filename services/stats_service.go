package services

import (
	"context"

	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
	"golang.org/x/sync/errgroup"
)

type Stats struct {
	TotalClips    int `json:"total_clips"`
	TotalViews    int `json:"total_views"`
	TotalLikes    int `json:"total_likes"`
	TotalMatches  int `json:"total_matches"`
	PlayedMatches int `json:"played_matches"`
}

type StatsService interface {
	Overview(ctx context.Context) (*Stats, error)
}

type statsService struct {
	clipRepo  repositories.ClipRepository
	matchRepo repositories.MatchRepository
}

func NewStatsService(clipRepo repositories.ClipRepository, matchRepo repositories.MatchRepository) StatsService {
	return &statsService{
		clipRepo:  clipRepo,
		matchRepo: matchRepo,
	}
}

// Overview aggregates across the clip and match collections. The two
// collections live behind independent locks, so they load concurrently.
func (s *statsService) Overview(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		clips, err := s.clipRepo.All(gCtx)
		if err != nil {
			return err
		}
		stats.TotalClips = len(clips)
		for _, clip := range clips {
			stats.TotalViews += clip.Views
			stats.TotalLikes += clip.Likes
		}
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.List(gCtx, repositories.MatchFilter{})
		if err != nil {
			return err
		}
		stats.TotalMatches = len(matches)
		for _, match := range matches {
			if match.Status == models.MatchStatusPlayed {
				stats.PlayedMatches++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
