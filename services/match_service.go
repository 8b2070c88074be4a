package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
)

type MatchService interface {
	List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error)
	Create(ctx context.Context, match models.Match) (models.Match, error)
	Update(ctx context.Context, id int64, patch map[string]json.RawMessage) (models.Match, error)
	Delete(ctx context.Context, id int64) error
}

type matchService struct {
	matchRepo repositories.MatchRepository
	hub       *live.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, hub *live.Hub) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		hub:       hub,
	}
}

func (s *matchService) List(ctx context.Context, filter repositories.MatchFilter) ([]models.Match, error) {
	return s.matchRepo.List(ctx, filter)
}

func (s *matchService) Create(ctx context.Context, match models.Match) (models.Match, error) {
	if match.Status == "" {
		match.Status = models.MatchStatusScheduled
	}
	created, err := s.matchRepo.Create(ctx, match)
	if err != nil {
		return models.Match{}, err
	}
	s.publishMatches(ctx, "match_added", created)
	return created, nil
}

func (s *matchService) Update(ctx context.Context, id int64, patch map[string]json.RawMessage) (models.Match, error) {
	updated, err := s.matchRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return models.Match{}, ErrMatchNotFound
		}
		if errors.Is(err, repositories.ErrInvalidMatchPatch) {
			return models.Match{}, ErrInvalidMatchPatch
		}
		return models.Match{}, err
	}
	s.publishMatches(ctx, "match_updated", updated)
	return updated, nil
}

func (s *matchService) Delete(ctx context.Context, id int64) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	s.publishMatches(ctx, "", models.Match{})
	return nil
}

// publishMatches pushes the single-match event (when given) followed by
// the full refreshed fixture list, mirroring what the front end expects.
func (s *matchService) publishMatches(ctx context.Context, event string, match models.Match) {
	if s.hub == nil {
		return
	}
	if event != "" {
		s.hub.Publish(event, match)
	}
	if matches, err := s.matchRepo.List(ctx, repositories.MatchFilter{}); err == nil {
		s.hub.Publish("matches_updated", matches)
	}
}
