package services

import (
	"context"

	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
)

type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	// Replace persists the settings verbatim; there is no schema
	// validation beyond the typed record itself.
	Replace(ctx context.Context, settings models.Settings) error
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
	hub          *live.Hub
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, hub *live.Hub) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		hub:          hub,
	}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Replace(ctx context.Context, settings models.Settings) error {
	if err := s.settingsRepo.Replace(ctx, settings); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Publish("settings_updated", settings)
	}
	return nil
}
