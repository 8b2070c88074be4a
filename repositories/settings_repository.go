package repositories

import (
	"context"
	"sync"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

const settingsCollection = "settings"

type SettingsRepository interface {
	// Get returns the persisted settings, or the defaults when no
	// settings document exists yet. Reading never persists the defaults.
	Get(ctx context.Context) (models.Settings, error)
	Replace(ctx context.Context, settings models.Settings) error
}

type fileSettingsRepository struct {
	store *db.Store
	mu    sync.Mutex
}

func NewFileSettingsRepository(store *db.Store) SettingsRepository {
	return &fileSettingsRepository{store: store}
}

func (r *fileSettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := models.DefaultSettings()
	if err := r.store.Load(settingsCollection, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (r *fileSettingsRepository) Replace(ctx context.Context, settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(settingsCollection, settings)
}
