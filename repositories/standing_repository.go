package repositories

import (
	"context"
	"sync"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

const standingsCollection = "standings"

type StandingRepository interface {
	// List returns the persisted table in storage order, or the default
	// all-zero roster when nothing has been written yet. The default is
	// not persisted by reading it.
	List(ctx context.Context) ([]models.TeamStanding, error)
	// Replace persists the given table verbatim, no per-record validation.
	Replace(ctx context.Context, standings []models.TeamStanding) error
	// Reset writes the default roster and returns it.
	Reset(ctx context.Context) ([]models.TeamStanding, error)
}

type fileStandingRepository struct {
	store *db.Store
	mu    sync.Mutex
}

func NewFileStandingRepository(store *db.Store) StandingRepository {
	return &fileStandingRepository{store: store}
}

func (r *fileStandingRepository) List(ctx context.Context) ([]models.TeamStanding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var standings []models.TeamStanding
	if err := r.store.Load(standingsCollection, &standings); err != nil {
		return nil, err
	}
	if standings == nil {
		return models.DefaultStandings(), nil
	}
	return standings, nil
}

func (r *fileStandingRepository) Replace(ctx context.Context, standings []models.TeamStanding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(standingsCollection, standings)
}

func (r *fileStandingRepository) Reset(ctx context.Context) ([]models.TeamStanding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	standings := models.DefaultStandings()
	if err := r.store.Save(standingsCollection, standings); err != nil {
		return nil, err
	}
	return standings, nil
}
