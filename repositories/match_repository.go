package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	// ErrInvalidMatchPatch marks a patch whose field values cannot be
	// decoded into the match record.
	ErrInvalidMatchPatch = errors.New("invalid match patch")
)

const matchesCollection = "matches"

// MatchFilter narrows List by exact equality. A nil Matchday or an empty
// or "all" Status leaves that dimension unfiltered.
type MatchFilter struct {
	Matchday *int
	Status   string
}

type MatchRepository interface {
	// List returns matches sorted by matchday ascending, then date
	// ascending (lexicographic).
	List(ctx context.Context, filter MatchFilter) ([]models.Match, error)
	// Create assigns a fresh id and appends the match. Any id supplied by
	// the caller is discarded.
	Create(ctx context.Context, match models.Match) (models.Match, error)
	// Update shallow-merges the patch into the stored match and returns
	// the merged record.
	Update(ctx context.Context, id int64, patch map[string]json.RawMessage) (models.Match, error)
	Delete(ctx context.Context, id int64) error
}

type fileMatchRepository struct {
	store  *db.Store
	mu     sync.Mutex
	lastID int64
}

func NewFileMatchRepository(store *db.Store) MatchRepository {
	return &fileMatchRepository{store: store}
}

func (r *fileMatchRepository) load() ([]models.Match, error) {
	matches := []models.Match{}
	if err := r.store.Load(matchesCollection, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *fileMatchRepository) List(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches, err := r.load()
	if err != nil {
		return nil, err
	}

	if filter.Matchday != nil || (filter.Status != "" && filter.Status != "all") {
		filtered := make([]models.Match, 0, len(matches))
		for _, match := range matches {
			if filter.Matchday != nil && match.Matchday != *filter.Matchday {
				continue
			}
			if filter.Status != "" && filter.Status != "all" && match.Status != filter.Status {
				continue
			}
			filtered = append(filtered, match)
		}
		matches = filtered
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Matchday != matches[j].Matchday {
			return matches[i].Matchday < matches[j].Matchday
		}
		return matches[i].Date < matches[j].Date
	})
	return matches, nil
}

// nextID keeps the wall-clock flavour of the original millisecond ids but
// stays strictly increasing under the collection lock, so rapid
// consecutive creates cannot collide.
func (r *fileMatchRepository) nextID(existing []models.Match) int64 {
	if r.lastID == 0 {
		for _, match := range existing {
			if match.ID > r.lastID {
				r.lastID = match.ID
			}
		}
	}
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *fileMatchRepository) Create(ctx context.Context, match models.Match) (models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches, err := r.load()
	if err != nil {
		return models.Match{}, err
	}
	match.ID = r.nextID(matches)
	matches = append(matches, match)
	if err := r.store.Save(matchesCollection, matches); err != nil {
		return models.Match{}, err
	}
	return match, nil
}

func (r *fileMatchRepository) Update(ctx context.Context, id int64, patch map[string]json.RawMessage) (models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches, err := r.load()
	if err != nil {
		return models.Match{}, err
	}
	for i := range matches {
		if matches[i].ID != id {
			continue
		}
		if err := matches[i].ApplyPatch(patch); err != nil {
			return models.Match{}, fmt.Errorf("%w: %v", ErrInvalidMatchPatch, err)
		}
		if err := r.store.Save(matchesCollection, matches); err != nil {
			return models.Match{}, err
		}
		return matches[i], nil
	}
	return models.Match{}, ErrMatchNotFound
}

func (r *fileMatchRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	matches, err := r.load()
	if err != nil {
		return err
	}
	for i := range matches {
		if matches[i].ID == id {
			matches = append(matches[:i], matches[i+1:]...)
			return r.store.Save(matchesCollection, matches)
		}
	}
	return ErrMatchNotFound
}
