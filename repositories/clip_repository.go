package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

var ErrClipNotFound = errors.New("clip not found")

const clipsCollection = "clips"

// CategoryAll disables the category filter when passed to List.
const CategoryAll = "all"

type ClipRepository interface {
	// List returns one page of clips sorted by upload date, newest first,
	// together with the total after filtering and whether further pages
	// remain. Pages are 1-based; a page beyond the end is empty, not an
	// error.
	List(ctx context.Context, category string, page, perPage int) ([]models.Clip, int, bool, error)
	// All returns the unfiltered collection in storage order.
	All(ctx context.Context) ([]models.Clip, error)
	// GetByID increments the clip's view counter and persists it before
	// returning; this is a read with a side effect.
	GetByID(ctx context.Context, id string) (*models.Clip, error)
	// Like increments the like counter and returns the new count.
	Like(ctx context.Context, id string) (int, error)
	Append(ctx context.Context, clip models.Clip) error
}

type fileClipRepository struct {
	store *db.Store
	mu    sync.Mutex
}

func NewFileClipRepository(store *db.Store) ClipRepository {
	return &fileClipRepository{store: store}
}

func (r *fileClipRepository) load() ([]models.Clip, error) {
	clips := []models.Clip{}
	if err := r.store.Load(clipsCollection, &clips); err != nil {
		return nil, err
	}
	return clips, nil
}

func (r *fileClipRepository) List(ctx context.Context, category string, page, perPage int) ([]models.Clip, int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clips, err := r.load()
	if err != nil {
		return nil, 0, false, err
	}

	if category != "" && category != CategoryAll {
		filtered := clips[:0]
		for _, clip := range clips {
			if clip.Category == category {
				filtered = append(filtered, clip)
			}
		}
		clips = filtered
	}

	// Upload dates share one ISO-8601 format, so string order is date order.
	sort.SliceStable(clips, func(i, j int) bool {
		return clips[i].UploadDate > clips[j].UploadDate
	})

	total := len(clips)
	start := (page - 1) * perPage
	end := start + perPage
	hasMore := end < total
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return clips[start:end], total, hasMore, nil
}

func (r *fileClipRepository) All(ctx context.Context) ([]models.Clip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *fileClipRepository) GetByID(ctx context.Context, id string) (*models.Clip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clips, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range clips {
		if clips[i].ID == id {
			clips[i].Views++
			if err := r.store.Save(clipsCollection, clips); err != nil {
				return nil, err
			}
			clip := clips[i]
			return &clip, nil
		}
	}
	return nil, ErrClipNotFound
}

func (r *fileClipRepository) Like(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clips, err := r.load()
	if err != nil {
		return 0, err
	}
	for i := range clips {
		if clips[i].ID == id {
			clips[i].Likes++
			if err := r.store.Save(clipsCollection, clips); err != nil {
				return 0, err
			}
			return clips[i].Likes, nil
		}
	}
	return 0, ErrClipNotFound
}

func (r *fileClipRepository) Append(ctx context.Context, clip models.Clip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clips, err := r.load()
	if err != nil {
		return err
	}
	clips = append(clips, clip)
	return r.store.Save(clipsCollection, clips)
}
