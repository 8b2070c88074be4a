package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Dosada05/league-media-system/db"
	"github.com/Dosada05/league-media-system/models"
)

func newClipRepo(t *testing.T, seed []models.Clip) ClipRepository {
	t.Helper()
	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	if seed != nil {
		if err := store.Save("clips", seed); err != nil {
			t.Fatalf("seed clips: %v", err)
		}
	}
	return NewFileClipRepository(store)
}

func seedClips() []models.Clip {
	return []models.Clip{
		{ID: "a", Title: "early goal", Category: "goals", UploadDate: "2025-01-01T10:00:00Z"},
		{ID: "b", Title: "great save", Category: "saves", UploadDate: "2025-02-01T10:00:00Z"},
		{ID: "c", Title: "late goal", Category: "goals", UploadDate: "2025-03-01T10:00:00Z"},
		{ID: "d", Title: "skill move", Category: "skills", UploadDate: "2025-01-15T10:00:00Z"},
	}
}

func TestClipListFiltersByCategory(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	clips, total, _, err := repo.List(context.Background(), "goals", 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	for _, clip := range clips {
		if clip.Category != "goals" {
			t.Errorf("clip %s has category %q", clip.ID, clip.Category)
		}
	}
}

func TestClipListAllSentinelDisablesFilter(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	_, total, _, err := repo.List(context.Background(), "all", 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestClipListSortsNewestFirst(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	clips, _, _, err := repo.List(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i := 1; i < len(clips); i++ {
		if clips[i-1].UploadDate < clips[i].UploadDate {
			t.Errorf("clips out of order at %d: %s before %s", i, clips[i-1].UploadDate, clips[i].UploadDate)
		}
	}
}

func TestClipListPagination(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	tests := []struct {
		page, perPage int
		wantLen       int
		wantHasMore   bool
	}{
		{1, 3, 3, true},
		{2, 3, 1, false},
		{1, 4, 4, false},
		{3, 3, 0, false},
		{10, 2, 0, false},
	}
	for _, tt := range tests {
		clips, total, hasMore, err := repo.List(context.Background(), "", tt.page, tt.perPage)
		if err != nil {
			t.Fatalf("List(page=%d): %v", tt.page, err)
		}
		if total != 4 {
			t.Errorf("page=%d: total = %d, want 4", tt.page, total)
		}
		if len(clips) != tt.wantLen {
			t.Errorf("page=%d perPage=%d: len = %d, want %d", tt.page, tt.perPage, len(clips), tt.wantLen)
		}
		if hasMore != tt.wantHasMore {
			t.Errorf("page=%d perPage=%d: hasMore = %v, want %v", tt.page, tt.perPage, hasMore, tt.wantHasMore)
		}
	}
}

func TestClipGetByIDIncrementsViewsAndPersists(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	clip, err := repo.GetByID(context.Background(), "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if clip.Views != 1 {
		t.Errorf("views = %d, want 1", clip.Views)
	}

	// An independent read shows the persisted increment plus its own.
	clip, err = repo.GetByID(context.Background(), "a")
	if err != nil {
		t.Fatalf("second GetByID: %v", err)
	}
	if clip.Views != 2 {
		t.Errorf("views = %d, want 2", clip.Views)
	}
}

func TestClipGetByIDNotFound(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrClipNotFound) {
		t.Errorf("err = %v, want ErrClipNotFound", err)
	}
}

func TestClipConcurrentLikesLoseNoUpdates(t *testing.T) {
	repo := newClipRepo(t, seedClips())

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Like(context.Background(), "b"); err != nil {
				t.Errorf("Like: %v", err)
			}
		}()
	}
	wg.Wait()

	likes, err := repo.Like(context.Background(), "b")
	if err != nil {
		t.Fatalf("final Like: %v", err)
	}
	if likes != n+1 {
		t.Errorf("likes = %d, want %d", likes, n+1)
	}
}

func TestClipAppend(t *testing.T) {
	repo := newClipRepo(t, nil)

	for i := 0; i < 3; i++ {
		clip := models.Clip{ID: fmt.Sprintf("clip-%d", i), UploadDate: fmt.Sprintf("2025-01-0%dT00:00:00Z", i+1)}
		if err := repo.Append(context.Background(), clip); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	_, total, _, err := repo.List(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}
