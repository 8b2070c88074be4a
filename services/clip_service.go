package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"time"

	"github.com/Dosada05/league-media-system/live"
	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
	"github.com/Dosada05/league-media-system/storage"
)

// allowedVideoExtensions is checked before anything touches storage.
var allowedVideoExtensions = map[string]bool{
	"mp4":  true,
	"avi":  true,
	"mov":  true,
	"mkv":  true,
	"webm": true,
}

const DefaultClipsPerPage = 12

type ClipListResult struct {
	Clips   []models.Clip `json:"clips"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	HasMore bool          `json:"has_more"`
}

type UploadClipInput struct {
	Title       string
	Description string
	Club        string
	Filename    string
	File        io.Reader
}

type ClipService interface {
	List(ctx context.Context, category string, page, perPage int) (*ClipListResult, error)
	GetByID(ctx context.Context, id string) (*models.Clip, error)
	Like(ctx context.Context, id string) (int, error)
	Upload(ctx context.Context, input UploadClipInput) (*models.Clip, error)
}

type clipService struct {
	clipRepo repositories.ClipRepository
	uploader storage.FileUploader
	hub      *live.Hub
}

func NewClipService(clipRepo repositories.ClipRepository, uploader storage.FileUploader, hub *live.Hub) ClipService {
	return &clipService{
		clipRepo: clipRepo,
		uploader: uploader,
		hub:      hub,
	}
}

func (s *clipService) List(ctx context.Context, category string, page, perPage int) (*ClipListResult, error) {
	if page < 1 || perPage < 1 {
		return nil, ErrInvalidPagination
	}

	clips, total, hasMore, err := s.clipRepo.List(ctx, category, page, perPage)
	if err != nil {
		return nil, err
	}
	return &ClipListResult{
		Clips:   clips,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		HasMore: hasMore,
	}, nil
}

func (s *clipService) GetByID(ctx context.Context, id string) (*models.Clip, error) {
	clip, err := s.clipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClipNotFound) {
			return nil, ErrClipNotFound
		}
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish("viewUpdate", map[string]interface{}{
			"clipId": clip.ID,
			"views":  clip.Views,
		})
	}
	return clip, nil
}

func (s *clipService) Like(ctx context.Context, id string) (int, error) {
	likes, err := s.clipRepo.Like(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClipNotFound) {
			return 0, ErrClipNotFound
		}
		return 0, err
	}

	if s.hub != nil {
		s.hub.Publish("likeUpdate", map[string]interface{}{
			"clipId": id,
			"likes":  likes,
		})
	}
	return likes, nil
}

func (s *clipService) Upload(ctx context.Context, input UploadClipInput) (*models.Clip, error) {
	if input.File == nil {
		return nil, ErrNoFileProvided
	}
	if input.Filename == "" {
		return nil, ErrNoFileSelected
	}
	ext := fileExtension(input.Filename)
	if !allowedVideoExtensions[ext] {
		return nil, ErrFileTypeNotAllowed
	}

	id := newClipID()
	storedName := id + "." + ext
	contentType := mime.TypeByExtension("." + ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := s.uploader.Upload(ctx, storedName, contentType, input.File)
	if err != nil {
		return nil, fmt.Errorf("failed to store clip file: %w", err)
	}

	clip := models.Clip{
		ID:               id,
		Title:            input.Title,
		Description:      input.Description,
		Club:             input.Club,
		Filename:         result.Key,
		OriginalFilename: sanitizeFilename(input.Filename),
		UploadDate:       time.Now().UTC().Format(time.RFC3339),
		Views:            0,
		Likes:            0,
		Category:         models.DefaultClipCategory,
		Duration:         "0:00",
		FileSize:         result.Size,
	}

	if err := s.clipRepo.Append(ctx, clip); err != nil {
		// The record is the source of truth; drop the orphaned file.
		if delErr := s.uploader.Delete(ctx, storedName); delErr != nil {
			return nil, fmt.Errorf("failed to save clip record: %w (orphaned file %s: %v)", err, storedName, delErr)
		}
		return nil, fmt.Errorf("failed to save clip record: %w", err)
	}

	if s.hub != nil {
		s.hub.Publish("newClip", clip)
	}
	return &clip, nil
}
