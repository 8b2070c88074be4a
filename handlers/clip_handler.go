package handlers

import (
	"net/http"

	"github.com/Dosada05/league-media-system/services"
	"github.com/go-chi/chi/v5"
)

type ClipHandler struct {
	clipService services.ClipService
}

func NewClipHandler(clipService services.ClipService) *ClipHandler {
	return &ClipHandler{clipService: clipService}
}

// List godoc
// @Summary List clips
// @Tags clips
// @Param category query string false "Category filter, or \"all\""
// @Param page query int false "1-based page index"
// @Param per_page query int false "Page size"
// @Success 200 {object} services.ClipListResult
// @Router /clips [get]
func (h *ClipHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	perPage, err := queryInt(r, "per_page", services.DefaultClipsPerPage)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	category := r.URL.Query().Get("category")

	result, err := h.clipService.List(r.Context(), category, page, perPage)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByID godoc
// @Summary Clip details, increments the view counter
// @Tags clips
// @Param id path string true "Clip id"
// @Success 200 {object} models.Clip
// @Failure 404 {object} map[string]string
// @Router /clips/{id} [get]
func (h *ClipHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clip, err := h.clipService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, clip, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// View godoc
// @Summary Record a clip view
// @Tags clips
// @Param id path string true "Clip id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /clips/{id}/view [post]
func (h *ClipHandler) View(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	clip, err := h.clipService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"views":   clip.Views,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Like godoc
// @Summary Like a clip
// @Tags clips
// @Param id path string true "Clip id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /clips/{id}/like [post]
func (h *ClipHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	likes, err := h.clipService.Like(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"likes":   likes,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Upload godoc
// @Summary Upload a video clip
// @Tags clips
// @Accept mpfd
// @Param clipFile formData file true "Video file (mp4, avi, mov, mkv, webm)"
// @Param clipTitle formData string false "Title"
// @Param clipDescription formData string false "Description"
// @Param clubSelect formData string false "Club"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /upload [post]
func (h *ClipHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.UploadClipInput{
		Title:       r.FormValue("clipTitle"),
		Description: r.FormValue("clipDescription"),
		Club:        r.FormValue("clubSelect"),
	}

	file, header, err := r.FormFile("clipFile")
	if err == nil {
		defer file.Close()
		input.File = file
		input.Filename = header.Filename
	}

	clip, err := h.clipService.Upload(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"clip_id": clip.ID,
		"clip":    clip,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
