package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/repositories"
	"github.com/Dosada05/league-media-system/services"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func matchIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid match id %q", raw)
	}
	return id, nil
}

// List godoc
// @Summary List matches
// @Tags matches
// @Param matchday query string false "Matchday filter, integer or \"all\""
// @Param status query string false "Status filter, or \"all\""
// @Success 200 {array} models.Match
// @Router /matches [get]
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.MatchFilter{
		Status: r.URL.Query().Get("status"),
	}

	if raw := r.URL.Query().Get("matchday"); raw != "" && raw != "all" {
		matchday, err := strconv.Atoi(raw)
		if err != nil {
			badRequestResponse(w, r, fmt.Errorf("query parameter %q must be an integer or %q", "matchday", "all"))
			return
		}
		filter.Matchday = &matchday
	}

	matches, err := h.matchService.List(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, matches, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Create godoc
// @Summary Create a match
// @Tags matches
// @Param match body models.Match true "Match fields; unknown keys are kept"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var match models.Match
	if err := readJSON(w, r, &match); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	created, err := h.matchService.Create(r.Context(), match)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"match":   created,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Update godoc
// @Summary Shallow-merge fields into a match
// @Tags matches
// @Param id path int true "Match id"
// @Param patch body object true "Fields to overwrite"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [put]
func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := matchIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var patch map[string]json.RawMessage
	if err := readJSON(w, r, &patch); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	updated, err := h.matchService.Update(r.Context(), id, patch)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"match":   updated,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete godoc
// @Summary Delete a match
// @Tags matches
// @Param id path int true "Match id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [delete]
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := matchIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"message": "Match deleted successfully",
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
