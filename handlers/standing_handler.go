package handlers

import (
	"net/http"

	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/services"
)

type StandingHandler struct {
	standingService services.StandingService
}

func NewStandingHandler(standingService services.StandingService) *StandingHandler {
	return &StandingHandler{standingService: standingService}
}

// List godoc
// @Summary Ranked league table
// @Tags standings
// @Success 200 {array} models.TeamStanding
// @Router /standings [get]
func (h *StandingHandler) List(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, standings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Replace godoc
// @Summary Replace the whole league table
// @Tags standings
// @Param standings body []models.TeamStanding true "New table"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /standings [put]
func (h *StandingHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var standings []models.TeamStanding
	if err := readJSON(w, r, &standings); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.standingService.Replace(r.Context(), standings); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success": true,
		"message": "Standings updated successfully",
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Reset the league table to the default roster
// @Tags standings
// @Success 200 {object} map[string]interface{}
// @Router /standings/reset [post]
func (h *StandingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingService.Reset(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":   true,
		"message":   "Standings reset successfully",
		"standings": standings,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
