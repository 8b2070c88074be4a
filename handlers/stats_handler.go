package handlers

import (
	"net/http"

	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Overview godoc
// @Summary Aggregate clip and match statistics
// @Tags stats
// @Success 200 {object} services.Stats
// @Router /stats [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Overview(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Teams godoc
// @Summary The fixed league roster
// @Tags teams
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *StatsHandler) Teams(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, models.DefaultTeams(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
