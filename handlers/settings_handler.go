package handlers

import (
	"net/http"

	"github.com/Dosada05/league-media-system/models"
	"github.com/Dosada05/league-media-system/services"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get godoc
// @Summary League settings
// @Tags settings
// @Success 200 {object} models.Settings
// @Router /settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, settings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Replace godoc
// @Summary Replace league settings
// @Tags settings
// @Param settings body models.Settings true "New settings"
// @Success 200 {object} map[string]interface{}
// @Router /settings [put]
func (h *SettingsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := readJSON(w, r, &settings); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.settingsService.Replace(r.Context(), settings); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"success":  true,
		"settings": settings,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
