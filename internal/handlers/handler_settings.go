package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, svc portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: svc}
	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)
}

// getSettings godoc
// @Summary Get the settings
// @Description Defaults are returned until settings are saved for the first time.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	s, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

// updateSettings godoc
// @Summary Replace the settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, s)
}
