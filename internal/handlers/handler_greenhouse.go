package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// greenhouseHandler handles HTTP requests related to greenhouses.
type greenhouseHandler struct {
	greenhouseService portssvc.GreenhouseSvcFacade
}

func registerGreenhouseRoutes(rg *gin.RouterGroup, svc portssvc.GreenhouseSvcFacade) {
	h := &greenhouseHandler{greenhouseService: svc}

	greenhouses := rg.Group("/greenhouses")
	{
		greenhouses.POST("", h.createGreenhouse)
		greenhouses.GET("", h.listGreenhouses)
		greenhouses.GET("/:id", h.getGreenhouse)
		greenhouses.PUT("/:id", h.updateGreenhouse)
		greenhouses.DELETE("/:id", h.deleteGreenhouse)
	}
}

// createGreenhouse godoc
// @Summary Create a greenhouse
// @Tags greenhouses
// @Accept json
// @Produce json
// @Param greenhouse body dto.GreenhouseRequest true "Greenhouse details"
// @Success 201 {object} domain.Greenhouse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /greenhouses [post]
func (h *greenhouseHandler) createGreenhouse(c *gin.Context) {
	var req dto.GreenhouseRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.greenhouseService.CreateGreenhouse(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create greenhouse")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Greenhouse created", slog.String("greenhouse_id", g.GreenhouseID))
	c.JSON(http.StatusCreated, g)
}

// listGreenhouses godoc
// @Summary List greenhouses
// @Tags greenhouses
// @Produce json
// @Success 200 {array} domain.Greenhouse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /greenhouses [get]
func (h *greenhouseHandler) listGreenhouses(c *gin.Context) {
	list, err := h.greenhouseService.ListGreenhouses(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list greenhouses")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getGreenhouse godoc
// @Summary Get a greenhouse by ID
// @Tags greenhouses
// @Produce json
// @Param id path string true "Greenhouse ID"
// @Success 200 {object} domain.Greenhouse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /greenhouses/{id} [get]
func (h *greenhouseHandler) getGreenhouse(c *gin.Context) {
	g, err := h.greenhouseService.GetGreenhouseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve greenhouse")
		return
	}
	c.JSON(http.StatusOK, g)
}

// updateGreenhouse godoc
// @Summary Update a greenhouse
// @Tags greenhouses
// @Accept json
// @Produce json
// @Param id path string true "Greenhouse ID"
// @Param greenhouse body dto.GreenhouseRequest true "Greenhouse details"
// @Success 200 {object} domain.Greenhouse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /greenhouses/{id} [put]
func (h *greenhouseHandler) updateGreenhouse(c *gin.Context) {
	var req dto.GreenhouseRequest
	if !bindJSON(c, &req) {
		return
	}
	g, err := h.greenhouseService.UpdateGreenhouse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update greenhouse")
		return
	}
	c.JSON(http.StatusOK, g)
}

// deleteGreenhouse godoc
// @Summary Delete a greenhouse
// @Description Refused with 409 while crop cycles still use the greenhouse.
// @Tags greenhouses
// @Param id path string true "Greenhouse ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /greenhouses/{id} [delete]
func (h *greenhouseHandler) deleteGreenhouse(c *gin.Context) {
	if err := h.greenhouseService.DeleteGreenhouse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete greenhouse")
		return
	}
	c.Status(http.StatusNoContent)
}
