package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type programHandler struct {
	programService portssvc.ProgramSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

func registerProgramRoutes(rg *gin.RouterGroup, programService portssvc.ProgramSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := &programHandler{programService: programService, ledgerService: ledgerService}

	programs := rg.Group("/programs")
	{
		programs.POST("", h.createProgram)
		programs.GET("", h.listPrograms)
		programs.GET("/profitability", h.listProfitability)
		programs.GET("/:id", h.getProgram)
		programs.PUT("/:id", h.updateProgram)
		programs.DELETE("/:id", h.deleteProgram)
		programs.GET("/:id/profitability", h.getProfitability)
	}
}

// createProgram godoc
// @Summary Create a fertilization program
// @Tags programs
// @Accept json
// @Produce json
// @Param program body dto.ProgramRequest true "Program"
// @Success 201 {object} domain.FertilizationProgram
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /programs [post]
func (h *programHandler) createProgram(c *gin.Context) {
	var req dto.ProgramRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.programService.CreateProgram(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create program")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// listPrograms godoc
// @Summary List fertilization programs
// @Tags programs
// @Produce json
// @Success 200 {array} domain.FertilizationProgram
// @Security BearerAuth
// @Router /programs [get]
func (h *programHandler) listPrograms(c *gin.Context) {
	list, err := h.programService.ListPrograms(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list programs")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getProgram godoc
// @Summary Get a fertilization program by ID
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} domain.FertilizationProgram
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /programs/{id} [get]
func (h *programHandler) getProgram(c *gin.Context) {
	p, err := h.programService.GetProgramByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve program")
		return
	}
	c.JSON(http.StatusOK, p)
}

// updateProgram godoc
// @Summary Update a fertilization program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body dto.ProgramRequest true "Program"
// @Success 200 {object} domain.FertilizationProgram
// @Security BearerAuth
// @Router /programs/{id} [put]
func (h *programHandler) updateProgram(c *gin.Context) {
	var req dto.ProgramRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.programService.UpdateProgram(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update program")
		return
	}
	c.JSON(http.StatusOK, p)
}

// deleteProgram godoc
// @Summary Delete a fertilization program
// @Tags programs
// @Param id path string true "Program ID"
// @Success 204
// @Security BearerAuth
// @Router /programs/{id} [delete]
func (h *programHandler) deleteProgram(c *gin.Context) {
	if err := h.programService.DeleteProgram(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete program")
		return
	}
	c.Status(http.StatusNoContent)
}

// getProfitability godoc
// @Summary Profitability of a fertilization program
// @Tags ledger
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} domain.ProgramProfitability
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /programs/{id}/profitability [get]
func (h *programHandler) getProfitability(c *gin.Context) {
	p, err := h.ledgerService.GetProgramProfitability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute program profitability")
		return
	}
	c.JSON(http.StatusOK, p)
}

// listProfitability godoc
// @Summary Profitability of every fertilization program
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.ProgramProfitability
// @Security BearerAuth
// @Router /programs/profitability [get]
func (h *programHandler) listProfitability(c *gin.Context) {
	list, err := h.ledgerService.ListProgramProfitability(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute program profitability")
		return
	}
	c.JSON(http.StatusOK, list)
}
