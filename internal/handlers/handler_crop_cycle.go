package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cropCycleHandler handles HTTP requests related to crop cycles and their transactions.
type cropCycleHandler struct {
	cycleService       portssvc.CropCycleSvcFacade
	transactionService portssvc.TransactionSvcFacade
	ledgerService      portssvc.LedgerSvcFacade
}

func registerCropCycleRoutes(
	rg *gin.RouterGroup,
	cycleService portssvc.CropCycleSvcFacade,
	transactionService portssvc.TransactionSvcFacade,
	ledgerService portssvc.LedgerSvcFacade,
) {
	h := &cropCycleHandler{
		cycleService:       cycleService,
		transactionService: transactionService,
		ledgerService:      ledgerService,
	}

	cycles := rg.Group("/cycles")
	{
		cycles.POST("", h.createCropCycle)
		cycles.GET("", h.listCropCycles)
		cycles.GET("/financials", h.listCycleFinancials)
		cycles.GET("/:id", h.getCropCycle)
		cycles.PUT("/:id", h.updateCropCycle)
		cycles.PATCH("/:id/status", h.updateCropCycleStatus)
		cycles.DELETE("/:id", h.deleteCropCycle)
		cycles.GET("/:id/transactions", h.listCycleTransactions)
		cycles.GET("/:id/financials", h.getCycleFinancials)
		cycles.GET("/:id/treasury", h.getCycleTreasury)
	}
}

// createCropCycle godoc
// @Summary Create a crop cycle
// @Description New cycles start ACTIVE unless a status is given. The production start date is derived from revenue.
// @Tags cycles
// @Accept json
// @Produce json
// @Param cycle body dto.CropCycleRequest true "Crop cycle details"
// @Success 201 {object} domain.CropCycle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles [post]
func (h *cropCycleHandler) createCropCycle(c *gin.Context) {
	var req dto.CropCycleRequest
	if !bindJSON(c, &req) {
		return
	}
	cycle, err := h.cycleService.CreateCropCycle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create crop cycle")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Crop cycle created", slog.String("crop_cycle_id", cycle.CropCycleID))
	c.JSON(http.StatusCreated, cycle)
}

// listCropCycles godoc
// @Summary List crop cycles
// @Tags cycles
// @Produce json
// @Success 200 {array} domain.CropCycle
// @Security BearerAuth
// @Router /cycles [get]
func (h *cropCycleHandler) listCropCycles(c *gin.Context) {
	cycles, err := h.cycleService.ListCropCycles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list crop cycles")
		return
	}
	c.JSON(http.StatusOK, cycles)
}

// getCropCycle godoc
// @Summary Get a crop cycle by ID
// @Tags cycles
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Success 200 {object} domain.CropCycle
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id} [get]
func (h *cropCycleHandler) getCropCycle(c *gin.Context) {
	cycle, err := h.cycleService.GetCropCycleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve crop cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// updateCropCycle godoc
// @Summary Update a crop cycle
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Param cycle body dto.CropCycleRequest true "Crop cycle details"
// @Success 200 {object} domain.CropCycle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id} [put]
func (h *cropCycleHandler) updateCropCycle(c *gin.Context) {
	var req dto.CropCycleRequest
	if !bindJSON(c, &req) {
		return
	}
	cycle, err := h.cycleService.UpdateCropCycle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update crop cycle")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// updateCropCycleStatus godoc
// @Summary Change the status of a crop cycle
// @Description Any of ACTIVE, CLOSED and ARCHIVED may follow any other.
// @Tags cycles
// @Accept json
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Param status body dto.UpdateCycleStatusRequest true "New status"
// @Success 200 {object} domain.CropCycle
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id}/status [patch]
func (h *cropCycleHandler) updateCropCycleStatus(c *gin.Context) {
	var req dto.UpdateCycleStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	cycle, err := h.cycleService.UpdateCropCycleStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update crop cycle status")
		return
	}
	c.JSON(http.StatusOK, cycle)
}

// deleteCropCycle godoc
// @Summary Delete a crop cycle
// @Description Refused with 409 while transactions, withdrawals, payments, advances or programs reference the cycle.
// @Tags cycles
// @Param id path string true "Crop cycle ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id} [delete]
func (h *cropCycleHandler) deleteCropCycle(c *gin.Context) {
	if err := h.cycleService.DeleteCropCycle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete crop cycle")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCycleTransactions godoc
// @Summary List the transactions of a crop cycle
// @Tags cycles
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Success 200 {array} domain.Transaction
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id}/transactions [get]
func (h *cropCycleHandler) listCycleTransactions(c *gin.Context) {
	txns, err := h.transactionService.ListTransactionsByCycle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// getCycleFinancials godoc
// @Summary Get the derived financials of a crop cycle
// @Tags ledger
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Success 200 {object} domain.CycleFinancials
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id}/financials [get]
func (h *cropCycleHandler) getCycleFinancials(c *gin.Context) {
	fin, err := h.ledgerService.GetCycleFinancials(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute cycle financials")
		return
	}
	c.JSON(http.StatusOK, fin)
}

// listCycleFinancials godoc
// @Summary Get the derived financials of every crop cycle
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.CycleFinancials
// @Security BearerAuth
// @Router /cycles/financials [get]
func (h *cropCycleHandler) listCycleFinancials(c *gin.Context) {
	list, err := h.ledgerService.ListCycleFinancials(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute cycle financials")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getCycleTreasury godoc
// @Summary Get the cash balance of a crop cycle
// @Tags ledger
// @Produce json
// @Param id path string true "Crop cycle ID"
// @Success 200 {object} domain.TreasuryBreakdown
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /cycles/{id}/treasury [get]
func (h *cropCycleHandler) getCycleTreasury(c *gin.Context) {
	tr, err := h.ledgerService.GetCycleTreasury(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute cycle treasury")
		return
	}
	c.JSON(http.StatusOK, tr)
}
