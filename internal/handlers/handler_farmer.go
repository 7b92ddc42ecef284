package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// farmerHandler handles farmers, their withdrawals and their balances.
type farmerHandler struct {
	farmerService     portssvc.FarmerSvcFacade
	withdrawalService portssvc.WithdrawalSvcFacade
	ledgerService     portssvc.LedgerSvcFacade
}

func registerFarmerRoutes(
	rg *gin.RouterGroup,
	farmerService portssvc.FarmerSvcFacade,
	withdrawalService portssvc.WithdrawalSvcFacade,
	ledgerService portssvc.LedgerSvcFacade,
) {
	h := &farmerHandler{
		farmerService:     farmerService,
		withdrawalService: withdrawalService,
		ledgerService:     ledgerService,
	}

	farmers := rg.Group("/farmers")
	{
		farmers.POST("", h.createFarmer)
		farmers.GET("", h.listFarmers)
		farmers.GET("/balances", h.listFarmerBalances)
		farmers.GET("/:id", h.getFarmer)
		farmers.PUT("/:id", h.updateFarmer)
		farmers.DELETE("/:id", h.deleteFarmer)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.GET("/:id", h.getWithdrawal)
		withdrawals.PUT("/:id", h.updateWithdrawal)
		withdrawals.DELETE("/:id", h.deleteWithdrawal)
	}
}

// createFarmer godoc
// @Summary Create a farmer
// @Tags farmers
// @Accept json
// @Produce json
// @Param farmer body dto.FarmerRequest true "Farmer"
// @Success 201 {object} domain.Farmer
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farmers [post]
func (h *farmerHandler) createFarmer(c *gin.Context) {
	var req dto.FarmerRequest
	if !bindJSON(c, &req) {
		return
	}
	f, err := h.farmerService.CreateFarmer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create farmer")
		return
	}
	c.JSON(http.StatusCreated, f)
}

// listFarmers godoc
// @Summary List farmers
// @Tags farmers
// @Produce json
// @Success 200 {array} domain.Farmer
// @Security BearerAuth
// @Router /farmers [get]
func (h *farmerHandler) listFarmers(c *gin.Context) {
	farmers, err := h.farmerService.ListFarmers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list farmers")
		return
	}
	c.JSON(http.StatusOK, farmers)
}

// getFarmer godoc
// @Summary Get a farmer by ID
// @Tags farmers
// @Produce json
// @Param id path string true "Farmer ID"
// @Success 200 {object} domain.Farmer
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farmers/{id} [get]
func (h *farmerHandler) getFarmer(c *gin.Context) {
	f, err := h.farmerService.GetFarmerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve farmer")
		return
	}
	c.JSON(http.StatusOK, f)
}

// updateFarmer godoc
// @Summary Rename a farmer
// @Tags farmers
// @Accept json
// @Produce json
// @Param id path string true "Farmer ID"
// @Param farmer body dto.FarmerRequest true "Farmer"
// @Success 200 {object} domain.Farmer
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farmers/{id} [put]
func (h *farmerHandler) updateFarmer(c *gin.Context) {
	var req dto.FarmerRequest
	if !bindJSON(c, &req) {
		return
	}
	f, err := h.farmerService.UpdateFarmer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update farmer")
		return
	}
	c.JSON(http.StatusOK, f)
}

// deleteFarmer godoc
// @Summary Delete a farmer
// @Description The farmer is removed from every cycle it managed; the cycles themselves are kept.
// @Tags farmers
// @Param id path string true "Farmer ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /farmers/{id} [delete]
func (h *farmerHandler) deleteFarmer(c *gin.Context) {
	if err := h.farmerService.DeleteFarmer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete farmer")
		return
	}
	c.Status(http.StatusNoContent)
}

// listFarmerBalances godoc
// @Summary Farmer balances
// @Description Share earned over all cycles minus withdrawals, per farmer. Balances can be negative.
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.FarmerBalanceResponse
// @Security BearerAuth
// @Router /farmers/balances [get]
func (h *farmerHandler) listFarmerBalances(c *gin.Context) {
	farmers, balances, err := h.ledgerService.GetFarmerBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute farmer balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToFarmerBalanceResponses(farmers, balances))
}

// createWithdrawal godoc
// @Summary Record a farmer withdrawal
// @Description The crop cycle must have a farmer assigned.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawalRequest true "Withdrawal"
// @Success 201 {object} domain.FarmerWithdrawal
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *farmerHandler) createWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create withdrawal")
		return
	}
	c.JSON(http.StatusCreated, w)
}

// listWithdrawals godoc
// @Summary List farmer withdrawals
// @Tags withdrawals
// @Produce json
// @Success 200 {array} domain.FarmerWithdrawal
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *farmerHandler) listWithdrawals(c *gin.Context) {
	list, err := h.withdrawalService.ListWithdrawals(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list withdrawals")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getWithdrawal godoc
// @Summary Get a withdrawal by ID
// @Tags withdrawals
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Success 200 {object} domain.FarmerWithdrawal
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{id} [get]
func (h *farmerHandler) getWithdrawal(c *gin.Context) {
	w, err := h.withdrawalService.GetWithdrawalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve withdrawal")
		return
	}
	c.JSON(http.StatusOK, w)
}

// updateWithdrawal godoc
// @Summary Update a withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Param withdrawal body dto.WithdrawalRequest true "Withdrawal"
// @Success 200 {object} domain.FarmerWithdrawal
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{id} [put]
func (h *farmerHandler) updateWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindJSON(c, &req) {
		return
	}
	w, err := h.withdrawalService.UpdateWithdrawal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update withdrawal")
		return
	}
	c.JSON(http.StatusOK, w)
}

// deleteWithdrawal godoc
// @Summary Delete a withdrawal
// @Tags withdrawals
// @Param id path string true "Withdrawal ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{id} [delete]
func (h *farmerHandler) deleteWithdrawal(c *gin.Context) {
	if err := h.withdrawalService.DeleteWithdrawal(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete withdrawal")
		return
	}
	c.Status(http.StatusNoContent)
}
