package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the figures derived from all records at once.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	now           func() time.Time
}

func registerLedgerRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: svc, now: time.Now}
	rg.GET("/treasury", h.getTreasury)
	rg.GET("/alerts", h.listAlerts)
	rg.GET("/dashboard", h.getDashboard)
}

// getTreasury godoc
// @Summary Treasury summary
// @Description Cash balance of every active crop cycle and their total.
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.TreasurySummary
// @Security BearerAuth
// @Router /treasury [get]
func (h *ledgerHandler) getTreasury(c *gin.Context) {
	summary, err := h.ledgerService.GetTreasurySummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute treasury")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// listAlerts godoc
// @Summary Current alerts
// @Description High cost, stagnant cycle and negative farmer balance warnings, in a stable order.
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.Alert
// @Security BearerAuth
// @Router /alerts [get]
func (h *ledgerHandler) listAlerts(c *gin.Context) {
	alerts, err := h.ledgerService.Alerts(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err, "Failed to evaluate alerts")
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// getDashboard godoc
// @Summary Dashboard
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ledgerHandler) getDashboard(c *gin.Context) {
	dash, err := h.ledgerService.Dashboard(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}
