package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/SscSPs/greenhouse_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// supplierHandler handles suppliers, the payments made to them and their credit balances.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
	paymentService  portssvc.SupplierPaymentSvcFacade
	ledgerService   portssvc.LedgerSvcFacade
}

func registerSupplierRoutes(
	rg *gin.RouterGroup,
	supplierService portssvc.SupplierSvcFacade,
	paymentService portssvc.SupplierPaymentSvcFacade,
	ledgerService portssvc.LedgerSvcFacade,
) {
	h := &supplierHandler{
		supplierService: supplierService,
		paymentService:  paymentService,
		ledgerService:   ledgerService,
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/balances", h.listSupplierBalances)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}

	payments := rg.Group("/supplier-payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.SupplierRequest true "Supplier"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, s)
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} domain.Supplier
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	list, err := h.supplierService.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getSupplier godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	s, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, s)
}

// updateSupplier godoc
// @Summary Rename a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body dto.SupplierRequest true "Supplier"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, s)
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Description Refused with 409 unless the outstanding balance is below 0.01.
// @Tags suppliers
// @Param id path string true "Supplier ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}

// listSupplierBalances godoc
// @Summary Supplier balances
// @Description Credit expenses minus payments, per supplier.
// @Tags ledger
// @Produce json
// @Success 200 {array} dto.SupplierBalanceResponse
// @Security BearerAuth
// @Router /suppliers/balances [get]
func (h *supplierHandler) listSupplierBalances(c *gin.Context) {
	suppliers, balances, err := h.ledgerService.GetSupplierBalances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute supplier balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierBalanceResponses(suppliers, balances))
}

// createPayment godoc
// @Summary Record a supplier payment
// @Description Linked expense ids must be expenses booked on the same supplier.
// @Tags supplier-payments
// @Accept json
// @Produce json
// @Param payment body dto.SupplierPaymentRequest true "Payment"
// @Success 201 {object} domain.SupplierPayment
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier-payments [post]
func (h *supplierHandler) createPayment(c *gin.Context) {
	var req dto.SupplierPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.paymentService.CreateSupplierPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create supplier payment")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Supplier payment recorded",
		slog.String("payment_id", p.PaymentID),
		slog.String("supplier_id", p.SupplierID))
	c.JSON(http.StatusCreated, p)
}

// listPayments godoc
// @Summary List supplier payments
// @Tags supplier-payments
// @Produce json
// @Success 200 {array} domain.SupplierPayment
// @Security BearerAuth
// @Router /supplier-payments [get]
func (h *supplierHandler) listPayments(c *gin.Context) {
	list, err := h.paymentService.ListSupplierPayments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list supplier payments")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getPayment godoc
// @Summary Get a supplier payment by ID
// @Tags supplier-payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.SupplierPayment
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier-payments/{id} [get]
func (h *supplierHandler) getPayment(c *gin.Context) {
	p, err := h.paymentService.GetSupplierPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier payment")
		return
	}
	c.JSON(http.StatusOK, p)
}

// updatePayment godoc
// @Summary Update a supplier payment
// @Tags supplier-payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.SupplierPaymentRequest true "Payment"
// @Success 200 {object} domain.SupplierPayment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier-payments/{id} [put]
func (h *supplierHandler) updatePayment(c *gin.Context) {
	var req dto.SupplierPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.paymentService.UpdateSupplierPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update supplier payment")
		return
	}
	c.JSON(http.StatusOK, p)
}

// deletePayment godoc
// @Summary Delete a supplier payment
// @Tags supplier-payments
// @Param id path string true "Payment ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /supplier-payments/{id} [delete]
func (h *supplierHandler) deletePayment(c *gin.Context) {
	if err := h.paymentService.DeleteSupplierPayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete supplier payment")
		return
	}
	c.Status(http.StatusNoContent)
}
