package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// personHandler handles persons and the personal advances paid to them.
type personHandler struct {
	personService  portssvc.PersonSvcFacade
	advanceService portssvc.AdvanceSvcFacade
}

func registerPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade, advanceService portssvc.AdvanceSvcFacade) {
	h := &personHandler{personService: personService, advanceService: advanceService}

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/:id", h.getPerson)
		persons.PUT("/:id", h.updatePerson)
		persons.DELETE("/:id", h.deletePerson)
	}

	advances := rg.Group("/advances")
	{
		advances.POST("", h.createAdvance)
		advances.GET("", h.listAdvances)
		advances.GET("/:id", h.getAdvance)
		advances.PUT("/:id", h.updateAdvance)
		advances.DELETE("/:id", h.deleteAdvance)
	}
}

// createPerson godoc
// @Summary Create a person
// @Tags persons
// @Accept json
// @Produce json
// @Param person body dto.PersonRequest true "Person"
// @Success 201 {object} domain.Person
// @Security BearerAuth
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	var req dto.PersonRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.personService.CreatePerson(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create person")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// listPersons godoc
// @Summary List persons
// @Tags persons
// @Produce json
// @Success 200 {array} domain.Person
// @Security BearerAuth
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	list, err := h.personService.ListPersons(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list persons")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getPerson godoc
// @Summary Get a person by ID
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} domain.Person
// @Security BearerAuth
// @Router /persons/{id} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	p, err := h.personService.GetPersonByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve person")
		return
	}
	c.JSON(http.StatusOK, p)
}

// updatePerson godoc
// @Summary Rename a person
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param person body dto.PersonRequest true "Person"
// @Success 200 {object} domain.Person
// @Security BearerAuth
// @Router /persons/{id} [put]
func (h *personHandler) updatePerson(c *gin.Context) {
	var req dto.PersonRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.personService.UpdatePerson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update person")
		return
	}
	c.JSON(http.StatusOK, p)
}

// deletePerson godoc
// @Summary Delete a person
// @Description Refused with 409 while advances reference the person.
// @Tags persons
// @Param id path string true "Person ID"
// @Success 204
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /persons/{id} [delete]
func (h *personHandler) deletePerson(c *gin.Context) {
	if err := h.personService.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete person")
		return
	}
	c.Status(http.StatusNoContent)
}

// createAdvance godoc
// @Summary Record a personal advance
// @Tags advances
// @Accept json
// @Produce json
// @Param advance body dto.AdvanceRequest true "Advance"
// @Success 201 {object} domain.Advance
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /advances [post]
func (h *personHandler) createAdvance(c *gin.Context) {
	var req dto.AdvanceRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.advanceService.CreateAdvance(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create advance")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// listAdvances godoc
// @Summary List personal advances
// @Tags advances
// @Produce json
// @Success 200 {array} domain.Advance
// @Security BearerAuth
// @Router /advances [get]
func (h *personHandler) listAdvances(c *gin.Context) {
	list, err := h.advanceService.ListAdvances(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list advances")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getAdvance godoc
// @Summary Get an advance by ID
// @Tags advances
// @Produce json
// @Param id path string true "Advance ID"
// @Success 200 {object} domain.Advance
// @Security BearerAuth
// @Router /advances/{id} [get]
func (h *personHandler) getAdvance(c *gin.Context) {
	a, err := h.advanceService.GetAdvanceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve advance")
		return
	}
	c.JSON(http.StatusOK, a)
}

// updateAdvance godoc
// @Summary Update an advance
// @Tags advances
// @Accept json
// @Produce json
// @Param id path string true "Advance ID"
// @Param advance body dto.AdvanceRequest true "Advance"
// @Success 200 {object} domain.Advance
// @Security BearerAuth
// @Router /advances/{id} [put]
func (h *personHandler) updateAdvance(c *gin.Context) {
	var req dto.AdvanceRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.advanceService.UpdateAdvance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update advance")
		return
	}
	c.JSON(http.StatusOK, a)
}

// deleteAdvance godoc
// @Summary Delete an advance
// @Tags advances
// @Param id path string true "Advance ID"
// @Success 204
// @Security BearerAuth
// @Router /advances/{id} [delete]
func (h *personHandler) deleteAdvance(c *gin.Context) {
	if err := h.advanceService.DeleteAdvance(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete advance")
		return
	}
	c.Status(http.StatusNoContent)
}
