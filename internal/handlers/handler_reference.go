package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// ReferenceHandler serves one reference-data collection. The categories,
// payment-methods and amount-types routes all mount this handler against
// their own service.
type ReferenceHandler struct {
	service portssvc.ReferenceSvcFacade
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(service portssvc.ReferenceSvcFacade) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// registerReferenceRoutes mounts the CRUD routes for one collection under
// the given path segment.
func registerReferenceRoutes(rg *gin.RouterGroup, path string, service portssvc.ReferenceSvcFacade) {
	h := NewReferenceHandler(service)

	refs := rg.Group(path)
	{
		refs.GET("", h.List)
		refs.POST("", h.Create)
		refs.PUT("/:id", h.Update)
		refs.PATCH("/:id/status", h.UpdateStatus)
		refs.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary List reference entities
// @Description Returns all entities of the collection, active and inactive.
// @Tags references
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ReferenceResponse}
// @Failure 401 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /categories [get]
func (h *ReferenceHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	refs, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToReferenceResponseList(refs))
}

// Create godoc
// @Summary Create reference entity
// @Description Creates an entity in the collection. The name is normalized to Title Case.
// @Tags references
// @Accept json
// @Produce json
// @Param reference body dto.CreateReferenceRequest true "Entity Name"
// @Success 201 {object} dto.DataResponse{data=dto.ReferenceResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 409 {object} dto.MessageResponse
// @Router /categories [post]
func (h *ReferenceHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	ref, err := h.service.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToReferenceResponse(ref))
}

// Update godoc
// @Summary Rename reference entity
// @Tags references
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param reference body dto.UpdateReferenceRequest true "New Name"
// @Success 200 {object} dto.DataResponse{data=dto.ReferenceResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /categories/{id} [put]
func (h *ReferenceHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	ref, err := h.service.Rename(c.Request.Context(), userID, c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToReferenceResponse(ref))
}

// UpdateStatus godoc
// @Summary Toggle reference entity status
// @Description Sets the entity active or inactive. Inactive entities keep their history but leave pickers.
// @Tags references
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param status body dto.UpdateStatusRequest true "New Status"
// @Success 200 {object} dto.DataResponse{data=dto.ReferenceResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /categories/{id}/status [patch]
func (h *ReferenceHandler) UpdateStatus(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	ref, err := h.service.SetStatus(c.Request.Context(), userID, c.Param("id"), domain.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToReferenceResponse(ref))
}

// Delete godoc
// @Summary Delete reference entity
// @Tags references
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /categories/{id} [delete]
func (h *ReferenceHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.service.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}
