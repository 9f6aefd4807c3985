package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// SavingHandler serves the savings endpoints.
type SavingHandler struct {
	service portssvc.SavingSvcFacade
}

// NewSavingHandler creates a new SavingHandler.
func NewSavingHandler(service portssvc.SavingSvcFacade) *SavingHandler {
	return &SavingHandler{service: service}
}

func registerSavingRoutes(rg *gin.RouterGroup, service portssvc.SavingSvcFacade) {
	h := NewSavingHandler(service)

	savings := rg.Group("/savings")
	{
		savings.GET("", h.List)
		savings.POST("", h.Create)
		savings.PUT("/:id", h.Update)
		savings.DELETE("/:id", h.Delete)
		savings.GET("/total", h.Total)
	}
}

// List godoc
// @Summary List savings
// @Tags savings
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.SavingResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /savings [get]
func (h *SavingHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	savings, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToSavingResponseList(savings))
}

// Create godoc
// @Summary Create saving
// @Tags savings
// @Accept json
// @Produce json
// @Param saving body dto.SaveSavingRequest true "Saving"
// @Success 201 {object} dto.DataResponse{data=dto.SavingResponse}
// @Failure 400 {object} dto.MessageResponse
// @Router /savings [post]
func (h *SavingHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.SaveSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	saving, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToSavingResponse(saving))
}

// Update godoc
// @Summary Update saving
// @Tags savings
// @Accept json
// @Produce json
// @Param id path string true "Saving ID"
// @Param saving body dto.SaveSavingRequest true "Saving"
// @Success 200 {object} dto.DataResponse{data=dto.SavingResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /savings/{id} [put]
func (h *SavingHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.SaveSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	saving, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToSavingResponse(saving))
}

// Delete godoc
// @Summary Delete saving
// @Tags savings
// @Produce json
// @Param id path string true "Saving ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /savings/{id} [delete]
func (h *SavingHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}

// Total godoc
// @Summary Total savings
// @Description Returns the sum of all saving amounts for the user.
// @Tags savings
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.SavingsTotalResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /savings/total [get]
func (h *SavingHandler) Total(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	total, err := h.service.Total(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.SavingsTotalResponse{Total: total})
}
