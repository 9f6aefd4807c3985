package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// ExpenseHandler serves the expense endpoints.
type ExpenseHandler struct {
	service portssvc.ExpenseSvcFacade
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(service portssvc.ExpenseSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

func registerExpenseRoutes(rg *gin.RouterGroup, service portssvc.ExpenseSvcFacade) {
	h := NewExpenseHandler(service)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.List)
		expenses.POST("", h.Create)
		expenses.PUT("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
		expenses.GET("/stats", h.Stats)
	}
}

// List godoc
// @Summary List expenses
// @Description Returns the user's expenses, newest first, with reference names embedded.
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.ExpenseResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	expenses, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToExpenseResponseList(expenses))
}

// Create godoc
// @Summary Create expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.SaveExpenseRequest true "Expense"
// @Success 201 {object} dto.DataResponse{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.MessageResponse
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.SaveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToExpenseResponse(expense))
}

// Update godoc
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.SaveExpenseRequest true "Expense"
// @Success 200 {object} dto.DataResponse{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.SaveExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToExpenseResponse(expense))
}

// Delete godoc
// @Summary Delete expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}

// Stats godoc
// @Summary Expense stats by payment method
// @Description Returns per-payment-method credit and debit totals for the dashboard.
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.DataResponse{data=dto.ExpenseStatsResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /expenses/stats [get]
func (h *ExpenseHandler) Stats(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToExpenseStatsResponse(stats))
}
