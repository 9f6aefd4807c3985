package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// BalanceHandler serves the payment-method balance endpoints.
type BalanceHandler struct {
	service portssvc.BalanceSvcFacade
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(service portssvc.BalanceSvcFacade) *BalanceHandler {
	return &BalanceHandler{service: service}
}

func registerBalanceRoutes(rg *gin.RouterGroup, service portssvc.BalanceSvcFacade) {
	h := NewBalanceHandler(service)

	balances := rg.Group("/payment-method-balances")
	{
		balances.GET("", h.List)
		balances.PUT("/:id", h.Update)
	}
}

// List godoc
// @Summary List payment-method balances
// @Description Returns a balance row for every active payment method, zero when never pinned.
// @Tags balances
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.BalanceResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /payment-method-balances [get]
func (h *BalanceHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	balances, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToBalanceResponseList(balances))
}

// Update godoc
// @Summary Pin payment-method balance
// @Tags balances
// @Accept json
// @Produce json
// @Param id path string true "Payment Method ID"
// @Param balance body dto.UpdateBalanceRequest true "Balance"
// @Success 200 {object} dto.DataResponse{data=dto.BalanceResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /payment-method-balances/{id} [put]
func (h *BalanceHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	balance, err := h.service.Update(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToBalanceResponse(balance))
}
