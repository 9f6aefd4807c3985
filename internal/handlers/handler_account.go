package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/middleware"
)

// AccountHandler serves the lending-accounts endpoints.
type AccountHandler struct {
	service portssvc.AccountSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{service: service}
}

func registerAccountRoutes(rg *gin.RouterGroup, service portssvc.AccountSvcFacade) {
	h := NewAccountHandler(service)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.List)
		accounts.POST("", h.Create)
		accounts.GET("/:id", h.Get)
		accounts.POST("/:id/transactions", h.AddTransaction)
		accounts.DELETE("/:id/transactions/:txnId", h.DeleteTransaction)
	}
}

// List godoc
// @Summary List lending accounts
// @Description Returns the user's accounts with server-computed summaries; transaction histories are omitted.
// @Tags accounts
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.AccountResponse}
// @Failure 401 {object} dto.MessageResponse
// @Router /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	accounts, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToAccountResponseList(accounts))
}

// Create godoc
// @Summary Create lending account
// @Description Opens an account and records its opening principal entry.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account"
// @Success 201 {object} dto.DataResponse{data=dto.AccountResponse}
// @Failure 400 {object} dto.MessageResponse
// @Router /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	account, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToAccountResponse(account))
}

// Get godoc
// @Summary Account detail
// @Description Returns one account with its full entry history, newest first.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.DataResponse{data=dto.AccountResponse}
// @Failure 404 {object} dto.MessageResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	account, err := h.service.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToAccountResponse(account))
}

// AddTransaction godoc
// @Summary Add account entry
// @Description Records a new entry; the type must match the account side (borrow/repay vs lent/received).
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param transaction body dto.CreateTransactionRequest true "Entry"
// @Success 201 {object} dto.DataResponse{data=dto.AccountResponse}
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /accounts/{id}/transactions [post]
func (h *AccountHandler) AddTransaction(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	account, err := h.service.AddTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, dto.ToAccountResponse(account))
}

// DeleteTransaction godoc
// @Summary Delete account entry
// @Description Removes one entry and returns the account with its recomputed summary.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param txnId path string true "Transaction ID"
// @Success 200 {object} dto.DataResponse{data=dto.AccountResponse}
// @Failure 404 {object} dto.MessageResponse
// @Router /accounts/{id}/transactions/{txnId} [delete]
func (h *AccountHandler) DeleteTransaction(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	account, err := h.service.DeleteTransaction(c.Request.Context(), userID, c.Param("id"), c.Param("txnId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, dto.ToAccountResponse(account))
}
