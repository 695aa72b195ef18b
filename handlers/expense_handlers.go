package handlers

import (
	"splitledger/middleware"
	"splitledger/models"
	"splitledger/utils"

	"github.com/gin-gonic/gin"
)

// AddExpense handles POST /groups/:id/expenses
func (h *Handlers) AddExpense(c *gin.Context) {
	var request models.AddExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := h.ExpenseService.AddGroupExpense(c.Param("id"), middleware.CurrentUser(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// ListExpenses handles GET /groups/:id/expenses
func (h *Handlers) ListExpenses(c *gin.Context) {
	result, err := h.ExpenseService.ListExpenses(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// GetBalance handles GET /groups/:id/balance
func (h *Handlers) GetBalance(c *gin.Context) {
	result, err := h.SettlementService.GetGroupBalance(c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// GetLedgerEntries handles GET /users/me/ledger
func (h *Handlers) GetLedgerEntries(c *gin.Context) {
	entries, err := h.ExpenseService.GetLedgerEntries(middleware.CurrentUser(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, entries)
}
