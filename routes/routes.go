package routes

import (
	"net/http"

	"splitledger/handlers"
	"splitledger/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	h := handlers.NewHandlers()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireIdentity())
	{
		// Group endpoints
		v1.POST("/groups", h.CreateGroup)
		v1.GET("/groups", h.ListGroups)
		v1.GET("/groups/:id", h.GetGroup)
		v1.PATCH("/groups/:id", h.UpdateGroup)
		v1.DELETE("/groups/:id", h.DeleteGroup)

		// Membership endpoints
		v1.POST("/groups/:id/members", h.AddMember)
		v1.DELETE("/groups/:id/members/:userId", h.RemoveMember)

		// Expense and balance endpoints
		v1.POST("/groups/:id/expenses", h.AddExpense)
		v1.GET("/groups/:id/expenses", h.ListExpenses)
		v1.GET("/groups/:id/balance", h.GetBalance)

		// Settle-up payment endpoints
		v1.POST("/groups/:id/payments", h.CreatePayment)
		v1.GET("/groups/:id/payments", h.ListPayments)

		// Ledger and export endpoints
		v1.GET("/users/me/ledger", h.GetLedgerEntries)
		v1.GET("/groups/:id/export", h.ExportGroup)
	}
}
