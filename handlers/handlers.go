package handlers

import (
	"splitledger/repository"
	"splitledger/services"
)

// Handlers bundles all service dependencies for the HTTP layer
type Handlers struct {
	GroupService      *services.GroupService
	ExpenseService    *services.ExpenseService
	SettlementService *services.SettlementService
	PaymentService    *services.PaymentService
	ExcelService      *services.ExcelService
}

// NewHandlers wires repositories and services together
func NewHandlers() *Handlers {
	groupService := services.NewGroupService(repository.NewGroupRepository())
	expenseStore := repository.NewExpenseRepository()
	splitService := services.NewSplitService()
	expenseService := services.NewExpenseService(groupService, expenseStore, splitService)
	paymentService := services.NewPaymentService(repository.NewPaymentRepository(), groupService)
	settlementService := services.NewSettlementService(groupService, expenseStore, paymentService, services.NewBalanceService())
	excelService := services.NewExcelService(groupService, expenseService, settlementService, paymentService)

	return &Handlers{
		GroupService:      groupService,
		ExpenseService:    expenseService,
		SettlementService: settlementService,
		PaymentService:    paymentService,
		ExcelService:      excelService,
	}
}
