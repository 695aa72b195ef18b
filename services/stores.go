package services

import "splitledger/models"

// GroupStore is the persistence surface the group service depends on.
// *repository.GroupRepository satisfies it.
type GroupStore interface {
	StoreGroup(group *models.Group) error
	GetGroupByID(groupID string) (*models.Group, error)
	ListGroupsForUser(userID string) ([]*models.Group, error)
	UpdateGroupInfo(groupID, name, description string) error
	AddMember(groupID string, member models.GroupMember) error
	RemoveMember(groupID, userID string) error
	DeactivateGroup(groupID string) error
}

// ExpenseStore is the persistence surface the expense service depends on.
// *repository.ExpenseRepository satisfies it.
type ExpenseStore interface {
	AddGroupExpense(expense *models.GroupExpense, entries []*models.LedgerEntry) (*models.Group, error)
	GetExpenses(groupID string) ([]*models.GroupExpense, error)
	GetLedgerEntriesForUser(userID string) ([]*models.LedgerEntry, error)
}

// PaymentStore is the persistence surface the payment service depends on.
// *repository.PaymentRepository satisfies it.
type PaymentStore interface {
	CreatePayment(payment *models.Payment) error
	GetPaymentsByGroupID(groupID string) ([]models.Payment, error)
}
