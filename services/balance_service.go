package services

import (
	"fmt"

	"splitledger/models"
	"splitledger/utils"
)

// BalanceService derives per-member balances from a group's expense history
type BalanceService struct{}

// NewBalanceService creates a new balance service
func NewBalanceService() *BalanceService {
	return &BalanceService{}
}

// ComputeBalances folds the expense history into per-user paid/owed totals
// and net balances. Current members are initialized to zero so they appear
// even with no activity; users referenced only by historical split lines
// (members since removed) get entries lazily. The fold is pure: the same
// snapshot always yields the same result, in member order followed by
// first-seen order for historical users.
func (s *BalanceService) ComputeBalances(members []models.GroupMember, expenses []*models.GroupExpense) ([]models.Balance, error) {
	byUser := make(map[string]*models.Balance)
	var order []string

	track := func(userID string) *models.Balance {
		if b, exists := byUser[userID]; exists {
			return b
		}
		b := &models.Balance{UserID: userID}
		byUser[userID] = b
		order = append(order, userID)
		return b
	}

	for _, member := range members {
		track(member.UserID)
	}

	for _, expense := range expenses {
		if expense.Amount <= 0 {
			return nil, fmt.Errorf("expense %s has non-positive amount %.2f", expense.ID, expense.Amount)
		}
		track(expense.PaidBy).TotalPaid += expense.Amount
		for _, line := range expense.SplitAmong {
			track(line.UserID).TotalOwed += line.Amount
		}
	}

	balances := make([]models.Balance, 0, len(order))
	for _, userID := range order {
		b := byUser[userID]
		b.TotalPaid = utils.Round(b.TotalPaid)
		b.TotalOwed = utils.Round(b.TotalOwed)
		b.Balance = utils.Round(b.TotalPaid - b.TotalOwed)
		balances = append(balances, *b)
	}

	return balances, nil
}
