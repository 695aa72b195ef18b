package services

import (
	"fmt"
	"sort"

	"splitledger/models"
	"splitledger/utils"
)

// SettlementService reduces member balances to a list of settling transfers
type SettlementService struct {
	groupService   *GroupService
	expenseStore   ExpenseStore
	paymentService *PaymentService
	balanceService *BalanceService
}

// NewSettlementService creates a new settlement service
func NewSettlementService(groupService *GroupService, expenseStore ExpenseStore, paymentService *PaymentService, balanceService *BalanceService) *SettlementService {
	return &SettlementService{
		groupService:   groupService,
		expenseStore:   expenseStore,
		paymentService: paymentService,
		balanceService: balanceService,
	}
}

// GetGroupBalance computes balances and settlements for a group from a
// single snapshot of its expense history. Recorded settle-up payments are
// applied to the net balances before solving.
func (s *SettlementService) GetGroupBalance(groupID, requesterID string) (*models.BalanceResult, error) {
	group, err := s.groupService.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseStore.GetExpenses(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve expenses")
	}

	balances, err := s.balanceService.ComputeBalances(group.Members, expenses)
	if err != nil {
		return nil, utils.NewInternalError(err.Error())
	}

	payments, err := s.paymentService.ListPaymentsInternal(groupID)
	if err != nil {
		return nil, err
	}
	balances = ApplyPayments(balances, payments)

	settlements, err := s.ComputeSettlements(balances)
	if err != nil {
		return nil, err
	}

	return &models.BalanceResult{
		Balances:    balances,
		Settlements: settlements,
	}, nil
}

// personBalance pairs a user with an outstanding (positive) magnitude
type personBalance struct {
	UserID string
	Amount float64
}

// ComputeSettlements matches debtors against creditors greedily, largest
// outstanding amount first. Ties are broken by the input order of the
// balances, which follows group member order, so the output is
// deterministic. The result zeroes every balance within the money epsilon
// but is not guaranteed to be the globally minimal transfer count.
func (s *SettlementService) ComputeSettlements(balances []models.Balance) ([]models.Settlement, error) {
	var debtors, creditors []personBalance
	for _, b := range balances {
		if b.TotalPaid < 0 || b.TotalOwed < 0 {
			return nil, fmt.Errorf("malformed balance for %s: paid=%.2f owed=%.2f", b.UserID, b.TotalPaid, b.TotalOwed)
		}
		switch {
		case b.Balance < -utils.MoneyEpsilon:
			debtors = append(debtors, personBalance{UserID: b.UserID, Amount: -b.Balance})
		case b.Balance > utils.MoneyEpsilon:
			creditors = append(creditors, personBalance{UserID: b.UserID, Amount: b.Balance})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Amount > debtors[j].Amount
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Amount > creditors[j].Amount
	})

	settlements := []models.Settlement{}

	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := utils.Round(utils.Min(debtors[i].Amount, creditors[j].Amount))

		if amount > 0 {
			settlements = append(settlements, models.Settlement{
				From:   debtors[i].UserID,
				To:     creditors[j].UserID,
				Amount: amount,
			})
		}

		debtors[i].Amount -= amount
		creditors[j].Amount -= amount

		if debtors[i].Amount < utils.MoneyEpsilon {
			i++
		}
		if creditors[j].Amount < utils.MoneyEpsilon {
			j++
		}
	}

	return settlements, nil
}

// ApplyPayments adjusts net balances for recorded settle-up transfers:
// the payer's balance rises, the receiver's falls. Paid/owed totals stay
// expense-derived.
func ApplyPayments(balances []models.Balance, payments []models.Payment) []models.Balance {
	if len(payments) == 0 {
		return balances
	}

	adjusted := make([]models.Balance, len(balances))
	copy(adjusted, balances)

	index := make(map[string]int, len(adjusted))
	for i, b := range adjusted {
		index[b.UserID] = i
	}

	for _, payment := range payments {
		if i, ok := index[payment.FromUser]; ok {
			adjusted[i].Balance = utils.Round(adjusted[i].Balance + payment.Amount)
		}
		if i, ok := index[payment.ToUser]; ok {
			adjusted[i].Balance = utils.Round(adjusted[i].Balance - payment.Amount)
		}
	}

	return adjusted
}
