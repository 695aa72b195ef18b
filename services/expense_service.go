package services

import (
	"fmt"

	"splitledger/models"
	"splitledger/repository"
	"splitledger/utils"
)

// ExpenseService is the ledger writer: it validates a shared expense,
// resolves its split lines, and hands the whole write to the store as one
// atomic unit.
type ExpenseService struct {
	groupService *GroupService
	store        ExpenseStore
	splitService *SplitService
}

// NewExpenseService creates a new expense service
func NewExpenseService(groupService *GroupService, store ExpenseStore, splitService *SplitService) *ExpenseService {
	return &ExpenseService{
		groupService: groupService,
		store:        store,
		splitService: splitService,
	}
}

// AddGroupExpense records a shared expense paid by the requester. The split
// lines, the group-total increment, and one ledger entry per split line are
// persisted together or not at all. Nothing is written when validation
// fails. Returns the updated group.
func (s *ExpenseService) AddGroupExpense(groupID, requesterID string, req *models.AddExpenseRequest) (*models.Group, error) {
	if err := utils.ValidateRequired(req.Description, "description"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	group, err := s.groupService.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	participants := make([]string, len(group.Members))
	for i, member := range group.Members {
		participants[i] = member.UserID
	}

	lines, err := s.splitService.ComputeSplit(req.Amount, req.SplitType, participants, req.SplitAmong)
	if err != nil {
		return nil, err
	}

	expense := models.NewGroupExpense(utils.GenerateID(), groupID, req.Description, req.Amount, requesterID, lines)

	entries := make([]*models.LedgerEntry, len(lines))
	for i, line := range lines {
		entries[i] = &models.LedgerEntry{
			ID:             utils.GenerateID(),
			CreationTime:   expense.CreationTime,
			UserID:         line.UserID,
			GroupID:        groupID,
			ExpenseID:      expense.ID,
			Amount:         line.Amount,
			Description:    fmt.Sprintf("%s (%s)", req.Description, group.Name),
			Category:       utils.LedgerCategoryOthers,
			IsGroupExpense: true,
		}
	}

	updated, err := s.store.AddGroupExpense(expense, entries)
	if err != nil {
		switch err {
		case repository.ErrGroupNotFound:
			return nil, utils.NewNotFoundError("Group")
		case repository.ErrNotAMember:
			return nil, utils.NewForbiddenError(utils.ErrNotAMember)
		case repository.ErrSplitTargetNotMember:
			return nil, utils.NewValidationError("split references a user who is not a group member")
		default:
			return nil, utils.NewInternalError(utils.ErrFailedToStore)
		}
	}

	return updated, nil
}

// ListExpenses returns a group's expense history with the running total,
// for a requesting member
func (s *ExpenseService) ListExpenses(groupID, requesterID string) (*models.ExpenseListResponse, error) {
	group, err := s.groupService.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.GetExpenses(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve expenses")
	}
	if expenses == nil {
		expenses = []*models.GroupExpense{}
	}

	return &models.ExpenseListResponse{
		Expenses:     expenses,
		TotalExpense: group.TotalExpense,
	}, nil
}

// GetLedgerEntries returns a user's materialized ledger entries across groups
func (s *ExpenseService) GetLedgerEntries(userID string) ([]*models.LedgerEntry, error) {
	entries, err := s.store.GetLedgerEntriesForUser(userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve ledger entries")
	}
	if entries == nil {
		entries = []*models.LedgerEntry{}
	}
	return entries, nil
}
