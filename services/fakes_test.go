package services

import (
	"errors"

	"splitledger/models"
	"splitledger/repository"
)

// fakeGroupStore is an in-memory GroupStore for service tests
type fakeGroupStore struct {
	groups map[string]*models.Group
}

func newFakeGroupStore(groups ...*models.Group) *fakeGroupStore {
	s := &fakeGroupStore{groups: make(map[string]*models.Group)}
	for _, g := range groups {
		s.groups[g.ID] = g
	}
	return s
}

func (s *fakeGroupStore) StoreGroup(group *models.Group) error {
	s.groups[group.ID] = group
	return nil
}

func (s *fakeGroupStore) GetGroupByID(groupID string) (*models.Group, error) {
	group, ok := s.groups[groupID]
	if !ok || !group.IsActive {
		return nil, repository.ErrGroupNotFound
	}
	return group, nil
}

func (s *fakeGroupStore) ListGroupsForUser(userID string) ([]*models.Group, error) {
	var result []*models.Group
	for _, group := range s.groups {
		if !group.IsActive {
			continue
		}
		for _, member := range group.Members {
			if member.UserID == userID {
				result = append(result, group)
				break
			}
		}
	}
	return result, nil
}

func (s *fakeGroupStore) UpdateGroupInfo(groupID, name, description string) error {
	group, ok := s.groups[groupID]
	if !ok || !group.IsActive {
		return repository.ErrGroupNotFound
	}
	group.Name = name
	group.Description = description
	return nil
}

func (s *fakeGroupStore) AddMember(groupID string, member models.GroupMember) error {
	group, ok := s.groups[groupID]
	if !ok || !group.IsActive {
		return repository.ErrGroupNotFound
	}
	for _, m := range group.Members {
		if m.UserID == member.UserID {
			return repository.ErrDuplicateMember
		}
	}
	group.Members = append(group.Members, member)
	return nil
}

func (s *fakeGroupStore) RemoveMember(groupID, userID string) error {
	group, ok := s.groups[groupID]
	if !ok || !group.IsActive {
		return repository.ErrGroupNotFound
	}
	if len(group.Members) <= 1 {
		return repository.ErrLastMember
	}
	for i, m := range group.Members {
		if m.UserID == userID {
			group.Members = append(group.Members[:i], group.Members[i+1:]...)
			s.ensureAdmin(group)
			return nil
		}
	}
	return repository.ErrNotAMember
}

func (s *fakeGroupStore) ensureAdmin(group *models.Group) {
	for _, m := range group.Members {
		if m.Role == models.RoleAdmin {
			return
		}
	}
	if len(group.Members) > 0 {
		group.Members[0].Role = models.RoleAdmin
	}
}

func (s *fakeGroupStore) DeactivateGroup(groupID string) error {
	group, ok := s.groups[groupID]
	if !ok || !group.IsActive {
		return repository.ErrGroupNotFound
	}
	group.IsActive = false
	return nil
}

// fakeExpenseStore is an in-memory ExpenseStore. Setting failErr makes the
// transactional write fail without touching any state, mimicking a rollback.
type fakeExpenseStore struct {
	groupStore *fakeGroupStore
	expenses   map[string][]*models.GroupExpense
	entries    []*models.LedgerEntry
	addCalls   int
	failErr    error
}

func newFakeExpenseStore(groupStore *fakeGroupStore) *fakeExpenseStore {
	return &fakeExpenseStore{
		groupStore: groupStore,
		expenses:   make(map[string][]*models.GroupExpense),
	}
}

func (s *fakeExpenseStore) AddGroupExpense(expense *models.GroupExpense, entries []*models.LedgerEntry) (*models.Group, error) {
	s.addCalls++
	if s.failErr != nil {
		return nil, s.failErr
	}
	group, ok := s.groupStore.groups[expense.GroupID]
	if !ok || !group.IsActive {
		return nil, repository.ErrGroupNotFound
	}
	s.expenses[expense.GroupID] = append(s.expenses[expense.GroupID], expense)
	s.entries = append(s.entries, entries...)
	group.TotalExpense += expense.Amount
	return group, nil
}

func (s *fakeExpenseStore) GetExpenses(groupID string) ([]*models.GroupExpense, error) {
	return s.expenses[groupID], nil
}

func (s *fakeExpenseStore) GetLedgerEntriesForUser(userID string) ([]*models.LedgerEntry, error) {
	var result []*models.LedgerEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

// fakePaymentStore is an in-memory PaymentStore
type fakePaymentStore struct {
	payments map[string][]models.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[string][]models.Payment)}
}

func (s *fakePaymentStore) CreatePayment(payment *models.Payment) error {
	s.payments[payment.GroupID] = append(s.payments[payment.GroupID], *payment)
	return nil
}

func (s *fakePaymentStore) GetPaymentsByGroupID(groupID string) ([]models.Payment, error) {
	return s.payments[groupID], nil
}

var errStorageDown = errors.New("storage unavailable")
