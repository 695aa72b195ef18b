package services

import (
	"testing"
	"time"

	"splitledger/models"

	"github.com/stretchr/testify/assert"
)

func membersOf(userIDs ...string) []models.GroupMember {
	members := make([]models.GroupMember, len(userIDs))
	for i, id := range userIDs {
		role := models.RoleMember
		if i == 0 {
			role = models.RoleAdmin
		}
		members[i] = models.GroupMember{UserID: id, Role: role, JoinedAt: time.Now()}
	}
	return members
}

func TestBalanceService_DinnerScenario(t *testing.T) {
	service := NewBalanceService()
	members := membersOf("alice", "bob", "carol")

	expenses := []*models.GroupExpense{
		{
			ID:     "e1",
			Amount: 300,
			PaidBy: "alice",
			SplitAmong: []models.SplitLine{
				{UserID: "alice", Amount: 100},
				{UserID: "bob", Amount: 100},
				{UserID: "carol", Amount: 100},
			},
		},
	}

	balances, err := service.ComputeBalances(members, expenses)

	assert.NoError(t, err)
	assert.Len(t, balances, 3)

	assert.Equal(t, "alice", balances[0].UserID)
	assert.Equal(t, 300.0, balances[0].TotalPaid)
	assert.Equal(t, 100.0, balances[0].TotalOwed)
	assert.Equal(t, 200.0, balances[0].Balance)

	assert.Equal(t, -100.0, balances[1].Balance)
	assert.Equal(t, -100.0, balances[2].Balance)
}

func TestBalanceService_Conservation(t *testing.T) {
	service := NewBalanceService()
	members := membersOf("a", "b", "c", "d")

	expenses := []*models.GroupExpense{
		{ID: "e1", Amount: 120, PaidBy: "a", SplitAmong: []models.SplitLine{
			{UserID: "a", Amount: 30}, {UserID: "b", Amount: 30}, {UserID: "c", Amount: 30}, {UserID: "d", Amount: 30},
		}},
		{ID: "e2", Amount: 75.5, PaidBy: "b", SplitAmong: []models.SplitLine{
			{UserID: "c", Amount: 40.25}, {UserID: "d", Amount: 35.25},
		}},
		{ID: "e3", Amount: 18.99, PaidBy: "d", SplitAmong: []models.SplitLine{
			{UserID: "a", Amount: 6.33}, {UserID: "b", Amount: 6.33}, {UserID: "d", Amount: 6.33},
		}},
	}

	balances, err := service.ComputeBalances(members, expenses)

	assert.NoError(t, err)
	var sum float64
	for _, b := range balances {
		sum += b.Balance
	}
	assert.InDelta(t, 0, sum, 0.01, "balances must conserve to zero")
}

func TestBalanceService_HistoricalSplitTargets(t *testing.T) {
	service := NewBalanceService()
	// dave has since been removed from the group but appears in history
	members := membersOf("alice", "bob")

	expenses := []*models.GroupExpense{
		{ID: "e1", Amount: 90, PaidBy: "alice", SplitAmong: []models.SplitLine{
			{UserID: "alice", Amount: 30}, {UserID: "bob", Amount: 30}, {UserID: "dave", Amount: 30},
		}},
	}

	balances, err := service.ComputeBalances(members, expenses)

	assert.NoError(t, err)
	assert.Len(t, balances, 3)
	assert.Equal(t, "dave", balances[2].UserID)
	assert.Equal(t, -30.0, balances[2].Balance)
}

func TestBalanceService_MembersWithNoActivity(t *testing.T) {
	service := NewBalanceService()
	members := membersOf("alice", "bob")

	balances, err := service.ComputeBalances(members, nil)

	assert.NoError(t, err)
	assert.Len(t, balances, 2)
	for _, b := range balances {
		assert.Zero(t, b.TotalPaid)
		assert.Zero(t, b.TotalOwed)
		assert.Zero(t, b.Balance)
	}
}

func TestBalanceService_Idempotent(t *testing.T) {
	service := NewBalanceService()
	members := membersOf("a", "b", "c")

	expenses := []*models.GroupExpense{
		{ID: "e1", Amount: 100, PaidBy: "a", SplitAmong: []models.SplitLine{
			{UserID: "a", Amount: 33.33}, {UserID: "b", Amount: 33.33}, {UserID: "c", Amount: 33.33},
		}},
	}

	first, err := service.ComputeBalances(members, expenses)
	assert.NoError(t, err)
	second, err := service.ComputeBalances(members, expenses)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBalanceService_RejectsNonPositiveExpense(t *testing.T) {
	service := NewBalanceService()
	members := membersOf("a")

	expenses := []*models.GroupExpense{
		{ID: "bad", Amount: 0, PaidBy: "a"},
	}

	_, err := service.ComputeBalances(members, expenses)
	assert.Error(t, err)
}
