// models/models.go
package models

import "time"

// Member roles within a group.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Split types for group expenses.
const (
	SplitTypeEqual  = "equal"
	SplitTypeCustom = "custom"
)

// Group represents a set of users sharing expenses
type Group struct {
	ID           string        `json:"id"`
	CreationTime int64         `json:"_creationTime"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	CreatedBy    string        `json:"createdBy"`
	TotalExpense float64       `json:"totalExpense"`
	IsActive     bool          `json:"isActive"`
	Members      []GroupMember `json:"members,omitempty"`
}

// GroupMember represents one user's membership in a group
type GroupMember struct {
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// GroupExpense represents a shared expense recorded against a group
type GroupExpense struct {
	ID           string      `json:"id"`
	CreationTime int64       `json:"_creationTime"`
	GroupID      string      `json:"groupId"`
	Description  string      `json:"description"`
	Amount       float64     `json:"amount"`
	PaidBy       string      `json:"paidBy"`
	Date         time.Time   `json:"date"`
	SplitAmong   []SplitLine `json:"splitAmong"`
}

// SplitLine describes one member's share of a group expense
type SplitLine struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// LedgerEntry is the immutable per-member record materialized from a split line
type LedgerEntry struct {
	ID             string `json:"id"`
	CreationTime   int64  `json:"_creationTime"`
	UserID         string `json:"userId"`
	GroupID        string `json:"groupId"`
	ExpenseID      string `json:"expenseId"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	IsGroupExpense bool    `json:"isGroupExpense"`
}

// Balance is the derived net position of one user within a group
type Balance struct {
	UserID    string  `json:"userId"`
	TotalPaid float64 `json:"totalPaid"`
	TotalOwed float64 `json:"totalOwed"`
	Balance   float64 `json:"balance"`
}

// Settlement represents a suggested transfer from one user to another
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// BalanceResult bundles balances with the settlements that would clear them
type BalanceResult struct {
	Balances    []Balance    `json:"balances"`
	Settlements []Settlement `json:"settlements"`
}

// Payment represents a recorded settle-up transfer between two members
type Payment struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	FromUser     string    `json:"fromUser"`
	ToUser       string    `json:"toUser"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description,omitempty"`
	PaymentDate  time.Time `json:"paymentDate"`
	CreationTime int64     `json:"_creationTime"`
}

// NewGroup creates a new Group whose creator is its sole admin member
func NewGroup(id, name, description, createdBy string) *Group {
	now := time.Now()
	return &Group{
		ID:           id,
		CreationTime: now.UnixMilli(),
		Name:         name,
		Description:  description,
		CreatedBy:    createdBy,
		TotalExpense: 0,
		IsActive:     true,
		Members: []GroupMember{
			{UserID: createdBy, Role: RoleAdmin, JoinedAt: now},
		},
	}
}

// NewGroupExpense creates a new GroupExpense with resolved split lines
func NewGroupExpense(id, groupID, description string, amount float64, paidBy string, splitAmong []SplitLine) *GroupExpense {
	now := time.Now()
	return &GroupExpense{
		ID:           id,
		CreationTime: now.UnixMilli(),
		GroupID:      groupID,
		Description:  description,
		Amount:       amount,
		PaidBy:       paidBy,
		Date:         now,
		SplitAmong:   splitAmong,
	}
}
