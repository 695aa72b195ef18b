// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"splitledger/models"
)

// ExpenseRepository handles database operations for group expenses and
// the per-member ledger entries materialized from them.
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

// AddGroupExpense appends a group expense, its split lines, the matching
// ledger entries, and the group-total increment in a single transaction.
// The group row is locked for the duration, so concurrent writers to the
// same group serialize while writers to other groups proceed. Membership
// of the payer and of every split target is re-checked under the lock.
func (r *ExpenseRepository) AddGroupExpense(expense *models.GroupExpense, entries []*models.LedgerEntry) (*models.Group, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	var group models.Group
	err = tx.QueryRow(
		`SELECT id, name, description, created_by, total_expense, is_active, creation_time
         FROM groups WHERE id = $1 AND is_active = TRUE FOR UPDATE`,
		expense.GroupID,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy,
		&group.TotalExpense, &group.IsActive, &group.CreationTime)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to lock group: %v", err)
	}

	memberRows, err := tx.Query(
		"SELECT user_id FROM group_members WHERE group_id = $1",
		expense.GroupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	members := make(map[string]bool)
	for memberRows.Next() {
		var userID string
		if err := memberRows.Scan(&userID); err != nil {
			memberRows.Close()
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		members[userID] = true
	}
	memberRows.Close()

	if !members[expense.PaidBy] {
		return nil, ErrNotAMember
	}
	for _, line := range expense.SplitAmong {
		if !members[line.UserID] {
			return nil, ErrSplitTargetNotMember
		}
	}

	_, err = tx.Exec(
		`INSERT INTO group_expenses (id, group_id, description, amount, paid_by, expense_date, creation_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		expense.ID, expense.GroupID, expense.Description, expense.Amount,
		expense.PaidBy, expense.Date, expense.CreationTime,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %v", err)
	}

	for _, line := range expense.SplitAmong {
		_, err = tx.Exec(
			"INSERT INTO expense_splits (expense_id, user_id, amount) VALUES ($1, $2, $3)",
			expense.ID, line.UserID, line.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert split line: %v", err)
		}
	}

	err = tx.QueryRow(
		"UPDATE groups SET total_expense = total_expense + $1 WHERE id = $2 RETURNING total_expense",
		expense.Amount, expense.GroupID,
	).Scan(&group.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to update group total: %v", err)
	}

	for _, entry := range entries {
		_, err = tx.Exec(
			`INSERT INTO ledger_entries
             (id, user_id, group_id, expense_id, amount, description, category, is_group_expense, creation_time)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			entry.ID, entry.UserID, entry.GroupID, entry.ExpenseID, entry.Amount,
			entry.Description, entry.Category, entry.IsGroupExpense, entry.CreationTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert ledger entry: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit expense: %v", err)
	}

	memberList, err := loadMembers(r.DB, expense.GroupID)
	if err != nil {
		return nil, err
	}
	group.Members = memberList

	return &group, nil
}

// GetExpenses retrieves all expenses for a group with their split lines,
// oldest first
func (r *ExpenseRepository) GetExpenses(groupID string) ([]*models.GroupExpense, error) {
	rows, err := r.DB.Query(
		`SELECT id, group_id, description, amount, paid_by, expense_date, creation_time
         FROM group_expenses WHERE group_id = $1 ORDER BY creation_time ASC, id ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.GroupExpense
	byID := make(map[string]*models.GroupExpense)
	for rows.Next() {
		var expense models.GroupExpense
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount,
			&expense.PaidBy, &expense.Date, &expense.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, &expense)
		byID[expense.ID] = &expense
	}

	splitRows, err := r.DB.Query(
		`SELECT s.expense_id, s.user_id, s.amount
         FROM expense_splits s
         JOIN group_expenses e ON e.id = s.expense_id
         WHERE e.group_id = $1
         ORDER BY s.expense_id, s.user_id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get split lines: %v", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var expenseID string
		var line models.SplitLine
		if err := splitRows.Scan(&expenseID, &line.UserID, &line.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan split line: %v", err)
		}
		if expense, ok := byID[expenseID]; ok {
			expense.SplitAmong = append(expense.SplitAmong, line)
		}
	}

	return expenses, nil
}

// GetLedgerEntriesForUser retrieves a user's materialized ledger entries,
// newest first
func (r *ExpenseRepository) GetLedgerEntriesForUser(userID string) ([]*models.LedgerEntry, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, group_id, expense_id, amount, description, category, is_group_expense, creation_time
         FROM ledger_entries WHERE user_id = $1 ORDER BY creation_time DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %v", err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.GroupID, &entry.ExpenseID,
			&entry.Amount, &entry.Description, &entry.Category,
			&entry.IsGroupExpense, &entry.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %v", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
