// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"splitledger/models"
)

// GroupRepository handles database operations for groups and memberships
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		DB: GetDB(),
	}
}

// StoreGroup saves a group and its initial members to the database
func (r *GroupRepository) StoreGroup(group *models.Group) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO groups (id, name, description, created_by, total_expense, is_active, creation_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		group.ID, group.Name, group.Description, group.CreatedBy,
		group.TotalExpense, group.IsActive, group.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}

	for _, member := range group.Members {
		_, err = tx.Exec(
			"INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)",
			group.ID, member.UserID, member.Role, member.JoinedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroupByID retrieves an active group with its members.
// Soft-deleted groups are reported as not found.
func (r *GroupRepository) GetGroupByID(groupID string) (*models.Group, error) {
	var group models.Group
	err := r.DB.QueryRow(
		`SELECT id, name, description, created_by, total_expense, is_active, creation_time
         FROM groups WHERE id = $1 AND is_active = TRUE`,
		groupID,
	).Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy,
		&group.TotalExpense, &group.IsActive, &group.CreationTime)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	members, err := loadMembers(r.DB, group.ID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return &group, nil
}

// ListGroupsForUser retrieves all active groups the user is a member of
func (r *GroupRepository) ListGroupsForUser(userID string) ([]*models.Group, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name, g.description, g.created_by, g.total_expense, g.is_active, g.creation_time
         FROM groups g
         JOIN group_members m ON m.group_id = g.id
         WHERE m.user_id = $1 AND g.is_active = TRUE
         ORDER BY g.creation_time ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %v", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.CreatedBy,
			&group.TotalExpense, &group.IsActive, &group.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		groups = append(groups, &group)
	}

	for _, group := range groups {
		members, err := loadMembers(r.DB, group.ID)
		if err != nil {
			return nil, err
		}
		group.Members = members
	}

	return groups, nil
}

// UpdateGroupInfo updates a group's name and description
func (r *GroupRepository) UpdateGroupInfo(groupID, name, description string) error {
	result, err := r.DB.Exec(
		"UPDATE groups SET name = $1, description = $2 WHERE id = $3 AND is_active = TRUE",
		name, description, groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// AddMember adds a member to a group
func (r *GroupRepository) AddMember(groupID string, member models.GroupMember) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := lockGroup(tx, groupID); err != nil {
		return err
	}

	var count int
	err = tx.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND user_id = $2",
		groupID, member.UserID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check member: %v", err)
	}
	if count > 0 {
		return ErrDuplicateMember
	}

	_, err = tx.Exec(
		"INSERT INTO group_members (group_id, user_id, role, joined_at) VALUES ($1, $2, $3, $4)",
		groupID, member.UserID, member.Role, member.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %v", err)
	}

	return tx.Commit()
}

// RemoveMember removes a member from a group. If the removed member was the
// last admin, the earliest-joined remaining member is promoted so that an
// active group with members always has an admin. The last member of a group
// cannot be removed.
func (r *GroupRepository) RemoveMember(groupID, userID string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := lockGroup(tx, groupID); err != nil {
		return err
	}

	var memberCount int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1", groupID,
	).Scan(&memberCount); err != nil {
		return fmt.Errorf("failed to count members: %v", err)
	}
	if memberCount <= 1 {
		return ErrLastMember
	}

	result, err := tx.Exec(
		"DELETE FROM group_members WHERE group_id = $1 AND user_id = $2",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal result: %v", err)
	}
	if affected == 0 {
		return ErrNotAMember
	}

	var adminCount int
	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND role = 'admin'", groupID,
	).Scan(&adminCount); err != nil {
		return fmt.Errorf("failed to count admins: %v", err)
	}

	if adminCount == 0 {
		_, err = tx.Exec(
			`UPDATE group_members SET role = 'admin'
             WHERE group_id = $1 AND user_id = (
                 SELECT user_id FROM group_members
                 WHERE group_id = $1
                 ORDER BY joined_at ASC, user_id ASC
                 LIMIT 1
             )`,
			groupID,
		)
		if err != nil {
			return fmt.Errorf("failed to promote replacement admin: %v", err)
		}
	}

	return tx.Commit()
}

// DeactivateGroup soft-deletes a group
func (r *GroupRepository) DeactivateGroup(groupID string) error {
	result, err := r.DB.Exec(
		"UPDATE groups SET is_active = FALSE WHERE id = $1 AND is_active = TRUE",
		groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate group: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation result: %v", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// queryer covers *sql.DB and *sql.Tx for shared read helpers
type queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// loadMembers loads the member list for a group, ordered by join time
func loadMembers(q queryer, groupID string) ([]models.GroupMember, error) {
	rows, err := q.Query(
		"SELECT user_id, role, joined_at FROM group_members WHERE group_id = $1 ORDER BY joined_at ASC, user_id ASC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var member models.GroupMember
		if err := rows.Scan(&member.UserID, &member.Role, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// lockGroup takes a row lock on an active group so membership changes and
// expense writes against the same group serialize.
func lockGroup(tx *sql.Tx, groupID string) error {
	var id string
	err := tx.QueryRow(
		"SELECT id FROM groups WHERE id = $1 AND is_active = TRUE FOR UPDATE",
		groupID,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to lock group: %v", err)
	}
	return nil
}
