package services

import (
	"time"

	"splitledger/models"
	"splitledger/repository"
	"splitledger/utils"
)

// GroupService handles group lifecycle and membership rules
type GroupService struct {
	store GroupStore
}

// NewGroupService creates a new group service
func NewGroupService(store GroupStore) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group whose creator becomes its sole admin member
func (s *GroupService) CreateGroup(name, description, creatorID string) (*models.Group, error) {
	if err := utils.ValidateRequired(name, "name"); err != nil {
		return nil, err
	}

	group := models.NewGroup(utils.GenerateID(), name, description, creatorID)
	if err := s.store.StoreGroup(group); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return group, nil
}

// GetGroup retrieves a group for a requesting member
func (s *GroupService) GetGroup(groupID, requesterID string) (*models.Group, error) {
	group, err := s.store.GetGroupByID(groupID)
	if err != nil {
		return nil, mapGroupError(err)
	}

	if !isMember(group, requesterID) {
		return nil, utils.NewForbiddenError(utils.ErrNotAMember)
	}

	return group, nil
}

// ListGroups retrieves all active groups the requester belongs to
func (s *GroupService) ListGroups(requesterID string) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsForUser(requesterID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve groups")
	}
	if groups == nil {
		groups = []*models.Group{}
	}
	return groups, nil
}

// UpdateGroup renames or redescribes a group; admin only, name stays non-empty
func (s *GroupService) UpdateGroup(groupID, requesterID string, req *models.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.requireAdmin(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	name := group.Name
	description := group.Description
	if req.Name != nil {
		if err := utils.ValidateRequired(*req.Name, "name"); err != nil {
			return nil, err
		}
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}

	if err := s.store.UpdateGroupInfo(groupID, name, description); err != nil {
		return nil, mapGroupError(err)
	}

	group.Name = name
	group.Description = description
	return group, nil
}

// AddMember adds a user to a group; admin only
func (s *GroupService) AddMember(groupID, requesterID, userID, role string) (*models.Group, error) {
	if err := utils.ValidateRequired(userID, "userId"); err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleMember
	}
	if err := utils.ValidateRole(role); err != nil {
		return nil, err
	}

	if _, err := s.requireAdmin(groupID, requesterID); err != nil {
		return nil, err
	}

	member := models.GroupMember{UserID: userID, Role: role, JoinedAt: time.Now()}
	if err := s.store.AddMember(groupID, member); err != nil {
		if err == repository.ErrDuplicateMember {
			return nil, utils.NewValidationError("user is already a member of this group")
		}
		return nil, mapGroupError(err)
	}

	return s.store.GetGroupByID(groupID)
}

// RemoveMember removes a user from a group. Admins may remove anyone;
// a member may remove themselves. The storage layer keeps the
// "members imply an admin" invariant by promoting a replacement when the
// last admin leaves.
func (s *GroupService) RemoveMember(groupID, requesterID, userID string) (*models.Group, error) {
	group, err := s.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}

	if requesterID != userID && !isAdmin(group, requesterID) {
		return nil, utils.NewForbiddenError("only group admins can remove other members")
	}

	if err := s.store.RemoveMember(groupID, userID); err != nil {
		switch err {
		case repository.ErrLastMember:
			return nil, utils.NewValidationError("cannot remove the last member of a group")
		case repository.ErrNotAMember:
			return nil, utils.NewNotFoundError("Member")
		default:
			return nil, mapGroupError(err)
		}
	}

	return s.store.GetGroupByID(groupID)
}

// DeleteGroup soft-deletes a group; admin only. Records are retained but
// the group disappears from member-scoped queries.
func (s *GroupService) DeleteGroup(groupID, requesterID string) error {
	if _, err := s.requireAdmin(groupID, requesterID); err != nil {
		return err
	}

	if err := s.store.DeactivateGroup(groupID); err != nil {
		return mapGroupError(err)
	}
	return nil
}

// requireAdmin loads the group and checks that the requester is an admin member
func (s *GroupService) requireAdmin(groupID, requesterID string) (*models.Group, error) {
	group, err := s.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isAdmin(group, requesterID) {
		return nil, utils.NewForbiddenError("requires group admin role")
	}
	return group, nil
}

func isMember(group *models.Group, userID string) bool {
	for _, member := range group.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

func isAdmin(group *models.Group, userID string) bool {
	for _, member := range group.Members {
		if member.UserID == userID && member.Role == models.RoleAdmin {
			return true
		}
	}
	return false
}

// mapGroupError translates repository sentinels into API errors
func mapGroupError(err error) error {
	switch err {
	case repository.ErrGroupNotFound:
		return utils.NewNotFoundError("Group")
	case repository.ErrNotAMember:
		return utils.NewForbiddenError(utils.ErrNotAMember)
	default:
		return utils.NewInternalError(utils.ErrFailedToStore)
	}
}
