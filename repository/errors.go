package repository

import "errors"

// Sentinel errors surfaced by repositories; services map these onto
// the API error taxonomy.
var (
	ErrGroupNotFound        = errors.New("group not found")
	ErrNotAMember           = errors.New("user is not a member of the group")
	ErrSplitTargetNotMember = errors.New("split target is not a member of the group")
	ErrLastMember           = errors.New("cannot remove the last member of a group")
	ErrDuplicateMember      = errors.New("user is already a member of the group")
)
