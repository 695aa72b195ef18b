package services

import (
	"strings"
	"time"

	"splitledger/models"
	"splitledger/utils"
)

// PaymentService handles recorded settle-up transfers between members
type PaymentService struct {
	store        PaymentStore
	groupService *GroupService
}

// NewPaymentService creates a new payment service
func NewPaymentService(store PaymentStore, groupService *GroupService) *PaymentService {
	return &PaymentService{
		store:        store,
		groupService: groupService,
	}
}

// RecordPayment records a transfer from one member to another. Payments are
// the only correction mechanism: expenses themselves are never edited or
// deleted.
func (s *PaymentService) RecordPayment(groupID, requesterID string, req *models.PaymentRequest) (*models.Payment, error) {
	if err := utils.ValidateRequired(req.FromUser, "fromUser"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.ToUser, "toUser"); err != nil {
		return nil, err
	}
	if req.FromUser == req.ToUser {
		return nil, utils.NewValidationError("cannot pay yourself")
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	group, err := s.groupService.GetGroup(groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember(group, req.FromUser) || !isMember(group, req.ToUser) {
		return nil, utils.NewValidationError("both payer and receiver must be group members")
	}

	now := time.Now()
	payment := &models.Payment{
		ID:           utils.GenerateID(),
		GroupID:      groupID,
		FromUser:     req.FromUser,
		ToUser:       req.ToUser,
		Amount:       req.Amount,
		Description:  strings.TrimSpace(req.Description),
		PaymentDate:  now,
		CreationTime: now.UnixMilli(),
	}

	if err := s.store.CreatePayment(payment); err != nil {
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return payment, nil
}

// ListPayments retrieves all recorded payments for a group, for a
// requesting member
func (s *PaymentService) ListPayments(groupID, requesterID string) ([]models.Payment, error) {
	if _, err := s.groupService.GetGroup(groupID, requesterID); err != nil {
		return nil, err
	}
	return s.ListPaymentsInternal(groupID)
}

// ListPaymentsInternal retrieves payments without a membership check, for
// callers that already validated access
func (s *PaymentService) ListPaymentsInternal(groupID string) ([]models.Payment, error) {
	payments, err := s.store.GetPaymentsByGroupID(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve payments")
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}
