package services

import (
	"fmt"

	"splitledger/models"
	"splitledger/utils"
)

// SplitService computes per-participant shares for a group expense
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeSplit resolves a total amount into per-participant split lines.
//
// For an equal split every participant receives the rounded quotient
// amount/len(participants); remainder cents are not redistributed, so the
// line sum may drift from the total by less than a cent per participant.
// For a custom split the caller-supplied lines are validated to sum to the
// total within the money epsilon.
func (s *SplitService) ComputeSplit(totalAmount float64, splitType string, participants []string, customLines []models.SplitLine) ([]models.SplitLine, error) {
	if err := utils.ValidatePositive(totalAmount, "amount"); err != nil {
		return nil, err
	}

	switch splitType {
	case models.SplitTypeEqual:
		return s.computeEqualSplit(totalAmount, participants)
	case models.SplitTypeCustom:
		return s.computeCustomSplit(totalAmount, customLines)
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown split type %q", splitType))
	}
}

// computeEqualSplit divides the total evenly across all participants
func (s *SplitService) computeEqualSplit(totalAmount float64, participants []string) ([]models.SplitLine, error) {
	if err := utils.ValidateNotEmpty(participants, "participants"); err != nil {
		return nil, err
	}

	share := utils.Round(totalAmount / float64(len(participants)))

	lines := make([]models.SplitLine, len(participants))
	for i, userID := range participants {
		lines[i] = models.SplitLine{UserID: userID, Amount: share}
	}
	return lines, nil
}

// computeCustomSplit validates caller-supplied lines against the total
func (s *SplitService) computeCustomSplit(totalAmount float64, customLines []models.SplitLine) ([]models.SplitLine, error) {
	if err := utils.ValidateNotEmpty(customLines, "splitAmong"); err != nil {
		return nil, err
	}

	var sum float64
	for i, line := range customLines {
		if err := utils.ValidateRequired(line.UserID, fmt.Sprintf("splitAmong[%d].userId", i)); err != nil {
			return nil, err
		}
		sum += line.Amount
	}

	if !utils.NearlyEqual(sum, totalAmount) {
		return nil, utils.NewInvalidSplitError(
			fmt.Sprintf("split lines sum to %.2f, expected %.2f", sum, totalAmount))
	}

	lines := make([]models.SplitLine, len(customLines))
	copy(lines, customLines)
	return lines, nil
}
