package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateRole checks that a member role is one of the known roles
func ValidateRole(role string) error {
	if role != "admin" && role != "member" {
		return NewValidationError(fmt.Sprintf("unknown role %q", role))
	}
	return nil
}
