package utils

const (
	// Ledger entry defaults
	LedgerCategoryOthers = "others"

	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
	ErrNotAMember     = "Requester is not a member of this group"
	ErrFailedToStore  = "Failed to store data"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Absolute tolerance for monetary equality checks
	MoneyEpsilon = 0.01
)
