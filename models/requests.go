package models

// CreateGroupRequest request model
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateGroupRequest request model
type UpdateGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddMemberRequest request model
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role"`
}

// AddExpenseRequest request model
type AddExpenseRequest struct {
	Description string      `json:"description" binding:"required"`
	Amount      float64     `json:"amount" binding:"required"`
	SplitType   string      `json:"splitType" binding:"required"`
	SplitAmong  []SplitLine `json:"splitAmong,omitempty"`
}

// PaymentRequest request model for recording a settle-up transfer
type PaymentRequest struct {
	FromUser    string  `json:"fromUser" binding:"required"`
	ToUser      string  `json:"toUser" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// ExpenseListResponse response model
type ExpenseListResponse struct {
	Expenses     []*GroupExpense `json:"expenses"`
	TotalExpense float64         `json:"totalExpense"`
}
