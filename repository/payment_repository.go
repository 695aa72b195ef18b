// repository/payment_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"splitledger/models"
)

// PaymentRepository handles database operations for recorded settle-up
// transfers
type PaymentRepository struct {
	DB *sql.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		DB: GetDB(),
	}
}

// CreatePayment records a settle-up transfer
func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	_, err := r.DB.Exec(
		`INSERT INTO payments (id, group_id, from_user, to_user, amount, description, payment_date, creation_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payment.ID, payment.GroupID, payment.FromUser, payment.ToUser,
		payment.Amount, payment.Description, payment.PaymentDate, payment.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %v", err)
	}
	return nil
}

// GetPaymentsByGroupID retrieves all recorded payments for a group,
// oldest first
func (r *PaymentRepository) GetPaymentsByGroupID(groupID string) ([]models.Payment, error) {
	rows, err := r.DB.Query(
		`SELECT id, group_id, from_user, to_user, amount, description, payment_date, creation_time
         FROM payments WHERE group_id = $1 ORDER BY creation_time ASC, id ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %v", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(&payment.ID, &payment.GroupID, &payment.FromUser, &payment.ToUser,
			&payment.Amount, &payment.Description, &payment.PaymentDate, &payment.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %v", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}
