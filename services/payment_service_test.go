package services

import (
	"testing"

	"splitledger/models"
	"splitledger/utils"

	"github.com/stretchr/testify/assert"
)

func newPaymentFixture(group *models.Group) (*PaymentService, *fakePaymentStore) {
	store := newFakePaymentStore()
	service := NewPaymentService(store, NewGroupService(newFakeGroupStore(group)))
	return service, store
}

func TestPaymentService_RecordPayment(t *testing.T) {
	service, store := newPaymentFixture(trailGroup())

	payment, err := service.RecordPayment("trip-1", "bob", &models.PaymentRequest{
		FromUser:    "bob",
		ToUser:      "alice",
		Amount:      42.5,
		Description: "  settling dinner  ",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, "trip-1", payment.GroupID)
	assert.Equal(t, 42.5, payment.Amount)
	assert.Equal(t, "settling dinner", payment.Description)
	assert.Len(t, store.payments["trip-1"], 1)
}

func TestPaymentService_RecordPaymentValidation(t *testing.T) {
	service, store := newPaymentFixture(trailGroup())

	cases := []struct {
		name string
		req  *models.PaymentRequest
	}{
		{"missing payer", &models.PaymentRequest{ToUser: "alice", Amount: 10}},
		{"missing receiver", &models.PaymentRequest{FromUser: "bob", Amount: 10}},
		{"self payment", &models.PaymentRequest{FromUser: "bob", ToUser: "bob", Amount: 10}},
		{"zero amount", &models.PaymentRequest{FromUser: "bob", ToUser: "alice", Amount: 0}},
		{"negative amount", &models.PaymentRequest{FromUser: "bob", ToUser: "alice", Amount: -3}},
		{"payer outside group", &models.PaymentRequest{FromUser: "mallory", ToUser: "alice", Amount: 10}},
		{"receiver outside group", &models.PaymentRequest{FromUser: "bob", ToUser: "mallory", Amount: 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.RecordPayment("trip-1", "bob", tc.req)
			appErr, ok := err.(*utils.AppError)
			assert.True(t, ok)
			assert.Equal(t, utils.KindInvalidInput, appErr.Kind)
		})
	}
	assert.Empty(t, store.payments["trip-1"])
}

func TestPaymentService_RecordPaymentRequiresMembership(t *testing.T) {
	service, _ := newPaymentFixture(trailGroup())

	_, err := service.RecordPayment("trip-1", "mallory", &models.PaymentRequest{
		FromUser: "bob", ToUser: "alice", Amount: 10,
	})

	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.KindForbidden, appErr.Kind)
}

func TestPaymentService_ListPayments(t *testing.T) {
	service, _ := newPaymentFixture(trailGroup())

	_, err := service.RecordPayment("trip-1", "bob", &models.PaymentRequest{
		FromUser: "bob", ToUser: "alice", Amount: 10,
	})
	assert.NoError(t, err)

	payments, err := service.ListPayments("trip-1", "carol")
	assert.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = service.ListPayments("trip-1", "mallory")
	assert.Error(t, err)
}
