package services

import (
	"testing"

	"splitledger/models"
	"splitledger/utils"

	"github.com/stretchr/testify/assert"
)

func TestSplitService_EqualSplit(t *testing.T) {
	service := NewSplitService()

	lines, err := service.ComputeSplit(300, models.SplitTypeEqual, []string{"alice", "bob", "carol"}, nil)

	assert.NoError(t, err)
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 100.0, line.Amount)
	}
}

func TestSplitService_EqualSplit_Conservation(t *testing.T) {
	service := NewSplitService()

	cases := []struct {
		name         string
		amount       float64
		participants []string
	}{
		{"two way", 150, []string{"a", "b"}},
		{"three way uneven", 100, []string{"a", "b", "c"}},
		{"five way", 243.37, []string{"a", "b", "c", "d", "e"}},
		{"single participant", 75.5, []string{"a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := service.ComputeSplit(tc.amount, models.SplitTypeEqual, tc.participants, nil)
			assert.NoError(t, err)
			assert.Len(t, lines, len(tc.participants))

			var sum float64
			for _, line := range lines {
				sum += line.Amount
			}
			// Equal splits round each line independently, so the sum can
			// drift from the total by up to half a cent per participant.
			assert.InDelta(t, tc.amount, sum, 0.005*float64(len(tc.participants)),
				"line sum %.4f drifted too far from %.2f", sum, tc.amount)
		})
	}
}

func TestSplitService_EqualSplit_RoundingDrift(t *testing.T) {
	service := NewSplitService()

	// 100 / 3 = 33.33 per head; the recombined sum is 99.99, not 100.
	lines, err := service.ComputeSplit(100, models.SplitTypeEqual, []string{"a", "b", "c"}, nil)

	assert.NoError(t, err)
	var sum float64
	for _, line := range lines {
		assert.Equal(t, 33.33, line.Amount)
		sum += line.Amount
	}
	assert.InDelta(t, 99.99, sum, 1e-9)
	assert.NotEqual(t, 100.0, sum)
}

func TestSplitService_CustomSplit_Valid(t *testing.T) {
	service := NewSplitService()

	custom := []models.SplitLine{
		{UserID: "alice", Amount: 50},
		{UserID: "bob", Amount: 100},
	}
	lines, err := service.ComputeSplit(150, models.SplitTypeCustom, nil, custom)

	assert.NoError(t, err)
	assert.Equal(t, custom, lines)
}

func TestSplitService_CustomSplit_SumMismatch(t *testing.T) {
	service := NewSplitService()

	custom := []models.SplitLine{
		{UserID: "alice", Amount: 50},
		{UserID: "bob", Amount: 60},
	}
	lines, err := service.ComputeSplit(150, models.SplitTypeCustom, nil, custom)

	assert.Nil(t, lines)
	assert.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, utils.KindInvalidSplit, appErr.Kind)
}

func TestSplitService_CustomSplit_ToleratesEpsilon(t *testing.T) {
	service := NewSplitService()

	custom := []models.SplitLine{
		{UserID: "alice", Amount: 33.33},
		{UserID: "bob", Amount: 33.33},
		{UserID: "carol", Amount: 33.33},
	}
	_, err := service.ComputeSplit(100, models.SplitTypeCustom, nil, custom)

	assert.NoError(t, err)
}

func TestSplitService_InvalidInput(t *testing.T) {
	service := NewSplitService()

	cases := []struct {
		name         string
		amount       float64
		splitType    string
		participants []string
		custom       []models.SplitLine
	}{
		{"zero amount", 0, models.SplitTypeEqual, []string{"a"}, nil},
		{"negative amount", -10, models.SplitTypeEqual, []string{"a"}, nil},
		{"unknown split type", 100, "proportional", []string{"a"}, nil},
		{"equal with no participants", 100, models.SplitTypeEqual, nil, nil},
		{"custom with no lines", 100, models.SplitTypeCustom, nil, nil},
		{"custom with blank user", 100, models.SplitTypeCustom, nil, []models.SplitLine{{UserID: " ", Amount: 100}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := service.ComputeSplit(tc.amount, tc.splitType, tc.participants, tc.custom)
			assert.Nil(t, lines)
			assert.Error(t, err)
			appErr, ok := err.(*utils.AppError)
			assert.True(t, ok)
			assert.Equal(t, utils.KindInvalidInput, appErr.Kind)
		})
	}
}
