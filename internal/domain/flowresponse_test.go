package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"payflow/pkg/e"
)

func TestFlowResponse_CurrencyGuard(t *testing.T) {
	paid, _ := NewAmounts(100, "USD")
	updated, _ := NewAmounts(200, "EUR")

	f := NewFlowResponse("req1")
	assert.NoError(t, f.SetAmountsPaid(paid, "cash"))

	err := f.UpdateRequestAmounts(updated)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidArgument))
	// the rejected update must not stick
	assert.Nil(t, f.UpdatedRequestAmounts)
}

func TestFlowResponse_AmountsPaidExceedsBase(t *testing.T) {
	updated, _ := NewAmounts(200, "EUR")
	paid, _ := NewAmounts(300, "EUR")

	f := NewFlowResponse("req1")
	assert.NoError(t, f.UpdateRequestAmounts(updated))

	err := f.SetAmountsPaid(paid, "loyalty")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidArgument))
	assert.Nil(t, f.AmountsPaid)
	assert.Empty(t, f.AmountsPaidMethod)
}

func TestFlowResponse_ValidPair(t *testing.T) {
	updated, _ := NewAmounts(200, "EUR")
	paid, _ := NewAmounts(150, "EUR")

	f := NewFlowResponse("req1")
	assert.NoError(t, f.UpdateRequestAmounts(updated))
	assert.NoError(t, f.SetAmountsPaid(paid, "loyalty"))
	assert.Equal(t, "loyalty", f.AmountsPaidMethod)
}

func TestFlowResponse_HasAugmentedData(t *testing.T) {
	amounts, _ := NewAmounts(100, "EUR")

	testCases := []struct {
		name     string
		mutate   func(f *FlowResponse)
		expected bool
	}{
		{name: "untouched", mutate: func(f *FlowResponse) {}, expected: false},
		{name: "updated amounts", mutate: func(f *FlowResponse) { _ = f.UpdateRequestAmounts(amounts) }, expected: true},
		{name: "amounts paid", mutate: func(f *FlowResponse) { _ = f.SetAmountsPaid(amounts, "cash") }, expected: true},
		{name: "request data", mutate: func(f *FlowResponse) { f.AddRequestData("key", "v") }, expected: true},
		{name: "payment reference", mutate: func(f *FlowResponse) { f.SetPaymentReference("ref", "v") }, expected: true},
		{name: "enable split", mutate: func(f *FlowResponse) { f.EnableSplit = true }, expected: true},
		{name: "cancel", mutate: func(f *FlowResponse) { f.CancelTransaction = true }, expected: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			f := NewFlowResponse("req1")
			testCase.mutate(f)
			assert.Equal(t, testCase.expected, f.HasAugmentedData())
		})
	}
}

func TestFlowResponseFromJSON_RevalidatesAmounts(t *testing.T) {
	// an inconsistent pair arriving over the wire must be rejected
	raw := `{"id":"req1","updated_request_amounts":{"base_amount":100,"currency":"EUR"},"amounts_paid":{"base_amount":200,"currency":"EUR"}}`

	_, err := FlowResponseFromJSON(raw)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidArgument))
}
