package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func splitFixture(t *testing.T, requestedBase int64, processedBases ...int64) *SplitRequest {
	t.Helper()
	requested, err := NewAmounts(requestedBase, "EUR")
	assert.NoError(t, err)

	payment, err := NewPaymentBuilder(FlowTypeSale).WithAmounts(requested).EnableSplit().Build()
	assert.NoError(t, err)

	var transactions []*Transaction
	for i, base := range processedBases {
		share, err := NewAmounts(base, "EUR")
		assert.NoError(t, err)
		tx := NewTransaction(fmt.Sprintf("tx-%d", i), share, nil)
		response, err := NewTransactionResponseBuilder(tx.ID).ApproveWithAmounts(share).Build()
		assert.NoError(t, err)
		tx.AddResponse(response)
		transactions = append(transactions, tx)
	}
	return NewSplitRequest(payment, requested, transactions)
}

func TestSplitRequest_ReconciliationConvergence(t *testing.T) {
	testCases := []struct {
		name              string
		requested         int64
		processed         []int64
		expectedRemaining int64
		expectedProcessed int64
		fulfilled         bool
	}{
		{name: "no transactions", requested: 1000, expectedRemaining: 1000},
		{name: "one partial", requested: 1000, processed: []int64{400}, expectedRemaining: 600, expectedProcessed: 400},
		{name: "two partials", requested: 1000, processed: []int64{400, 350}, expectedRemaining: 250, expectedProcessed: 750},
		{name: "exact convergence", requested: 1000, processed: []int64{400, 600}, expectedRemaining: 0, expectedProcessed: 1000, fulfilled: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			split := splitFixture(t, testCase.requested, testCase.processed...)

			assert.Equal(t, testCase.expectedProcessed, split.ProcessedAmounts().Total())
			assert.Equal(t, testCase.expectedRemaining, split.RemainingAmounts().Total())
			assert.Equal(t, testCase.fulfilled, split.IsFulfilled())
		})
	}
}

func TestSplitRequest_OverProcessedClampsToZero(t *testing.T) {
	// processed beyond requested is a business anomaly; remaining must
	// floor at zero, never go negative
	split := splitFixture(t, 1000, 700, 700)

	assert.Equal(t, int64(1400), split.ProcessedAmounts().Total())
	assert.Equal(t, int64(0), split.RemainingAmounts().Total())
	assert.True(t, split.IsFulfilled())
}

func TestSplitRequest_RemainingComputedFresh(t *testing.T) {
	split := splitFixture(t, 1000, 400)
	assert.Equal(t, int64(600), split.RemainingAmounts().Total())

	share, _ := NewAmounts(600, "EUR")
	tx := NewTransaction("tx-late", share, nil)
	response, err := NewTransactionResponseBuilder(tx.ID).ApproveWithAmounts(share).Build()
	assert.NoError(t, err)
	tx.AddResponse(response)
	split.Transactions = append(split.Transactions, tx)

	assert.Equal(t, int64(0), split.RemainingAmounts().Total())
	assert.Equal(t, tx, split.LastTransaction())
	assert.True(t, split.HasPreviousTransactions())
}

func TestTransaction_ProcessedAmounts(t *testing.T) {
	requested, _ := NewAmounts(1000, "EUR")
	tx := NewTransaction("tx-1", requested, nil)

	assert.False(t, tx.HasProcessedRequestedAmounts())
	assert.Equal(t, int64(0), tx.ProcessedAmounts().Total())

	declined, err := NewTransactionResponseBuilder("tx-1").Decline("first card declined").Build()
	assert.NoError(t, err)
	tx.AddResponse(declined)
	assert.Equal(t, int64(0), tx.ProcessedAmounts().Total())
	assert.True(t, tx.HasDeclinedResponses())

	partial, _ := NewAmounts(300, "EUR")
	rest, _ := NewAmounts(700, "EUR")
	approvedPartial, err := NewTransactionResponseBuilder("tx-1").ApproveWithAmounts(partial, "loyalty").Build()
	assert.NoError(t, err)
	approvedRest, err := NewTransactionResponseBuilder("tx-1").ApproveWithAmounts(rest).Build()
	assert.NoError(t, err)
	tx.AddResponse(approvedPartial)
	tx.AddResponse(approvedRest)

	assert.Equal(t, int64(1000), tx.ProcessedAmounts().Total())
	assert.True(t, tx.HasProcessedRequestedAmounts())
	assert.Equal(t, "EUR", tx.ProcessedAmounts().Currency)

	summary := tx.Summary()
	assert.Equal(t, "tx-1", summary.TransactionID)
	assert.Equal(t, 3, summary.ResponseCount)
	assert.False(t, summary.Approved)
}

func TestTransaction_ZeroAmountApprovalContributesNothing(t *testing.T) {
	requested, _ := NewAmounts(500, "EUR")
	tx := NewTransaction("tx-1", requested, nil)

	approved, err := NewTransactionResponseBuilder("tx-1").Approve().Build()
	assert.NoError(t, err)
	tx.AddResponse(approved)

	assert.Equal(t, int64(0), tx.ProcessedAmounts().Total())
	assert.False(t, tx.HasProcessedRequestedAmounts())
}
