package domain

import (
	"encoding/json"
	"time"

	"payflow/pkg/e"
)

// PaymentOutcome is the overall outcome of a payment flow.
type PaymentOutcome string

const (
	PaymentFulfilled          PaymentOutcome = "FULFILLED"
	PaymentPartiallyFulfilled PaymentOutcome = "PARTIALLY_FULFILLED"
	PaymentFailed             PaymentOutcome = "FAILED"
)

// PaymentResponse is the final settlement view of a payment flow,
// assembled from the accumulated transactions once the flow completes.
type PaymentResponse struct {
	ID                    string          `json:"id" validate:"required"`
	Payment               Payment         `json:"payment" validate:"required"`
	Outcome               PaymentOutcome  `json:"outcome" validate:"required,oneof=FULFILLED PARTIALLY_FULFILLED FAILED"`
	FailureReason         string          `json:"failure_reason,omitempty"`
	TotalAmountsRequested Amounts         `json:"total_amounts_requested"`
	TotalAmountsProcessed Amounts         `json:"total_amounts_processed"`
	Transactions          []*Transaction  `json:"transactions,omitempty"`
	References            *AdditionalData `json:"references,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// AssemblePaymentResponse folds the completed transactions into the
// final settlement. Requested may exceed the original payment amounts
// when upstream stages augmented them.
func AssemblePaymentResponse(payment Payment, requested Amounts, transactions []*Transaction) PaymentResponse {
	split := NewSplitRequest(payment, requested, transactions)
	processed := split.ProcessedAmounts()

	outcome := PaymentFailed
	var reason string
	switch {
	case processed.Total() >= requested.Total() && requested.Total() > 0:
		outcome = PaymentFulfilled
	case processed.Total() > 0:
		outcome = PaymentPartiallyFulfilled
		reason = "processed amounts did not reach the requested total"
	default:
		reason = "no amounts were processed"
	}

	return PaymentResponse{
		ID:                    payment.ID,
		Payment:               payment,
		Outcome:               outcome,
		FailureReason:         reason,
		TotalAmountsRequested: requested,
		TotalAmountsProcessed: processed,
		Transactions:          transactions,
		CreatedAt:             time.Now().UTC(),
	}
}

func (p PaymentResponse) Summaries() []TransactionSummary {
	summaries := make([]TransactionSummary, 0, len(p.Transactions))
	for _, t := range p.Transactions {
		summaries = append(summaries, t.Summary())
	}
	return summaries
}

func (p PaymentResponse) ToJSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", e.Wrap("domain.PaymentResponse.ToJSON", err)
	}
	return string(data), nil
}

func PaymentResponseFromJSON(data string) (PaymentResponse, error) {
	var p PaymentResponse
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return PaymentResponse{}, e.Wrap("domain.PaymentResponseFromJSON", err)
	}
	return p, nil
}
