package domain

import (
	"encoding/json"

	"payflow/pkg/e"
)

// TransactionOutcome is the outcome of a single transaction attempt.
type TransactionOutcome string

const (
	OutcomeApproved TransactionOutcome = "APPROVED"
	OutcomeDeclined TransactionOutcome = "DECLINED"
)

// PaymentMethodCard is the default payment method for approvals.
const PaymentMethodCard = "card"

// TransactionResponse is the outcome a payment service (or a flow
// service paying by other means) produces for one attempt. Amounts is
// nil for a zero-amount approval, where nothing was charged.
type TransactionResponse struct {
	ID             string             `json:"id" validate:"required"`
	Outcome        TransactionOutcome `json:"outcome" validate:"required,oneof=APPROVED DECLINED"`
	OutcomeMessage string             `json:"outcome_message,omitempty"`
	Amounts        *Amounts           `json:"amounts,omitempty"`
	ResponseCode   string             `json:"response_code,omitempty"`
	PaymentMethod  string             `json:"payment_method,omitempty"`
	Card           *Card              `json:"card,omitempty"`
	References     *AdditionalData    `json:"references,omitempty"`
}

func (r TransactionResponse) IsApproved() bool {
	return r.Outcome == OutcomeApproved
}

// HasProcessedAmounts reports whether this response actually moved
// money.
func (r TransactionResponse) HasProcessedAmounts() bool {
	return r.IsApproved() && r.Amounts != nil && !r.Amounts.IsZero()
}

func (r TransactionResponse) ToJSON() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", e.Wrap("domain.TransactionResponse.ToJSON", err)
	}
	return string(data), nil
}

func TransactionResponseFromJSON(data string) (TransactionResponse, error) {
	var r TransactionResponse
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return TransactionResponse{}, e.Wrap("domain.TransactionResponseFromJSON", err)
	}
	return r, nil
}

// TransactionResponseBuilder is the only way to construct a
// TransactionResponse. It moves unbuilt -> approved|declined -> built;
// Build fails unless an outcome was set. Approve and Decline may be
// called more than once, the last call wins and clears the other
// outcome's fields.
type TransactionResponseBuilder struct {
	id            string
	outcome       TransactionOutcome
	outcomeSet    bool
	message       string
	amounts       *Amounts
	responseCode  string
	paymentMethod string
	card          *Card
	references    *AdditionalData
}

func NewTransactionResponseBuilder(requestID string) *TransactionResponseBuilder {
	return &TransactionResponseBuilder{id: requestID}
}

// Approve marks the response approved without any processed amounts
// (a valid no-charge case).
func (b *TransactionResponseBuilder) Approve() *TransactionResponseBuilder {
	b.outcome = OutcomeApproved
	b.outcomeSet = true
	b.message = ""
	b.amounts = nil
	return b
}

// ApproveWithAmounts marks the response approved with the processed
// amounts. The payment method defaults to card when not given.
func (b *TransactionResponseBuilder) ApproveWithAmounts(amounts Amounts, paymentMethod ...string) *TransactionResponseBuilder {
	b.Approve()
	b.amounts = &amounts
	if len(paymentMethod) > 0 && paymentMethod[0] != "" {
		b.paymentMethod = paymentMethod[0]
	} else {
		b.paymentMethod = PaymentMethodCard
	}
	return b
}

// Decline marks the response declined. A message is mandatory.
func (b *TransactionResponseBuilder) Decline(message string) *TransactionResponseBuilder {
	b.outcome = OutcomeDeclined
	b.outcomeSet = true
	b.message = message
	b.amounts = nil
	return b
}

func (b *TransactionResponseBuilder) WithCard(card Card) *TransactionResponseBuilder {
	b.card = &card
	return b
}

func (b *TransactionResponseBuilder) WithResponseCode(code string) *TransactionResponseBuilder {
	b.responseCode = code
	return b
}

func (b *TransactionResponseBuilder) WithReference(key string, value interface{}) *TransactionResponseBuilder {
	if b.references == nil {
		b.references = NewAdditionalData()
	}
	b.references.Put(key, value)
	return b
}

func (b *TransactionResponseBuilder) WithReferences(references *AdditionalData) *TransactionResponseBuilder {
	b.references = references
	return b
}

func (b *TransactionResponseBuilder) Build() (TransactionResponse, error) {
	if b.id == "" {
		return TransactionResponse{}, e.Wrap("domain.TransactionResponseBuilder: request id is required", e.ErrInvalidState)
	}
	if !b.outcomeSet {
		return TransactionResponse{}, e.Wrap("domain.TransactionResponseBuilder: outcome was never set", e.ErrInvalidState)
	}
	if b.outcome == OutcomeDeclined && b.message == "" {
		return TransactionResponse{}, e.Wrap("domain.TransactionResponseBuilder: decline requires a message", e.ErrInvalidArgument)
	}
	return TransactionResponse{
		ID:             b.id,
		Outcome:        b.outcome,
		OutcomeMessage: b.message,
		Amounts:        b.amounts,
		ResponseCode:   b.responseCode,
		PaymentMethod:  b.paymentMethod,
		Card:           b.card,
		References:     b.references,
	}, nil
}
