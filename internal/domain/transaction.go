package domain

// Transaction is one completed (or in-flight) card-present attempt
// within a flow: the requested amounts for the attempt plus the
// responses produced by its stages. The response list is append-only
// and ordered by completion time.
type Transaction struct {
	ID               string                `json:"id"`
	RequestedAmounts Amounts               `json:"requested_amounts"`
	Basket           *Basket               `json:"basket,omitempty"`
	AdditionalData   *AdditionalData       `json:"additional_data,omitempty"`
	Responses        []TransactionResponse `json:"responses,omitempty"`
}

func NewTransaction(id string, requested Amounts, basket *Basket) *Transaction {
	return &Transaction{
		ID:               id,
		RequestedAmounts: requested,
		Basket:           basket,
	}
}

// AddResponse appends a response. Responses are never reordered or
// retroactively edited.
func (t *Transaction) AddResponse(response TransactionResponse) {
	t.Responses = append(t.Responses, response)
}

func (t *Transaction) LastResponse() *TransactionResponse {
	if len(t.Responses) == 0 {
		return nil
	}
	return &t.Responses[len(t.Responses)-1]
}

// ProcessedAmounts folds the approved responses into the total amounts
// this transaction actually moved, in the requested currency.
// Responses in a different currency or without amounts contribute
// nothing.
func (t *Transaction) ProcessedAmounts() Amounts {
	processed := Amounts{Currency: t.RequestedAmounts.Currency}
	for _, r := range t.Responses {
		if !r.HasProcessedAmounts() {
			continue
		}
		sum, err := AddAmounts(processed, *r.Amounts)
		if err != nil {
			continue
		}
		processed = sum
	}
	return processed
}

// HasProcessedRequestedAmounts reports whether the processed total
// covers the full requested total for this attempt.
func (t *Transaction) HasProcessedRequestedAmounts() bool {
	return t.ProcessedAmounts().Total() >= t.RequestedAmounts.Total() && t.RequestedAmounts.Total() > 0
}

// HasDeclinedResponses reports whether any stage declined.
func (t *Transaction) HasDeclinedResponses() bool {
	for _, r := range t.Responses {
		if r.Outcome == OutcomeDeclined {
			return true
		}
	}
	return false
}

// Summary flattens the transaction into its reporting view.
func (t *Transaction) Summary() TransactionSummary {
	processed := t.ProcessedAmounts()
	return TransactionSummary{
		TransactionID:    t.ID,
		RequestedAmounts: t.RequestedAmounts,
		ProcessedAmounts: processed,
		ResponseCount:    len(t.Responses),
		Approved:         len(t.Responses) > 0 && !t.HasDeclinedResponses(),
	}
}

// TransactionSummary is the flattened per-transaction view handed to
// post-transaction stage participants and reporting.
type TransactionSummary struct {
	TransactionID    string  `json:"transaction_id"`
	RequestedAmounts Amounts `json:"requested_amounts"`
	ProcessedAmounts Amounts `json:"processed_amounts"`
	ResponseCount    int     `json:"response_count"`
	Approved         bool    `json:"approved"`
}
