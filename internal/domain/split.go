package domain

// SplitRequest aggregates a split payment: the source request, the
// accumulated request totals (which may exceed the original payment
// amounts after upstream augmentation), and the ordered list of
// completed transactions. The transaction list is append-only.
type SplitRequest struct {
	SourcePayment    Payment        `json:"source_payment"`
	RequestedAmounts Amounts        `json:"requested_amounts"`
	Transactions     []*Transaction `json:"transactions,omitempty"`
}

func NewSplitRequest(source Payment, requested Amounts, transactions []*Transaction) *SplitRequest {
	return &SplitRequest{
		SourcePayment:    source,
		RequestedAmounts: requested,
		Transactions:     transactions,
	}
}

func (s *SplitRequest) HasPreviousTransactions() bool {
	return len(s.Transactions) > 0
}

func (s *SplitRequest) LastTransaction() *Transaction {
	if len(s.Transactions) == 0 {
		return nil
	}
	return s.Transactions[len(s.Transactions)-1]
}

// ProcessedAmounts folds the processed amounts of every transaction so
// far. Computed fresh on every call over the live list.
func (s *SplitRequest) ProcessedAmounts() Amounts {
	processed := Amounts{Currency: s.RequestedAmounts.Currency}
	for _, t := range s.Transactions {
		sum, err := AddAmounts(processed, t.ProcessedAmounts())
		if err != nil {
			continue
		}
		processed = sum
	}
	return processed
}

// RemainingAmounts is requested minus processed, floored at zero per
// field. A transaction that over-processed therefore surfaces as a
// zero remaining amount; callers must treat that as a degraded
// condition, never a crash.
func (s *SplitRequest) RemainingAmounts() Amounts {
	remaining, err := SubtractAmounts(s.RequestedAmounts, s.ProcessedAmounts(), false)
	if err != nil {
		return Amounts{Currency: s.RequestedAmounts.Currency}
	}
	return remaining
}

// IsFulfilled reports whether the processed total has reached the
// requested total.
func (s *SplitRequest) IsFulfilled() bool {
	return s.RemainingAmounts().Total() == 0
}
