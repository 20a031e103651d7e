package domain

import (
	"payflow/pkg/e"
)

// SplitBasketHelper tracks which basket items have been paid for
// across split rounds. On construction the remaining basket starts as
// the full source basket; every prior transaction that processed its
// requested amounts moves its recorded items from remaining to paid.
//
// The helper is read-only over the split request and never errors
// during reconciliation; construct a fresh helper for each split
// round.
type SplitBasketHelper struct {
	split     *SplitRequest
	remaining *Basket
	paid      *Basket
	nextSplit *Basket
}

// NewSplitBasketHelper builds a helper for the given split request.
// The source payment must carry a basket.
func NewSplitBasketHelper(split *SplitRequest) (*SplitBasketHelper, error) {
	if split == nil || split.SourcePayment.Basket == nil {
		return nil, e.Wrap("domain.NewSplitBasketHelper: source payment has no basket", e.ErrInvalidArgument)
	}
	h := &SplitBasketHelper{
		split:     split,
		remaining: split.SourcePayment.Basket.Clone(),
		paid:      NewBasket(),
		nextSplit: NewBasket(),
	}
	for _, t := range split.Transactions {
		if !t.HasProcessedRequestedAmounts() || t.Basket == nil {
			continue
		}
		for _, item := range t.Basket.Items {
			h.remaining.RemoveItems(item, false)
			h.paid.AddItemMerge(item)
		}
	}
	return h, nil
}

// IsFirstSplit reports whether no transaction has completed yet.
func (h *SplitBasketHelper) IsFirstSplit() bool {
	return !h.split.HasPreviousTransactions()
}

// RemainingItems is the basket still to be paid for.
func (h *SplitBasketHelper) RemainingItems() *Basket {
	return h.remaining
}

// PaidItems is the basket covered by completed transactions.
func (h *SplitBasketHelper) PaidItems() *Basket {
	return h.paid
}

// AddItemForNextSplit claims an item for the next transaction.
func (h *SplitBasketHelper) AddItemForNextSplit(item BasketItem) {
	h.nextSplit.AddItemMerge(item)
}

// AddAllRemainingForNextSplit claims everything still outstanding.
func (h *SplitBasketHelper) AddAllRemainingForNextSplit() {
	for _, item := range h.remaining.Items {
		h.nextSplit.AddItemMerge(item)
	}
}

// NextSplitItems is the scratch basket for the next transaction. It is
// only reset by constructing a new helper.
func (h *SplitBasketHelper) NextSplitItems() *Basket {
	return h.nextSplit
}
