package domain

import (
	"fmt"

	"payflow/pkg/e"
)

// Amount identifiers for the additional-amounts map. The map accepts
// arbitrary caller-defined keys; these are the ones every participant
// understands.
const (
	AmountTip       = "tip"
	AmountCashback  = "cashback"
	AmountSurcharge = "surcharge"
	AmountCharity   = "charity"
)

// Amounts is the monetary breakdown of a request or response. All
// values are in the minor unit of the currency (cents, pence, etc).
// Once an Amounts has been embedded in a sent response it must not be
// mutated; treat instances as values.
//
// OriginalCurrency and ExchangeRate are only set when a flow service
// converted the currency mid-flow, and exist for audit.
type Amounts struct {
	BaseAmount        int64            `json:"base_amount" validate:"min=0"`
	AdditionalAmounts map[string]int64 `json:"additional_amounts,omitempty"`
	Currency          string           `json:"currency" validate:"required,len=3"`
	OriginalCurrency  string           `json:"original_currency,omitempty"`
	ExchangeRate      float64          `json:"exchange_rate,omitempty"`
}

// NewAmounts builds an Amounts with a base value only. Negative values
// and empty currencies are rejected uniformly across all constructors.
func NewAmounts(base int64, currency string) (Amounts, error) {
	return NewAmountsWithAdditional(base, currency, nil)
}

// NewAmountsWithTip builds an Amounts with the conventional tip and
// "other" breakdown.
func NewAmountsWithTip(base, tip, other int64, currency string) (Amounts, error) {
	additional := map[string]int64{}
	if tip > 0 {
		additional[AmountTip] = tip
	}
	if other > 0 {
		additional["other"] = other
	}
	return NewAmountsWithAdditional(base, currency, additional)
}

func NewAmountsWithAdditional(base int64, currency string, additional map[string]int64) (Amounts, error) {
	if currency == "" {
		return Amounts{}, e.Wrap("domain.NewAmounts: currency is required", e.ErrInvalidArgument)
	}
	if base < 0 {
		return Amounts{}, e.Wrap(fmt.Sprintf("domain.NewAmounts: negative base amount %d", base), e.ErrInvalidArgument)
	}
	copied := make(map[string]int64, len(additional))
	for id, v := range additional {
		if v < 0 {
			return Amounts{}, e.Wrap(fmt.Sprintf("domain.NewAmounts: negative additional amount %q=%d", id, v), e.ErrInvalidArgument)
		}
		copied[id] = v
	}
	return Amounts{
		BaseAmount:        base,
		AdditionalAmounts: copied,
		Currency:          currency,
	}, nil
}

// Total returns base + sum of all additional amounts.
func (a Amounts) Total() int64 {
	total := a.BaseAmount
	for _, v := range a.AdditionalAmounts {
		total += v
	}
	return total
}

// Additional returns the additional amount for the given identifier,
// zero if not present.
func (a Amounts) Additional(id string) int64 {
	return a.AdditionalAmounts[id]
}

func (a Amounts) HasAdditional(id string) bool {
	_, ok := a.AdditionalAmounts[id]
	return ok
}

func (a Amounts) IsZero() bool {
	return a.Total() == 0
}

// Equivalent compares values and currency, ignoring the
// currency-conversion audit metadata.
func (a Amounts) Equivalent(b Amounts) bool {
	if a.Currency != b.Currency || a.BaseAmount != b.BaseAmount {
		return false
	}
	if len(a.AdditionalAmounts) != len(b.AdditionalAmounts) {
		return false
	}
	for id, v := range a.AdditionalAmounts {
		if b.AdditionalAmounts[id] != v {
			return false
		}
	}
	return true
}

func (a Amounts) String() string {
	return fmt.Sprintf("%d %s (base %d)", a.Total(), a.Currency, a.BaseAmount)
}

// AddAmounts sums two same-currency Amounts per field. Conversion
// metadata is dropped from the result.
func AddAmounts(a, b Amounts) (Amounts, error) {
	if a.Currency != b.Currency {
		return Amounts{}, e.Wrap(fmt.Sprintf("domain.AddAmounts: currency mismatch %s vs %s", a.Currency, b.Currency), e.ErrInvalidArgument)
	}
	additional := make(map[string]int64, len(a.AdditionalAmounts))
	for id, v := range a.AdditionalAmounts {
		additional[id] = v
	}
	for id, v := range b.AdditionalAmounts {
		additional[id] += v
	}
	return Amounts{
		BaseAmount:        a.BaseAmount + b.BaseAmount,
		AdditionalAmounts: additional,
		Currency:          a.Currency,
	}, nil
}

// SubtractAmounts subtracts b from a per field. With allowNegative
// false every resulting field is floored at zero, which is what the
// split reconciliation relies on: an over-processed transaction shows
// up as a zero remaining amount, never a negative one.
func SubtractAmounts(a, b Amounts, allowNegative bool) (Amounts, error) {
	if a.Currency != b.Currency {
		return Amounts{}, e.Wrap(fmt.Sprintf("domain.SubtractAmounts: currency mismatch %s vs %s", a.Currency, b.Currency), e.ErrInvalidArgument)
	}
	base := a.BaseAmount - b.BaseAmount
	if !allowNegative && base < 0 {
		base = 0
	}
	additional := make(map[string]int64, len(a.AdditionalAmounts))
	for id, v := range a.AdditionalAmounts {
		additional[id] = v
	}
	for id, v := range b.AdditionalAmounts {
		result := additional[id] - v
		if !allowNegative && result < 0 {
			result = 0
		}
		additional[id] = result
	}
	return Amounts{
		BaseAmount:        base,
		AdditionalAmounts: additional,
		Currency:          a.Currency,
	}, nil
}
