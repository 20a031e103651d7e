package domain

import (
	"fmt"
	"math"

	"payflow/pkg/e"
)

// AmountsModifier builds a modified copy of an existing Amounts. Flow
// services use it to augment request amounts without touching the
// original. Negative inputs to the incremental setters are ignored
// rather than rejected; the modification flag only flips on accepted
// values.
type AmountsModifier struct {
	originalCurrency string
	baseAmount       int64
	additional       map[string]int64
	currency         string
	exchangeRate     float64
	currencyChanged  bool
	modified         bool
}

func NewAmountsModifier(original Amounts) *AmountsModifier {
	additional := make(map[string]int64, len(original.AdditionalAmounts))
	for id, v := range original.AdditionalAmounts {
		additional[id] = v
	}
	return &AmountsModifier{
		originalCurrency: original.Currency,
		baseAmount:       original.BaseAmount,
		additional:       additional,
		currency:         original.Currency,
	}
}

// ChangeCurrency converts all amounts to a new currency at the given
// rate. The original currency and rate are retained for audit.
func (m *AmountsModifier) ChangeCurrency(currency string, exchangeRate float64) *AmountsModifier {
	m.currency = currency
	m.exchangeRate = exchangeRate
	m.currencyChanged = currency != m.originalCurrency
	m.baseAmount = int64(float64(m.baseAmount) * exchangeRate)
	for id, v := range m.additional {
		m.additional[id] = int64(float64(v) * exchangeRate)
	}
	m.modified = true
	return m
}

// UpdateBaseAmount replaces the base amount. Negative values are a
// no-op.
func (m *AmountsModifier) UpdateBaseAmount(base int64) *AmountsModifier {
	if base >= 0 {
		m.baseAmount = base
		m.modified = true
	}
	return m
}

// SetAdditionalAmount sets an additional amount by identifier.
// Negative values are a no-op.
func (m *AmountsModifier) SetAdditionalAmount(id string, amount int64) *AmountsModifier {
	if amount >= 0 {
		m.additional[id] = amount
		m.modified = true
	}
	return m
}

// SetAdditionalAmountAsBaseFraction sets an additional amount to a
// fraction of the base amount. The fraction must lie in [0,1].
func (m *AmountsModifier) SetAdditionalAmountAsBaseFraction(id string, fraction float64) error {
	if fraction < 0 || fraction > 1 {
		return e.Wrap(fmt.Sprintf("domain.AmountsModifier: fraction %v outside [0,1]", fraction), e.ErrInvalidArgument)
	}
	m.SetAdditionalAmount(id, int64(math.Floor(float64(m.baseAmount)*fraction)))
	return nil
}

func (m *AmountsModifier) HasModifications() bool {
	return m.modified
}

// Build produces the modified Amounts. Conversion metadata is only
// carried when the currency actually changed.
func (m *AmountsModifier) Build() Amounts {
	additional := make(map[string]int64, len(m.additional))
	for id, v := range m.additional {
		additional[id] = v
	}
	amounts := Amounts{
		BaseAmount:        m.baseAmount,
		AdditionalAmounts: additional,
		Currency:          m.currency,
	}
	if m.currencyChanged {
		amounts.OriginalCurrency = m.originalCurrency
		amounts.ExchangeRate = m.exchangeRate
	}
	return amounts
}
