package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"payflow/pkg/e"
)

// Common flow types.
const (
	FlowTypeSale     = "sale"
	FlowTypeRefund   = "refund"
	FlowTypeMoto     = "moto"
	FlowTypeDeposit  = "deposit"
	FlowTypeReversal = "reversal"
)

// Payment is the immutable request a client app builds to initiate a
// flow. Build one via PaymentBuilder; direct construction skips the
// basket/amounts reconciliation check.
type Payment struct {
	ID             string          `json:"id" validate:"required"`
	FlowType       string          `json:"flow_type" validate:"required"`
	FlowName       string          `json:"flow_name,omitempty"`
	Amounts        Amounts         `json:"amounts" validate:"required"`
	Basket         *Basket         `json:"basket,omitempty"`
	CardToken      string          `json:"card_token,omitempty"`
	SplitEnabled   bool            `json:"split_enabled,omitempty"`
	AdditionalData *AdditionalData `json:"additional_data,omitempty"`
}

func (p Payment) ToJSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", e.Wrap("domain.Payment.ToJSON", err)
	}
	return string(data), nil
}

func PaymentFromJSON(data string) (Payment, error) {
	var p Payment
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Payment{}, e.Wrap("domain.PaymentFromJSON", err)
	}
	return p, nil
}

// PaymentBuilder assembles a Payment and enforces construction
// invariants: flow type and amounts are mandatory, and an attached
// basket must total exactly the base amount.
type PaymentBuilder struct {
	flowType       string
	flowName       string
	amounts        *Amounts
	basket         *Basket
	cardToken      string
	splitEnabled   bool
	additionalData *AdditionalData
}

func NewPaymentBuilder(flowType string) *PaymentBuilder {
	return &PaymentBuilder{flowType: flowType}
}

func (b *PaymentBuilder) WithFlowName(name string) *PaymentBuilder {
	b.flowName = name
	return b
}

func (b *PaymentBuilder) WithAmounts(amounts Amounts) *PaymentBuilder {
	b.amounts = &amounts
	return b
}

// WithBasket attaches a basket. The basket total must reconcile with
// the base amount at Build time.
func (b *PaymentBuilder) WithBasket(basket *Basket) *PaymentBuilder {
	b.basket = basket
	return b
}

func (b *PaymentBuilder) WithCardToken(token string) *PaymentBuilder {
	b.cardToken = token
	return b
}

func (b *PaymentBuilder) EnableSplit() *PaymentBuilder {
	b.splitEnabled = true
	return b
}

func (b *PaymentBuilder) AddAdditionalData(key string, value interface{}) *PaymentBuilder {
	if b.additionalData == nil {
		b.additionalData = NewAdditionalData()
	}
	b.additionalData.Put(key, value)
	return b
}

func (b *PaymentBuilder) Build() (Payment, error) {
	if b.flowType == "" {
		return Payment{}, e.Wrap("domain.PaymentBuilder: flow type is required", e.ErrInvalidArgument)
	}
	if b.amounts == nil {
		return Payment{}, e.Wrap("domain.PaymentBuilder: amounts are required", e.ErrInvalidArgument)
	}
	if b.basket != nil && b.basket.TotalValue() != b.amounts.BaseAmount {
		return Payment{}, e.Wrap(
			fmt.Sprintf("domain.PaymentBuilder: basket total %d does not match base amount %d",
				b.basket.TotalValue(), b.amounts.BaseAmount),
			e.ErrInvalidArgument)
	}
	return Payment{
		ID:             uuid.NewString(),
		FlowType:       b.flowType,
		FlowName:       b.flowName,
		Amounts:        *b.amounts,
		Basket:         b.basket,
		CardToken:      b.cardToken,
		SplitEnabled:   b.splitEnabled,
		AdditionalData: b.additionalData,
	}, nil
}
