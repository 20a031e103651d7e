package domain

import (
	"encoding/json"
	"fmt"

	"payflow/pkg/e"
)

// FlowResponse records what one flow-service invocation wants to
// change. It is a dumb but validated carrier: which fields are live
// depends on the stage, and that gating is enforced by the flow
// processing service, not here. The per-field stage notes below
// document the contract flow apps rely on.
//
// Every amounts mutation re-runs the amounts-paid/updated-amounts
// cross check, so an instance can never hold an inconsistent pair.
type FlowResponse struct {
	ID string `json:"id"`

	// UpdatedRequestAmounts replaces the request amounts for the rest
	// of the flow. Live in PRE_FLOW, SPLIT, PRE_TRANSACTION.
	UpdatedRequestAmounts *Amounts `json:"updated_request_amounts,omitempty"`

	// AmountsPaid records amounts settled outside the payment app
	// (loyalty points, vouchers, cash). Live in PRE_TRANSACTION and
	// POST_CARD_READING.
	AmountsPaid       *Amounts `json:"amounts_paid,omitempty"`
	AmountsPaidMethod string   `json:"amounts_paid_method,omitempty"`

	// RequestAdditionalData augments the request data passed to
	// downstream stages. Live in PRE_FLOW, SPLIT, PRE_TRANSACTION,
	// POST_CARD_READING.
	RequestAdditionalData *AdditionalData `json:"request_additional_data,omitempty"`

	// PaymentReferences are echoed back on the final response. Live in
	// POST_TRANSACTION and POST_FLOW.
	PaymentReferences *AdditionalData `json:"payment_references,omitempty"`

	// EnableSplit asks the processing service to run the payment as a
	// split. Live in PRE_FLOW only.
	EnableSplit bool `json:"enable_split,omitempty"`

	// CancelTransaction aborts the current transaction. Live in SPLIT
	// and PRE_TRANSACTION.
	CancelTransaction bool `json:"cancel_transaction,omitempty"`
}

func NewFlowResponse(id string) *FlowResponse {
	return &FlowResponse{ID: id}
}

// UpdateRequestAmounts sets the replacement request amounts.
func (f *FlowResponse) UpdateRequestAmounts(amounts Amounts) error {
	f.UpdatedRequestAmounts = &amounts
	if err := f.validateAmounts(); err != nil {
		f.UpdatedRequestAmounts = nil
		return err
	}
	return nil
}

// SetAmountsPaid records amounts paid outside the payment app together
// with the method used.
func (f *FlowResponse) SetAmountsPaid(amounts Amounts, method string) error {
	f.AmountsPaid = &amounts
	f.AmountsPaidMethod = method
	if err := f.validateAmounts(); err != nil {
		f.AmountsPaid = nil
		f.AmountsPaidMethod = ""
		return err
	}
	return nil
}

func (f *FlowResponse) AddRequestData(key string, value interface{}) {
	if f.RequestAdditionalData == nil {
		f.RequestAdditionalData = NewAdditionalData()
	}
	f.RequestAdditionalData.Put(key, value)
}

func (f *FlowResponse) SetPaymentReference(key string, value interface{}) {
	if f.PaymentReferences == nil {
		f.PaymentReferences = NewAdditionalData()
	}
	f.PaymentReferences.Put(key, value)
}

// HasAugmentedData reports whether anything at all was changed by this
// response.
func (f *FlowResponse) HasAugmentedData() bool {
	return f.UpdatedRequestAmounts != nil ||
		f.AmountsPaid != nil ||
		!f.RequestAdditionalData.IsEmpty() ||
		!f.PaymentReferences.IsEmpty() ||
		f.EnableSplit ||
		f.CancelTransaction
}

// validateAmounts enforces the cross-field invariant: when both
// amounts-paid and updated request amounts are present, currencies
// must match and the paid base may not exceed the updated base.
func (f *FlowResponse) validateAmounts() error {
	if f.AmountsPaid == nil || f.UpdatedRequestAmounts == nil {
		return nil
	}
	if f.AmountsPaid.Currency != f.UpdatedRequestAmounts.Currency {
		return e.Wrap(fmt.Sprintf("domain.FlowResponse: amounts paid currency %s does not match updated amounts currency %s",
			f.AmountsPaid.Currency, f.UpdatedRequestAmounts.Currency), e.ErrInvalidArgument)
	}
	if f.AmountsPaid.BaseAmount > f.UpdatedRequestAmounts.BaseAmount {
		return e.Wrap(fmt.Sprintf("domain.FlowResponse: amounts paid base %d exceeds updated base %d",
			f.AmountsPaid.BaseAmount, f.UpdatedRequestAmounts.BaseAmount), e.ErrInvalidArgument)
	}
	return nil
}

func (f *FlowResponse) ToJSON() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", e.Wrap("domain.FlowResponse.ToJSON", err)
	}
	return string(data), nil
}

func FlowResponseFromJSON(data string) (*FlowResponse, error) {
	var f FlowResponse
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return nil, e.Wrap("domain.FlowResponseFromJSON", err)
	}
	if err := f.validateAmounts(); err != nil {
		return nil, err
	}
	return &f, nil
}
