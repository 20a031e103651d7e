package domain

import (
	"encoding/json"

	"payflow/pkg/e"
)

// TransactionRequest is what a flow or payment service receives for
// one card-present attempt. For a split payment the amounts are the
// share for this attempt, not the full payment total.
type TransactionRequest struct {
	ID             string          `json:"id" validate:"required"`
	TransactionID  string          `json:"transaction_id,omitempty"`
	Stage          PaymentStage    `json:"stage,omitempty"`
	Amounts        Amounts         `json:"amounts"`
	Basket         *Basket         `json:"basket,omitempty"`
	Card           *Card           `json:"card,omitempty"`
	CardToken      string          `json:"card_token,omitempty"`
	AdditionalData *AdditionalData `json:"additional_data,omitempty"`
}

func (r TransactionRequest) ToJSON() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", e.Wrap("domain.TransactionRequest.ToJSON", err)
	}
	return string(data), nil
}

func TransactionRequestFromJSON(data string) (TransactionRequest, error) {
	var r TransactionRequest
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return TransactionRequest{}, e.Wrap("domain.TransactionRequestFromJSON", err)
	}
	return r, nil
}
