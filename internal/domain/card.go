package domain

// Card carries the non-sensitive details of a presented card. The
// full PAN never leaves the payment service.
type Card struct {
	MaskedPan      string          `json:"masked_pan,omitempty"`
	Token          string          `json:"token,omitempty"`
	CardholderName string          `json:"cardholder_name,omitempty"`
	ExpiryDate     string          `json:"expiry_date,omitempty"`
	AdditionalData *AdditionalData `json:"additional_data,omitempty"`
}

func (c *Card) IsEmpty() bool {
	return c == nil || (c.MaskedPan == "" && c.Token == "" && c.CardholderName == "" && c.ExpiryDate == "")
}
