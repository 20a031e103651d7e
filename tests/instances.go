package tests

import (
	"encoding/json"
	"log"
	"time"

	"payflow/internal/domain"
)

var (
	InstanceStruct = domain.PaymentResponse{
		ID: "1b563feb7b2b84b6testCase",
		Payment: domain.Payment{
			ID:       "1b563feb7b2b84b6testCase",
			FlowType: domain.FlowTypeSale,
			FlowName: "counter-sale",
			Amounts: domain.Amounts{
				BaseAmount:        1200,
				AdditionalAmounts: map[string]int64{domain.AmountTip: 150},
				Currency:          "EUR",
			},
			Basket: domain.NewBasket(
				domain.BasketItem{Label: "Coffee", Category: "drinks", Amount: 350, Quantity: 2},
				domain.BasketItem{Label: "Cake", Category: "food", Amount: 500, Quantity: 1},
			),
			SplitEnabled: true,
		},
		Outcome: domain.PaymentFulfilled,
		TotalAmountsRequested: domain.Amounts{
			BaseAmount:        1200,
			AdditionalAmounts: map[string]int64{domain.AmountTip: 150},
			Currency:          "EUR",
		},
		TotalAmountsProcessed: domain.Amounts{
			BaseAmount:        1200,
			AdditionalAmounts: map[string]int64{domain.AmountTip: 150},
			Currency:          "EUR",
		},
		Transactions: []*domain.Transaction{
			{
				ID: "tx-1",
				RequestedAmounts: domain.Amounts{
					BaseAmount: 700,
					Currency:   "EUR",
				},
				Responses: []domain.TransactionResponse{
					{
						ID:            "tx-1",
						Outcome:       domain.OutcomeApproved,
						Amounts:       &domain.Amounts{BaseAmount: 700, Currency: "EUR"},
						ResponseCode:  "00",
						PaymentMethod: domain.PaymentMethodCard,
					},
				},
			},
			{
				ID: "tx-2",
				RequestedAmounts: domain.Amounts{
					BaseAmount:        500,
					AdditionalAmounts: map[string]int64{domain.AmountTip: 150},
					Currency:          "EUR",
				},
				Responses: []domain.TransactionResponse{
					{
						ID:            "tx-2",
						Outcome:       domain.OutcomeApproved,
						Amounts:       &domain.Amounts{BaseAmount: 500, AdditionalAmounts: map[string]int64{domain.AmountTip: 150}, Currency: "EUR"},
						ResponseCode:  "00",
						PaymentMethod: domain.PaymentMethodCard,
					},
				},
			},
		},
		CreatedAt: time.Date(2021, 11, 26, 6, 22, 19, 0, time.UTC),
	}
	InstanceString string

	InstanceKafka string
)

func init() {
	responseJSON, err := json.Marshal(InstanceStruct)
	if err != nil {
		log.Fatalf("failed to marshal InstanceStruct: %s", err)
	}
	InstanceString = string(responseJSON)
	InstanceKafka = InstanceString
}
