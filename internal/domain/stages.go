package domain

// PaymentStage names a point in the payment lifecycle. Stage
// identifiers cross process boundaries and must stay stable across
// versions. The stage gates which FlowResponse fields are live; that
// gating is applied by the flow processing service, not here.
type PaymentStage string

const (
	StagePreFlow               PaymentStage = "PRE_FLOW"
	StageSplit                 PaymentStage = "SPLIT"
	StagePreTransaction        PaymentStage = "PRE_TRANSACTION"
	StagePaymentCardReading    PaymentStage = "PAYMENT_CARD_READING"
	StagePostCardReading       PaymentStage = "POST_CARD_READING"
	StageTransactionProcessing PaymentStage = "TRANSACTION_PROCESSING"
	StagePostTransaction       PaymentStage = "POST_TRANSACTION"
	StagePostFlow              PaymentStage = "POST_FLOW"
)

func (s PaymentStage) String() string {
	return string(s)
}
