package stage

import (
	"context"
	"encoding/json"

	"payflow/internal/domain"
	"payflow/pkg/e"

	"log/slog"
)

// PreTransactionModel serves flow services invoked in the PRE_FLOW,
// PRE_TRANSACTION and POST_CARD_READING stages. It accumulates a
// FlowResponse and sends it as the invocation's single response.
type PreTransactionModel struct {
	*BaseStageModel
	Request      domain.TransactionRequest
	flowResponse *domain.FlowResponse
}

func NewPreTransactionModel(delegate ComponentDelegate, request domain.TransactionRequest, logger *slog.Logger) *PreTransactionModel {
	s := request.Stage
	if s == "" {
		s = domain.StagePreTransaction
	}
	return &PreTransactionModel{
		BaseStageModel: newBaseStageModel(delegate, s, request.ID, logger),
		Request:        request,
		flowResponse:   domain.NewFlowResponse(request.ID),
	}
}

// UpdateRequestAmounts replaces the request amounts downstream stages
// will see.
func (m *PreTransactionModel) UpdateRequestAmounts(amounts domain.Amounts) error {
	return m.flowResponse.UpdateRequestAmounts(amounts)
}

// SetAdditionalAmount augments the request amounts with an additional
// amount, keeping the current base.
func (m *PreTransactionModel) SetAdditionalAmount(id string, amount int64) error {
	modifier := domain.NewAmountsModifier(m.requestAmounts())
	modifier.SetAdditionalAmount(id, amount)
	return m.flowResponse.UpdateRequestAmounts(modifier.Build())
}

// SetAdditionalAmountAsBaseFraction augments the request amounts with
// a fraction of the base amount; the fraction must lie in [0,1].
func (m *PreTransactionModel) SetAdditionalAmountAsBaseFraction(id string, fraction float64) error {
	modifier := domain.NewAmountsModifier(m.requestAmounts())
	if err := modifier.SetAdditionalAmountAsBaseFraction(id, fraction); err != nil {
		return err
	}
	return m.flowResponse.UpdateRequestAmounts(modifier.Build())
}

// SetAmountsPaid records amounts this flow service settled outside the
// payment app.
func (m *PreTransactionModel) SetAmountsPaid(amounts domain.Amounts, method string) error {
	return m.flowResponse.SetAmountsPaid(amounts, method)
}

func (m *PreTransactionModel) AddRequestData(key string, value interface{}) {
	m.flowResponse.AddRequestData(key, value)
}

// requestAmounts is the latest view of the request amounts, including
// any update already staged in this response.
func (m *PreTransactionModel) requestAmounts() domain.Amounts {
	if m.flowResponse.UpdatedRequestAmounts != nil {
		return *m.flowResponse.UpdatedRequestAmounts
	}
	return m.Request.Amounts
}

func (m *PreTransactionModel) SendResponse(ctx context.Context) error {
	payload, err := json.Marshal(m.flowResponse)
	if err != nil {
		return e.Wrap("stage.PreTransactionModel: marshal response", err)
	}
	return m.sendResponse(ctx, payload)
}

// SplitModel serves the split flow service deciding how the next
// transaction should carve up the remaining amounts.
type SplitModel struct {
	*BaseStageModel
	Request      *domain.SplitRequest
	flowResponse *domain.FlowResponse
}

func NewSplitModel(delegate ComponentDelegate, requestID string, request *domain.SplitRequest, logger *slog.Logger) *SplitModel {
	return &SplitModel{
		BaseStageModel: newBaseStageModel(delegate, domain.StageSplit, requestID, logger),
		Request:        request,
		flowResponse:   domain.NewFlowResponse(requestID),
	}
}

// BasketHelper builds a SplitBasketHelper over the split request.
func (m *SplitModel) BasketHelper() (*domain.SplitBasketHelper, error) {
	return domain.NewSplitBasketHelper(m.Request)
}

// SetBaseAmountForNextTransaction sets a plain base amount for the
// next transaction, in the currency of the remaining amounts.
func (m *SplitModel) SetBaseAmountForNextTransaction(base int64) error {
	amounts, err := domain.NewAmounts(base, m.Request.RemainingAmounts().Currency)
	if err != nil {
		return err
	}
	return m.flowResponse.UpdateRequestAmounts(amounts)
}

// SetBasketForNextTransaction derives the next transaction's amounts
// from the claimed basket items and records the basket for downstream
// basket reconciliation.
func (m *SplitModel) SetBasketForNextTransaction(basket *domain.Basket) error {
	amounts, err := domain.NewAmounts(basket.TotalValue(), m.Request.RemainingAmounts().Currency)
	if err != nil {
		return err
	}
	if err := m.flowResponse.UpdateRequestAmounts(amounts); err != nil {
		return err
	}
	m.flowResponse.AddRequestData("split_basket", basket)
	return nil
}

// CancelFlow aborts the split instead of starting another transaction.
func (m *SplitModel) CancelFlow() {
	m.flowResponse.CancelTransaction = true
}

func (m *SplitModel) SendResponse(ctx context.Context) error {
	payload, err := json.Marshal(m.flowResponse)
	if err != nil {
		return e.Wrap("stage.SplitModel: marshal response", err)
	}
	return m.sendResponse(ctx, payload)
}

// CardReadingModel serves the payment service during the card reading
// stage. Its response is a TransactionResponse carrying either the
// presented card or a decline.
type CardReadingModel struct {
	*BaseStageModel
	Request domain.TransactionRequest
}

func NewCardReadingModel(delegate ComponentDelegate, request domain.TransactionRequest, logger *slog.Logger) *CardReadingModel {
	return &CardReadingModel{
		BaseStageModel: newBaseStageModel(delegate, domain.StagePaymentCardReading, request.ID, logger),
		Request:        request,
	}
}

// ApproveWithCard completes card reading with the presented card. No
// amounts are processed at this stage.
func (m *CardReadingModel) ApproveWithCard(ctx context.Context, card domain.Card) error {
	response, err := domain.NewTransactionResponseBuilder(m.requestID).
		Approve().
		WithCard(card).
		Build()
	if err != nil {
		return err
	}
	return m.sendTransactionResponse(ctx, response)
}

// Decline aborts card reading with a reason.
func (m *CardReadingModel) Decline(ctx context.Context, reason string) error {
	response, err := domain.NewTransactionResponseBuilder(m.requestID).
		Decline(reason).
		Build()
	if err != nil {
		return err
	}
	return m.sendTransactionResponse(ctx, response)
}

func (m *CardReadingModel) sendTransactionResponse(ctx context.Context, response domain.TransactionResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return e.Wrap("stage.CardReadingModel: marshal response", err)
	}
	return m.sendResponse(ctx, payload)
}

// TransactionProcessingModel serves the payment service executing the
// actual transaction. The app drives the embedded response builder and
// sends exactly once.
type TransactionProcessingModel struct {
	*BaseStageModel
	Request domain.TransactionRequest
	builder *domain.TransactionResponseBuilder
}

func NewTransactionProcessingModel(delegate ComponentDelegate, request domain.TransactionRequest, logger *slog.Logger) *TransactionProcessingModel {
	return &TransactionProcessingModel{
		BaseStageModel: newBaseStageModel(delegate, domain.StageTransactionProcessing, request.ID, logger),
		Request:        request,
		builder:        domain.NewTransactionResponseBuilder(request.ID),
	}
}

// ResponseBuilder exposes the builder for the invocation's single
// response.
func (m *TransactionProcessingModel) ResponseBuilder() *domain.TransactionResponseBuilder {
	return m.builder
}

// SendResponse builds and sends the transaction response. Builder
// validation failures (no outcome set) surface before anything hits
// the channel.
func (m *TransactionProcessingModel) SendResponse(ctx context.Context) error {
	response, err := m.builder.Build()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return e.Wrap("stage.TransactionProcessingModel: marshal response", err)
	}
	return m.sendResponse(ctx, payload)
}

// PostTransactionModel serves flow services inspecting a completed
// transaction. Only payment references may be set at this point.
type PostTransactionModel struct {
	*BaseStageModel
	Summary      domain.TransactionSummary
	flowResponse *domain.FlowResponse
}

func NewPostTransactionModel(delegate ComponentDelegate, requestID string, summary domain.TransactionSummary, logger *slog.Logger) *PostTransactionModel {
	return &PostTransactionModel{
		BaseStageModel: newBaseStageModel(delegate, domain.StagePostTransaction, requestID, logger),
		Summary:        summary,
		flowResponse:   domain.NewFlowResponse(requestID),
	}
}

func (m *PostTransactionModel) SetPaymentReference(key string, value interface{}) {
	m.flowResponse.SetPaymentReference(key, value)
}

func (m *PostTransactionModel) SendResponse(ctx context.Context) error {
	payload, err := json.Marshal(m.flowResponse)
	if err != nil {
		return e.Wrap("stage.PostTransactionModel: marshal response", err)
	}
	return m.sendResponse(ctx, payload)
}
