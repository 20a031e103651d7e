package stage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"payflow/internal/domain"
	"payflow/pkg/e"
	"payflow/pkg/logger"
)

// fakeChannel stands in for the inter-process transport.
type fakeChannel struct {
	sent   []AppMessage
	events chan FlowEvent
	err    error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{events: make(chan FlowEvent, 4)}
}

func (c *fakeChannel) Send(ctx context.Context, msg AppMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *fakeChannel) Events() <-chan FlowEvent {
	return c.events
}

func (c *fakeChannel) messagesOfType(t MessageType) []AppMessage {
	var out []AppMessage
	for _, m := range c.sent {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

type fakeProxy struct {
	launches []string
	err      error
}

func (p *fakeProxy) Launch(ctx context.Context, target string, correlationID string, requestJSON string) error {
	if p.err != nil {
		return p.err
	}
	p.launches = append(p.launches, correlationID)
	return nil
}

func transactionRequestFixture(t *testing.T) domain.TransactionRequest {
	t.Helper()
	amounts, err := domain.NewAmounts(1000, "EUR")
	assert.NoError(t, err)
	return domain.TransactionRequest{
		ID:      "req-1",
		Stage:   domain.StagePreTransaction,
		Amounts: amounts,
	}
}

func serviceModelFixture(t *testing.T, channel *fakeChannel) *PreTransactionModel {
	t.Helper()
	log := logger.SetupPrettySlog()
	delegate := NewServiceComponentDelegate(channel, &fakeProxy{}, log)
	return NewPreTransactionModel(delegate, transactionRequestFixture(t), log)
}

func TestStageModel_ExactlyOnceResponse(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)
	ctx := context.Background()

	assert.NoError(t, model.SendResponse(ctx))

	err := model.SendResponse(ctx)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidState))

	responses := channel.messagesOfType(MessageTypeResponse)
	assert.Len(t, responses, 1)
	assert.Equal(t, "req-1", responses[0].RequestID)
}

func TestStageModel_AuditCap(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		model.AddAuditEntry(ctx, AuditInfo, "entry %d", i)
	}

	audits := channel.messagesOfType(MessageTypeAuditEntry)
	assert.Len(t, audits, 5)
}

func TestStageModel_AuditMessageTruncated(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)

	model.AddAuditEntry(context.Background(), AuditWarning, "%s", strings.Repeat("x", 200))

	audits := channel.messagesOfType(MessageTypeAuditEntry)
	assert.Len(t, audits, 1)

	var entry AuditEntry
	assert.NoError(t, json.Unmarshal(audits[0].Payload, &entry))
	assert.Len(t, entry.Message, 80)
	assert.Equal(t, AuditWarning, entry.Severity)
}

func TestStageModel_NoAuditAfterResponse(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)
	ctx := context.Background()

	model.AddAuditEntry(ctx, AuditInfo, "before response")
	assert.NoError(t, model.SendResponse(ctx))
	model.AddAuditEntry(ctx, AuditInfo, "after response")

	assert.Len(t, channel.messagesOfType(MessageTypeAuditEntry), 1)
}

func TestStageModel_EventStreamCompletesOnFinishImmediately(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)

	events := model.Events()
	channel.events <- FlowEvent{Type: EventProgressMessage}
	channel.events <- FlowEvent{Type: EventFinishImmediately}

	received := collectEvents(t, events)
	assert.Equal(t, []string{EventProgressMessage, EventFinishImmediately}, received)
}

func TestActivityDelegate_FinishCallbackInvoked(t *testing.T) {
	channel := newFakeChannel()
	finished := make(chan struct{})
	delegate := NewActivityComponentDelegate(channel, func() { close(finished) }, logger.SetupPrettySlog())

	events := delegate.FlowServiceEvents()
	channel.events <- FlowEvent{Type: EventFinishImmediately}

	collectEvents(t, events)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("finish callback was not invoked")
	}
}

func TestActivityDelegate_NoNestedActivityLaunch(t *testing.T) {
	channel := newFakeChannel()
	log := logger.SetupPrettySlog()
	delegate := NewActivityComponentDelegate(channel, nil, log)
	model := NewPreTransactionModel(delegate, transactionRequestFixture(t), log)

	_, err := model.ProcessInActivity(context.Background(), "com.example.pos/.PaymentActivity", "{}")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidState))
}

func TestServiceDelegate_FreshCorrelationIDPerLaunch(t *testing.T) {
	channel := newFakeChannel()
	proxy := &fakeProxy{}
	log := logger.SetupPrettySlog()
	delegate := NewServiceComponentDelegate(channel, proxy, log)
	model := NewPreTransactionModel(delegate, transactionRequestFixture(t), log)

	first, err := model.ProcessInActivity(context.Background(), "com.example.pos/.PaymentActivity", "{}")
	assert.NoError(t, err)
	second, err := model.ProcessInActivity(context.Background(), "com.example.pos/.PaymentActivity", "{}")
	assert.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, []string{first, second}, proxy.launches)
}

func TestStageModel_SendFailurePropagates(t *testing.T) {
	channel := newFakeChannel()
	channel.err = e.NewFlowError("CHANNEL_CLOSED", "peer went away")
	model := serviceModelFixture(t, channel)

	err := model.SendResponse(context.Background())
	assert.Error(t, err)

	var flowErr *e.FlowError
	assert.True(t, errors.As(err, &flowErr))
	assert.Equal(t, "CHANNEL_CLOSED", flowErr.Code)
}

func collectEvents(t *testing.T, events <-chan FlowEvent) []string {
	t.Helper()
	var received []string
	timeout := time.After(time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return received
			}
			received = append(received, event.Type)
		case <-timeout:
			t.Fatal("event stream did not complete")
			return received
		}
	}
}

func TestPreTransactionModel_FlowResponsePayload(t *testing.T) {
	channel := newFakeChannel()
	model := serviceModelFixture(t, channel)
	ctx := context.Background()

	assert.NoError(t, model.SetAdditionalAmount(domain.AmountSurcharge, 25))
	assert.NoError(t, model.SetAdditionalAmountAsBaseFraction(domain.AmountCharity, 0.01))
	model.AddRequestData("loyalty_id", "cust-77")
	assert.NoError(t, model.SendResponse(ctx))

	responses := channel.messagesOfType(MessageTypeResponse)
	assert.Len(t, responses, 1)

	flowResponse, err := domain.FlowResponseFromJSON(string(responses[0].Payload))
	assert.NoError(t, err)
	assert.True(t, flowResponse.HasAugmentedData())
	assert.Equal(t, int64(25), flowResponse.UpdatedRequestAmounts.Additional(domain.AmountSurcharge))
	assert.Equal(t, int64(10), flowResponse.UpdatedRequestAmounts.Additional(domain.AmountCharity))
	assert.Equal(t, "cust-77", flowResponse.RequestAdditionalData.GetString("loyalty_id"))
}

func TestTransactionProcessingModel_BuilderGuard(t *testing.T) {
	channel := newFakeChannel()
	log := logger.SetupPrettySlog()
	delegate := NewServiceComponentDelegate(channel, nil, log)
	request := transactionRequestFixture(t)
	model := NewTransactionProcessingModel(delegate, request, log)
	ctx := context.Background()

	// no outcome set yet: nothing must reach the channel
	err := model.SendResponse(ctx)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrInvalidState))
	assert.Empty(t, channel.sent)

	model.ResponseBuilder().ApproveWithAmounts(request.Amounts)
	assert.NoError(t, model.SendResponse(ctx))
	assert.Len(t, channel.messagesOfType(MessageTypeResponse), 1)
}

func TestSplitModel_NextTransaction(t *testing.T) {
	channel := newFakeChannel()
	log := logger.SetupPrettySlog()
	delegate := NewServiceComponentDelegate(channel, nil, log)

	basket := domain.NewBasket(
		domain.BasketItem{Label: "Coffee", Amount: 350, Quantity: 2},
	)
	amounts, err := domain.NewAmounts(basket.TotalValue(), "EUR")
	assert.NoError(t, err)
	payment, err := domain.NewPaymentBuilder(domain.FlowTypeSale).
		WithAmounts(amounts).
		WithBasket(basket).
		EnableSplit().
		Build()
	assert.NoError(t, err)

	model := NewSplitModel(delegate, "split-req-1", domain.NewSplitRequest(payment, amounts, nil), log)

	helper, err := model.BasketHelper()
	assert.NoError(t, err)
	assert.True(t, helper.IsFirstSplit())

	next := domain.NewBasket(domain.BasketItem{Label: "Coffee", Amount: 350, Quantity: 1})
	assert.NoError(t, model.SetBasketForNextTransaction(next))
	assert.NoError(t, model.SendResponse(context.Background()))

	responses := channel.messagesOfType(MessageTypeResponse)
	assert.Len(t, responses, 1)
	flowResponse, err := domain.FlowResponseFromJSON(string(responses[0].Payload))
	assert.NoError(t, err)
	assert.Equal(t, int64(350), flowResponse.UpdatedRequestAmounts.BaseAmount)
	assert.False(t, flowResponse.RequestAdditionalData.IsEmpty())
}

func TestCardReadingModel_Responses(t *testing.T) {
	testCases := []struct {
		name            string
		act             func(m *CardReadingModel) error
		expectedOutcome domain.TransactionOutcome
	}{
		{
			name: "approve with card",
			act: func(m *CardReadingModel) error {
				return m.ApproveWithCard(context.Background(), domain.Card{MaskedPan: "541333******0001", Token: "tok-1"})
			},
			expectedOutcome: domain.OutcomeApproved,
		},
		{
			name: "decline",
			act: func(m *CardReadingModel) error {
				return m.Decline(context.Background(), "card removed")
			},
			expectedOutcome: domain.OutcomeDeclined,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			channel := newFakeChannel()
			log := logger.SetupPrettySlog()
			model := NewCardReadingModel(NewServiceComponentDelegate(channel, nil, log), transactionRequestFixture(t), log)

			assert.NoError(t, testCase.act(model))

			responses := channel.messagesOfType(MessageTypeResponse)
			assert.Len(t, responses, 1)
			decoded, err := domain.TransactionResponseFromJSON(string(responses[0].Payload))
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedOutcome, decoded.Outcome)
		})
	}
}

func TestPostTransactionModel_References(t *testing.T) {
	channel := newFakeChannel()
	log := logger.SetupPrettySlog()

	summary := domain.TransactionSummary{TransactionID: "tx-1"}
	model := NewPostTransactionModel(NewServiceComponentDelegate(channel, nil, log), "req-9", summary, log)

	model.SetPaymentReference("receipt_no", fmt.Sprintf("r-%d", 42))
	assert.NoError(t, model.SendResponse(context.Background()))

	responses := channel.messagesOfType(MessageTypeResponse)
	assert.Len(t, responses, 1)
	decoded, err := domain.FlowResponseFromJSON(string(responses[0].Payload))
	assert.NoError(t, err)
	assert.Equal(t, "r-42", decoded.PaymentReferences.GetString("receipt_no"))
}
