package stage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"payflow/internal/domain"
	"payflow/pkg/e"
)

const (
	maxAuditEntries   = 5
	maxAuditMessage   = 80
	responseSentError = "response already sent for this stage invocation"
)

// BaseStageModel is the per-invocation protocol state shared by every
// stage model: one response per invocation, at most five audit entries
// before it, and the flow-event stream of the hosting delegate. A
// model is short-lived; it dies with its invocation once the response
// is sent or the flow is aborted.
type BaseStageModel struct {
	delegate  ComponentDelegate
	requestID string
	stage     domain.PaymentStage
	logger    *slog.Logger

	mu           sync.Mutex
	responseSent bool
	auditCount   int
}

func newBaseStageModel(delegate ComponentDelegate, stage domain.PaymentStage, requestID string, logger *slog.Logger) *BaseStageModel {
	return &BaseStageModel{
		delegate:  delegate,
		requestID: requestID,
		stage:     stage,
		logger:    logger,
	}
}

func (m *BaseStageModel) RequestID() string {
	return m.requestID
}

func (m *BaseStageModel) Stage() domain.PaymentStage {
	return m.stage
}

// AddAuditEntry sends an out-of-band audit message. Messages are
// truncated to 80 characters and capped at five per invocation; calls
// beyond the cap, or after the response was sent, are silent no-ops.
func (m *BaseStageModel) AddAuditEntry(ctx context.Context, severity AuditSeverity, format string, args ...interface{}) {
	m.mu.Lock()
	if m.auditCount >= maxAuditEntries || m.responseSent {
		m.mu.Unlock()
		m.logger.Warn("audit entry dropped",
			slog.String("request_id", m.requestID),
			slog.Int("audit_count", m.auditCount))
		return
	}
	m.auditCount++
	m.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	if len(message) > maxAuditMessage {
		message = message[:maxAuditMessage]
	}

	payload, err := json.Marshal(AuditEntry{Severity: severity, Message: message})
	if err != nil {
		m.logger.Error("failed to marshal audit entry", slog.String("error", err.Error()))
		return
	}
	msg := AppMessage{
		RequestID: m.requestID,
		Type:      MessageTypeAuditEntry,
		Payload:   payload,
	}
	if err := m.delegate.SendMessage(ctx, msg); err != nil {
		m.logger.Error("failed to send audit entry", slog.String("error", err.Error()))
	}
}

// sendResponse forwards the single response of this invocation. The
// second and any further call fails; this exactly-once contract is
// what protects the processing service from duplicate or conflicting
// responses out of one stage invocation.
func (m *BaseStageModel) sendResponse(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	if m.responseSent {
		m.mu.Unlock()
		return e.Wrap("stage.BaseStageModel: "+responseSentError, e.ErrInvalidState)
	}
	m.responseSent = true
	m.mu.Unlock()

	msg := AppMessage{
		RequestID: m.requestID,
		Type:      MessageTypeResponse,
		Payload:   payload,
	}
	if err := m.delegate.SendMessage(ctx, msg); err != nil {
		return e.Wrap("stage.BaseStageModel: failed to send response", err)
	}
	m.logger.Info("stage response sent",
		slog.String("request_id", m.requestID),
		slog.String("stage", m.stage.String()))
	return nil
}

// Events exposes orchestrator-pushed flow events. The stream completes
// on FINISH_IMMEDIATELY; subscribers must stop consuming once it does.
func (m *BaseStageModel) Events() <-chan FlowEvent {
	return m.delegate.FlowServiceEvents()
}

// ProcessInActivity hands the invocation over to a foreground activity
// proxy. Only valid for service-hosted models.
func (m *BaseStageModel) ProcessInActivity(ctx context.Context, target string, requestJSON string) (string, error) {
	return m.delegate.ProcessInActivity(ctx, target, requestJSON)
}
