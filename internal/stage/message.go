// Package stage implements the per-invocation protocol between a flow
// or payment app and the flow processing service: one request in,
// exactly one response out, with a bounded number of out-of-band audit
// entries and a stream of orchestrator-pushed events. The transport
// that carries the messages is external; only its boundary interfaces
// live here.
package stage

import (
	"context"
	"encoding/json"

	"payflow/internal/domain"
)

// MessageType tags the envelope of every inter-process message.
type MessageType string

const (
	MessageTypeRequest    MessageType = "request"
	MessageTypeResponse   MessageType = "response"
	MessageTypeFlowEvent  MessageType = "flow-service-event"
	MessageTypeAuditEntry MessageType = "audit-entry"
)

// AppMessage is the envelope consumed and produced at the transport
// boundary. Field names are stable: the peer may run a different
// build.
type AppMessage struct {
	RequestID string          `json:"request_id"`
	Type      MessageType     `json:"type"`
	Sender    string          `json:"sender,omitempty"`
	Receiver  string          `json:"receiver,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Flow event types pushed by the processing service.
const (
	EventFinishImmediately   = "FINISH_IMMEDIATELY"
	EventConfirmationRequest = "CONFIRMATION_REQUEST"
	EventProgressMessage     = "PROGRESS_MESSAGE"
	EventResumeUserInterface = "RESUME_USER_INTERFACE"
)

// FlowEvent is an orchestrator-pushed notification for the hosting
// app.
type FlowEvent struct {
	Type string                 `json:"type"`
	Data *domain.AdditionalData `json:"data,omitempty"`
}

// AuditEntry is the payload of an audit-entry message.
type AuditEntry struct {
	Severity AuditSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// AuditSeverity grades audit entries.
type AuditSeverity string

const (
	AuditInfo    AuditSeverity = "INFO"
	AuditWarning AuditSeverity = "WARNING"
	AuditError   AuditSeverity = "ERROR"
)

// MessageChannel is the boundary with the inter-process transport.
// Implementations translate channel failures into e.FlowError before
// they reach this package. Events carries orchestrator-pushed flow
// events and is closed when the underlying channel completes.
type MessageChannel interface {
	Send(ctx context.Context, msg AppMessage) error
	Events() <-chan FlowEvent
}

// ActivityProxy launches a foreground activity on behalf of a
// service-hosted stage model. Discovery and lifecycle of the activity
// are external concerns.
type ActivityProxy interface {
	Launch(ctx context.Context, target string, correlationID string, requestJSON string) error
}
