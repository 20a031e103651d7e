package stage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"payflow/pkg/e"
)

// ComponentDelegate is the hosting strategy behind a stage model. The
// two variants mirror the two ways an app can host a stage: a
// background service or a launched foreground activity proxy.
type ComponentDelegate interface {
	SendMessage(ctx context.Context, msg AppMessage) error
	FlowServiceEvents() <-chan FlowEvent
	ProcessInActivity(ctx context.Context, target string, requestJSON string) (string, error)
}

// ServiceComponentDelegate hosts a stage invocation in a background
// service. It is the only variant allowed to launch an activity proxy.
type ServiceComponentDelegate struct {
	channel MessageChannel
	proxy   ActivityProxy
	logger  *slog.Logger

	once   sync.Once
	events chan FlowEvent
}

func NewServiceComponentDelegate(channel MessageChannel, proxy ActivityProxy, logger *slog.Logger) *ServiceComponentDelegate {
	return &ServiceComponentDelegate{
		channel: channel,
		proxy:   proxy,
		logger:  logger,
	}
}

func (d *ServiceComponentDelegate) SendMessage(ctx context.Context, msg AppMessage) error {
	return d.channel.Send(ctx, msg)
}

func (d *ServiceComponentDelegate) FlowServiceEvents() <-chan FlowEvent {
	d.once.Do(func() {
		d.events = make(chan FlowEvent)
		go forwardEvents(d.channel.Events(), d.events, nil, d.logger)
	})
	return d.events
}

// ProcessInActivity launches the given activity with the request
// payload, under a fresh correlation id per launch.
func (d *ServiceComponentDelegate) ProcessInActivity(ctx context.Context, target string, requestJSON string) (string, error) {
	if d.proxy == nil {
		return "", e.Wrap("stage.ServiceComponentDelegate: no activity proxy configured", e.ErrInvalidState)
	}
	correlationID := uuid.NewString()
	if err := d.proxy.Launch(ctx, target, correlationID, requestJSON); err != nil {
		return "", e.Wrap("stage.ServiceComponentDelegate: activity launch failed", err)
	}
	d.logger.Info("launched activity proxy",
		slog.String("target", target),
		slog.String("correlation_id", correlationID))
	return correlationID, nil
}

// ActivityComponentDelegate hosts a stage invocation in a foreground
// activity. On FINISH_IMMEDIATELY the event stream completes and the
// activity is force-finished via the injected finish callback.
type ActivityComponentDelegate struct {
	channel MessageChannel
	finish  func()
	logger  *slog.Logger

	once   sync.Once
	events chan FlowEvent
}

func NewActivityComponentDelegate(channel MessageChannel, finish func(), logger *slog.Logger) *ActivityComponentDelegate {
	return &ActivityComponentDelegate{
		channel: channel,
		finish:  finish,
		logger:  logger,
	}
}

func (d *ActivityComponentDelegate) SendMessage(ctx context.Context, msg AppMessage) error {
	return d.channel.Send(ctx, msg)
}

func (d *ActivityComponentDelegate) FlowServiceEvents() <-chan FlowEvent {
	d.once.Do(func() {
		d.events = make(chan FlowEvent)
		go forwardEvents(d.channel.Events(), d.events, d.finish, d.logger)
	})
	return d.events
}

// ProcessInActivity is not valid from an activity-hosted model; nested
// activity launching is a protocol violation.
func (d *ActivityComponentDelegate) ProcessInActivity(ctx context.Context, target string, requestJSON string) (string, error) {
	return "", e.Wrap("stage.ActivityComponentDelegate: nested activity launching is not supported", e.ErrInvalidState)
}

// forwardEvents relays channel events to the hosting app. The stream
// completes on FINISH_IMMEDIATELY or when the source closes; for
// activity hosts the finish callback force-finishes the activity.
func forwardEvents(in <-chan FlowEvent, out chan<- FlowEvent, finish func(), logger *slog.Logger) {
	defer close(out)
	for event := range in {
		out <- event
		if event.Type == EventFinishImmediately {
			logger.Info("finish immediately received, completing event stream")
			if finish != nil {
				finish()
			}
			return
		}
	}
}
