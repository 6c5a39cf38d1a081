package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/press-service/internal/access"
	"github.com/spec-kit/press-service/internal/config"
	"github.com/spec-kit/press-service/internal/events"
)

// NotificationService turns domain events into operator notifications. The
// email and webhook senders are stubs that log their payloads; the ambiguous
// reconciliation handler is the operator-visibility channel the directory
// save itself deliberately does not surface.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRoleReconciled, n.handleRoleReconciled)
	n.dispatcher.Subscribe(events.EventStaffDeleted, n.handleStaffDeleted)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventArticlePublished, n.handleArticlePublished)
}

func (n *NotificationService) handleRoleReconciled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RoleReconciledPayload)
	if !ok {
		return nil
	}
	switch access.ReconcileOutcome(payload.Outcome) {
	case access.OutcomeAmbiguous, access.OutcomeNoMatch, access.OutcomeFailed:
		n.logger.Warn("role reconciliation did not apply",
			zap.String("email", payload.Email),
			zap.String("intended_role", string(payload.NewRole)),
			zap.String("outcome", payload.Outcome))
		n.sendWebhookStub(ctx, event)
	default:
		n.logger.Info("role reconciled",
			zap.String("email", payload.Email),
			zap.String("new_role", string(payload.NewRole)))
	}
	return nil
}

func (n *NotificationService) handleStaffDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("staff entry deleted", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("job application submitted", zap.Any("payload", event.Payload))
	n.sendEmailStub(ctx, event)
	return nil
}

func (n *NotificationService) handleArticlePublished(ctx context.Context, event events.Event) error {
	n.logger.Info("article published", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
