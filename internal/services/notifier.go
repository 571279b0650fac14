package services

import (
	"context"
	"log/slog"

	"eventcomposer/internal/domain"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a Notifier that writes notifications to logger.
func NewLogNotifier(logger *slog.Logger) domain.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, kind domain.NotifyKind, message string) {
	level := slog.LevelInfo
	if kind == domain.NotifyError {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, "notification", "kind", kind, "message", message)
}

type mailNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	to       string
	logger   *slog.Logger
}

// NewMailNotifier returns a Notifier that emails every notification to the address
// to using the "notification" template. Delivery failures are logged and dropped.
func NewMailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, to string, logger *slog.Logger) domain.Notifier {
	return &mailNotifier{mailer: mailer, renderer: renderer, to: to, logger: logger}
}

func (n *mailNotifier) Notify(ctx context.Context, kind domain.NotifyKind, message string) {
	data := domain.NotificationEmailData{Success: kind == domain.NotifySuccess, Message: message}
	subject, htmlBody, textBody, err := n.renderer.Render("notification", data)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to render notification", "err", err)
		return
	}
	if err := n.mailer.Send(ctx, n.to, subject, htmlBody, textBody); err != nil {
		n.logger.ErrorContext(ctx, "failed to send notification", "to", n.to, "err", err)
		return
	}
	n.logger.DebugContext(ctx, "notification sent", "to", n.to, "kind", kind)
}
