package cms

import (
	"context"
	"log/slog"
	"time"
)

// RequestEvent describes one round trip to the CMS.
type RequestEvent struct {
	Method    string
	Path      string
	StartTime time.Time
	Status    int
	Err       error
}

// Hook observes outgoing requests.
type Hook interface {
	BeforeRequest(ctx context.Context, event *RequestEvent) context.Context
	AfterRequest(ctx context.Context, event *RequestEvent)
}

// RequestHook logs every CMS request with its duration.
type RequestHook struct {
	logger *slog.Logger
}

func NewRequestHook(logger *slog.Logger) *RequestHook {
	return &RequestHook{
		logger: logger,
	}
}

func (h *RequestHook) BeforeRequest(ctx context.Context, event *RequestEvent) context.Context {
	return ctx
}

func (h *RequestHook) AfterRequest(ctx context.Context, event *RequestEvent) {
	duration := time.Since(event.StartTime)
	if event.Err != nil {
		h.logger.ErrorContext(ctx, "CMS request failed",
			"method", event.Method,
			"path", event.Path,
			"status", event.Status,
			"duration", duration,
			"error", event.Err,
		)
		return
	}

	h.logger.InfoContext(ctx, "CMS request executed",
		"method", event.Method,
		"path", event.Path,
		"status", event.Status,
		"duration", duration,
	)
}
