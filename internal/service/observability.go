package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Observer receives one event per service operation. attrs are
// alternating slog key/value pairs.
type Observer interface {
	Observe(ctx context.Context, op string, d time.Duration, err error, attrs ...any)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, string, time.Duration, error, ...any) {}

type slogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver writes service operation events to the provided writer.
func NewSlogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &slogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *slogObserver) Observe(ctx context.Context, op string, d time.Duration, err error, attrs ...any) {
	args := make([]any, 0, 6+len(attrs))
	args = append(args, "op", op, "duration_ms", d.Milliseconds())
	args = append(args, attrs...)
	if err != nil {
		args = append(args, "error", err.Error())
		o.logger.ErrorContext(ctx, "service_op", args...)
		return
	}
	o.logger.InfoContext(ctx, "service_op", args...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
