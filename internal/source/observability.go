package source

import (
	"context"
	"log/slog"
)

// FetchEvent records metadata about a single remote fetch.
type FetchEvent struct {
	Source    string
	URL       string
	LatencyMs int64
	Records   int
	Success   bool
	ErrorCode string
}

// Observer receives events about remote fetches for logging.
type Observer interface {
	OnFetchComplete(ctx context.Context, event FetchEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(context.Context, FetchEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs fetch events through logger. A nil logger yields a
// NoopObserver.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) OnFetchComplete(ctx context.Context, event FetchEvent) {
	attrs := []any{
		"source", event.Source,
		"url", event.URL,
		"latency_ms", event.LatencyMs,
		"records", event.Records,
		"success", event.Success,
	}
	if !event.Success {
		attrs = append(attrs, "error_code", event.ErrorCode)
		o.logger.WarnContext(ctx, "source_fetch", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "source_fetch", attrs...)
}
