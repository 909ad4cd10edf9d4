package llm

import (
	"context"
	"log"
	"time"

	"github.com/akarpov/mentora/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an
// event and writes a one-line summary to the process log.
type LoggingProvider struct {
	inner  Provider
	events store.LLMEventRepo
}

// WithLogging wraps a Provider with request event logging. A nil event
// repo disables persistence but keeps the log line.
func WithLogging(p Provider, events store.LLMEventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	durationMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:   l.inner.Name(),
		Model:      l.inner.ModelID(),
		Purpose:    purpose,
		DurationMs: durationMs,
		Success:    err == nil,
		ErrorKind:  ErrorKind(err),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			data.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err != nil {
		log.Printf("[llm] %s %s %s %dms error: %v", purpose, data.Provider, data.Model, durationMs, err)
	} else {
		log.Printf("[llm] %s %s %s %dms in=%d out=%d $%.4f",
			purpose, data.Provider, data.Model, durationMs,
			data.InputTokens, data.OutputTokens, data.CostUSD)
	}

	// Record the event but don't fail the request if persistence fails.
	if l.events != nil {
		if logErr := l.events.Append(ctx, data); logErr != nil {
			log.Printf("[llm] failed to record request event: %v", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
