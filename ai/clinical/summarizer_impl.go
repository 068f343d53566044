package clinical

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/shail31-tech/Clinical-Notes-Summary/ai/core/llm"
	"github.com/shail31-tech/Clinical-Notes-Summary/ai/metrics"
)

// Fallback reasons surfaced in the degraded assessment text.
const (
	reasonDisabled    = "inference disabled"
	reasonUnavailable = "model invocation error"
	reasonNoJSON      = "no JSON object found"
	reasonParseError  = "JSON parse error"
)

// maxConcurrentCalls caps in-flight LLM requests so a burst of uploads
// cannot exhaust provider connection limits.
const maxConcurrentCalls = 8

type llmSummarizer struct {
	llm       llm.Service
	collector *metrics.Collector
	sem       *semaphore.Weighted
}

// NewSummarizer creates a summarizer backed by the given LLM service.
// A nil service is valid: every note then takes the fallback path, which
// keeps the intake flow fully functional without inference credentials.
func NewSummarizer(llmSvc llm.Service, collector *metrics.Collector) Summarizer {
	return &llmSummarizer{
		llm:       llmSvc,
		collector: collector,
		sem:       semaphore.NewWeighted(maxConcurrentCalls),
	}
}

func (s *llmSummarizer) Summarize(ctx context.Context, rawText string) *Summary {
	if s.llm == nil {
		return s.fallback(rawText, reasonDisabled)
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		slog.Warn("summarize: cancelled while waiting for inference slot", "error", err)
		return s.fallback(rawText, reasonUnavailable)
	}
	defer s.sem.Release(1)

	start := time.Now()
	content, stats, err := s.llm.Chat(ctx, BuildMessages(rawText))
	if err != nil {
		slog.Warn("summarize: LLM call failed", "error", err)
		return s.fallback(rawText, reasonUnavailable)
	}

	jsonSlice, err := ExtractJSONObject(content)
	if err != nil {
		slog.Warn("summarize: no JSON object in model output", "output_length", len(content))
		return s.fallback(rawText, reasonNoJSON)
	}

	summary, err := DecodeSummary([]byte(jsonSlice))
	if err != nil {
		slog.Warn("summarize: model output is not a JSON object", "error", err)
		return s.fallback(rawText, reasonParseError)
	}

	summary.Source = SourceLLM
	summary.Latency = time.Since(start)
	if stats != nil {
		slog.Debug("summarize: completed",
			"total_tokens", stats.TotalTokens,
			"duration_ms", summary.Latency.Milliseconds(),
		)
	}
	s.collector.RecordSummary(SourceLLM, summary.Latency)

	return summary
}

func (s *llmSummarizer) fallback(rawText, reason string) *Summary {
	s.collector.RecordSummary(SourceFallback, 0)
	s.collector.RecordFallback(reason)
	return Fallback(rawText, reason)
}
