// Package clinical turns raw clinical note text into a structured summary
// through a single LLM call with a deterministic fallback. Summarize never
// fails: every failure mode degrades to the fallback summary, so callers
// always receive a well-formed record.
package clinical

import (
	"context"
	"time"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

// Summary source tags.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Summary is the structured extraction of a clinical note.
type Summary struct {
	ChiefComplaint          string
	HistoryOfPresentIllness string
	Assessment              string
	Plan                    string
	Medications             []string
	Allergies               []string
	ICDCodes                []store.ICDCode

	// Source is SourceLLM for a successful model extraction,
	// SourceFallback for the degraded path.
	Source string
	// Latency is the wall-clock duration of the model call, zero on fallback.
	Latency time.Duration
}

// Summarizer produces a structured summary for raw note text.
type Summarizer interface {
	// Summarize never returns an error: inference failures, malformed
	// envelopes, and unparseable output all terminate in the fallback
	// summary with the failure reason named in the assessment.
	Summarize(ctx context.Context, rawText string) *Summary
}
