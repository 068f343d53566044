package clinical

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shail31-tech/Clinical-Notes-Summary/ai/core/llm"
)

// stubLLM returns a canned response or error for every chat call.
type stubLLM struct {
	content string
	err     error
	calls   int
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message) (string, *llm.CallStats, error) {
	s.calls++
	if s.err != nil {
		return "", nil, s.err
	}
	return s.content, &llm.CallStats{TotalTokens: 42}, nil
}

func (s *stubLLM) Warmup(_ context.Context) {}

func TestSummarizeSuccess(t *testing.T) {
	stub := &stubLLM{content: `Sure! {"chiefComplaint":"Headache","plan":"Hydration","medications":["Acetaminophen"],"icdCodes":[{"code":"R51.9","description":"Headache, unspecified","confidence":0.7}]} hope that helps`}
	s := NewSummarizer(stub, nil)

	summary := s.Summarize(context.Background(), "Patient with headache.")
	require.NotNil(t, summary)

	assert.Equal(t, SourceLLM, summary.Source)
	assert.Equal(t, "Headache", summary.ChiefComplaint)
	assert.Equal(t, "Hydration", summary.Plan)
	assert.Equal(t, []string{"Acetaminophen"}, summary.Medications)
	require.Len(t, summary.ICDCodes, 1)
	assert.Equal(t, "R51.9", summary.ICDCodes[0].Code)
	assert.Equal(t, 1, stub.calls)
}

func TestSummarizeNilServiceFallsBack(t *testing.T) {
	s := NewSummarizer(nil, nil)

	summary := s.Summarize(context.Background(), "Cough.\nProductive for a week.")
	require.NotNil(t, summary)

	assert.Equal(t, SourceFallback, summary.Source)
	assert.Equal(t, "Cough.", summary.ChiefComplaint)
	assert.Contains(t, summary.Assessment, "inference disabled")
}

func TestSummarizeChatErrorFallsBack(t *testing.T) {
	stub := &stubLLM{err: errors.New("connection refused")}
	s := NewSummarizer(stub, nil)

	summary := s.Summarize(context.Background(), "Fever.")
	assert.Equal(t, SourceFallback, summary.Source)
	assert.Contains(t, summary.Assessment, "model invocation error")
}

func TestSummarizeNoJSONFallsBack(t *testing.T) {
	stub := &stubLLM{content: "I am unable to summarize this note."}
	s := NewSummarizer(stub, nil)

	summary := s.Summarize(context.Background(), "Fever.")
	assert.Equal(t, SourceFallback, summary.Source)
	assert.Contains(t, summary.Assessment, "no JSON object found")
}

func TestSummarizeBrokenJSONFallsBack(t *testing.T) {
	stub := &stubLLM{content: `{"chiefComplaint": "unterminated}`}
	s := NewSummarizer(stub, nil)

	summary := s.Summarize(context.Background(), "Fever.")
	assert.Equal(t, SourceFallback, summary.Source)
	assert.Contains(t, summary.Assessment, "JSON parse error")
}
