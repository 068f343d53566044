package clinical

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

func TestFallbackBasic(t *testing.T) {
	raw := "Chest pain for two days.\nWorse on exertion. No radiation."
	summary := Fallback(raw, "model invocation error")

	assert.Equal(t, "Chest pain for two days.", summary.ChiefComplaint)
	assert.Equal(t, raw, summary.HistoryOfPresentIllness)
	assert.Equal(t, "LLM summary unavailable (model invocation error). Using fallback summary.", summary.Assessment)
	assert.Equal(t, fallbackPlan, summary.Plan)
	assert.Equal(t, []string{}, summary.Medications)
	assert.Equal(t, []string{}, summary.Allergies)
	assert.Equal(t, []store.ICDCode{{
		Code:        "R69",
		Description: "Unknown and unspecified causes of morbidity",
		Confidence:  0.1,
	}}, summary.ICDCodes)
	assert.Equal(t, SourceFallback, summary.Source)
	assert.Zero(t, summary.Latency)
}

func TestFallbackDeterministic(t *testing.T) {
	raw := "Follow-up visit.\nStable."
	assert.Equal(t, Fallback(raw, "no JSON object found"), Fallback(raw, "no JSON object found"))
}

func TestFallbackTruncation(t *testing.T) {
	firstLine := strings.Repeat("a", 500)
	raw := firstLine + "\n" + strings.Repeat("b", 500)

	summary := Fallback(raw, "JSON parse error")
	assert.Len(t, []rune(summary.ChiefComplaint), fallbackChiefComplaintRunes)
	assert.Len(t, []rune(summary.HistoryOfPresentIllness), fallbackHistoryRunes)
	assert.True(t, strings.HasPrefix(summary.ChiefComplaint, "aaa"))
}

func TestFallbackTruncationIsRuneSafe(t *testing.T) {
	raw := strings.Repeat("日", 300)
	summary := Fallback(raw, "inference disabled")

	runes := []rune(summary.ChiefComplaint)
	require.Len(t, runes, fallbackChiefComplaintRunes)
	for _, r := range runes {
		assert.Equal(t, '日', r)
	}
}

func TestFallbackEmptyFirstLine(t *testing.T) {
	summary := Fallback("\nbody only", "inference disabled")
	assert.Equal(t, fallbackChiefComplaintPlaceholder, summary.ChiefComplaint)
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly at limit", "abc", 3, "abc"},
		{"over limit", "abcdef", 3, "abc"},
		{"multibyte", "日本語テキスト", 3, "日本語"},
		{"zero limit passes through", "abc", 0, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateRunes(tt.input, tt.maxLen))
		})
	}
}
