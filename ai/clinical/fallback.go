package clinical

import (
	"fmt"
	"strings"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

const (
	fallbackChiefComplaintRunes = 200
	fallbackHistoryRunes        = 600

	fallbackChiefComplaintPlaceholder = "See full note in rawText."
	fallbackPlan                      = "Review note manually and update the plan as needed."

	fallbackICDCode        = "R69"
	fallbackICDDescription = "Unknown and unspecified causes of morbidity"
	fallbackICDConfidence  = 0.1
)

// Fallback builds the degraded summary from the original note text. It is
// deterministic and identical for every failure mode; only the reason named
// in the assessment differs. The R69 code marks the record as unclassified
// rather than leaving the code sequence empty.
func Fallback(rawText, reason string) *Summary {
	firstLine, _, _ := strings.Cut(rawText, "\n")
	chiefComplaint := truncateRunes(firstLine, fallbackChiefComplaintRunes)
	if chiefComplaint == "" {
		chiefComplaint = fallbackChiefComplaintPlaceholder
	}

	return &Summary{
		ChiefComplaint:          chiefComplaint,
		HistoryOfPresentIllness: truncateRunes(rawText, fallbackHistoryRunes),
		Assessment:              fmt.Sprintf("LLM summary unavailable (%s). Using fallback summary.", reason),
		Plan:                    fallbackPlan,
		Medications:             []string{},
		Allergies:               []string{},
		ICDCodes: []store.ICDCode{
			{
				Code:        fallbackICDCode,
				Description: fallbackICDDescription,
				Confidence:  fallbackICDConfidence,
			},
		},
		Source: SourceFallback,
	}
}

// truncateRunes safely truncates a string by rune count, not bytes.
func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
