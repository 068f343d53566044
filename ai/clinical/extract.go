package clinical

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

// ErrNoJSONObject is returned when the model output contains no JSON object.
var ErrNoJSONObject = errors.New("no JSON object found")

// ExtractJSONObject locates an embedded JSON object in arbitrary model
// output: the substring between the first '{' and the last '}'. Models
// routinely wrap the requested JSON in commentary or markdown fences, so
// everything outside the braces is discarded unseen.
func ExtractJSONObject(text string) (string, error) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first < 0 || last < 0 || last <= first {
		return "", ErrNoJSONObject
	}
	return text[first : last+1], nil
}

// looseSummary defers per-field decoding so one mistyped field cannot
// poison its siblings.
type looseSummary struct {
	ChiefComplaint          json.RawMessage `json:"chiefComplaint"`
	HistoryOfPresentIllness json.RawMessage `json:"historyOfPresentIllness"`
	Assessment              json.RawMessage `json:"assessment"`
	Plan                    json.RawMessage `json:"plan"`
	Medications             json.RawMessage `json:"medications"`
	Allergies               json.RawMessage `json:"allergies"`
	ICDCodes                json.RawMessage `json:"icdCodes"`
}

// DecodeSummary coerces a loosely-typed JSON object into a Summary. Text
// fields default to the empty string when absent or not a string; sequence
// fields default to an empty sequence when absent or not a sequence.
// Sequence elements are trusted as given, without deeper validation. An
// error is returned only when data is not a JSON object at all.
func DecodeSummary(data []byte) (*Summary, error) {
	var loose looseSummary
	if err := json.Unmarshal(data, &loose); err != nil {
		return nil, errors.Wrap(err, "JSON parse error")
	}

	return &Summary{
		ChiefComplaint:          asString(loose.ChiefComplaint),
		HistoryOfPresentIllness: asString(loose.HistoryOfPresentIllness),
		Assessment:              asString(loose.Assessment),
		Plan:                    asString(loose.Plan),
		Medications:             asStringList(loose.Medications),
		Allergies:               asStringList(loose.Allergies),
		ICDCodes:                asICDCodes(loose.ICDCodes),
	}, nil
}

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func asStringList(raw json.RawMessage) []string {
	list := []string{}
	if len(raw) == 0 {
		return list
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return list
	}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			list = append(list, s)
			continue
		}
		// Non-string elements are carried through as their literal JSON
		// text rather than dropped.
		list = append(list, string(item))
	}
	return list
}

func asICDCodes(raw json.RawMessage) []store.ICDCode {
	codes := []store.ICDCode{}
	if len(raw) == 0 {
		return codes
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return codes
	}
	for _, item := range items {
		var code store.ICDCode
		// Members that match are kept, mistyped ones are left zero.
		_ = json.Unmarshal(item, &code)
		codes = append(codes, code)
	}
	return codes
}
