package store

// NoteStatus is the processing state of a clinical note.
type NoteStatus string

const (
	// NoteStatusPending is reserved for a future asynchronous pipeline.
	// The current synchronous flow enriches a note before it is ever
	// persisted, so a stored note never carries this status.
	NoteStatusPending NoteStatus = "PENDING"
	// NoteStatusProcessing is reserved, see NoteStatusPending.
	NoteStatusProcessing NoteStatus = "PROCESSING"
	// NoteStatusCompleted is the only status the synchronous flow produces.
	NoteStatusCompleted NoteStatus = "COMPLETED"
	// NoteStatusFailed is reserved, see NoteStatusPending. Enrichment
	// failures degrade to a fallback summary instead of failing the note.
	NoteStatusFailed NoteStatus = "FAILED"
)

// ICDCode is a suggested ICD-10-CM code with the model's confidence in [0,1].
type ICDCode struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// Note is the unit of persistence: the user-supplied note plus the
// structured summary extracted at creation time. Notes are immutable
// once created.
type Note struct {
	ID        string
	CreatorID string
	Title     string
	RawText   string
	Status    NoteStatus
	CreatedTs int64

	ChiefComplaint          string
	HistoryOfPresentIllness string
	Assessment              string
	Plan                    string
	Medications             []string
	Allergies               []string
	ICDCodes                []ICDCode

	// SummarySource records how the summary was produced: "llm" for a
	// successful model extraction, "fallback" for the degraded path.
	SummarySource string
}

// FindNote is the filter for note lookups. CreatorID is always required:
// storage is scoped per caller even while the API serves a single demo user.
type FindNote struct {
	ID        *string
	CreatorID string
}
