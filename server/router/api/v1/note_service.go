package v1

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

type CreateNoteRequest struct {
	Title   string `json:"title"`
	RawText string `json:"rawText"`
}

// NoteResponse is the wire form of a note. CreatedAt is rendered RFC3339
// from the stored unix timestamp.
type NoteResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	RawText   string `json:"rawText"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`

	ChiefComplaint          string          `json:"chiefComplaint"`
	HistoryOfPresentIllness string          `json:"historyOfPresentIllness"`
	Assessment              string          `json:"assessment"`
	Plan                    string          `json:"plan"`
	Medications             []string        `json:"medications"`
	Allergies               []string        `json:"allergies"`
	ICDCodes                []store.ICDCode `json:"icdCodes"`

	SummarySource string `json:"summarySource"`
}

type ListNotesResponse struct {
	Items []*NoteResponse `json:"items"`
}

// CreateNote handles POST /api/v1/notes. Validation happens before any
// inference or storage work; a rejected request has no side effects.
func (s *APIV1Service) CreateNote(c echo.Context) error {
	ctx := c.Request().Context()

	request := &CreateNoteRequest{}
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, errorMessage("Malformed request body"))
	}
	if strings.TrimSpace(request.Title) == "" {
		return c.JSON(http.StatusBadRequest, errorMessage("title is required"))
	}
	if strings.TrimSpace(request.RawText) == "" {
		return c.JSON(http.StatusBadRequest, errorMessage("rawText is required"))
	}

	summary := s.Summarizer.Summarize(ctx, request.RawText)

	note := &store.Note{
		ID:        uuid.NewString(),
		CreatorID: demoUserID,
		Title:     request.Title,
		RawText:   request.RawText,
		Status:    store.NoteStatusCompleted,
		CreatedTs: time.Now().Unix(),

		ChiefComplaint:          summary.ChiefComplaint,
		HistoryOfPresentIllness: summary.HistoryOfPresentIllness,
		Assessment:              summary.Assessment,
		Plan:                    summary.Plan,
		Medications:             summary.Medications,
		Allergies:               summary.Allergies,
		ICDCodes:                summary.ICDCodes,
		SummarySource:           summary.Source,
	}

	created, err := s.Store.CreateNote(ctx, note)
	if err != nil {
		slog.Error("failed to create note", "error", err)
		return c.JSON(http.StatusInternalServerError, errorMessage("Failed to save note"))
	}

	slog.Info("note created",
		"id", created.ID,
		"summary_source", created.SummarySource,
	)
	return c.JSON(http.StatusCreated, convertNote(created))
}

// ListNotes handles GET /api/v1/notes.
func (s *APIV1Service) ListNotes(c echo.Context) error {
	ctx := c.Request().Context()

	notes, err := s.Store.ListNotes(ctx, &store.FindNote{CreatorID: demoUserID})
	if err != nil {
		slog.Error("failed to list notes", "error", err)
		return c.JSON(http.StatusInternalServerError, errorMessage("Failed to list notes"))
	}

	response := &ListNotesResponse{Items: make([]*NoteResponse, 0, len(notes))}
	for _, note := range notes {
		response.Items = append(response.Items, convertNote(note))
	}
	return c.JSON(http.StatusOK, response)
}

// GetNote handles GET /api/v1/notes/:id.
func (s *APIV1Service) GetNote(c echo.Context) error {
	ctx := c.Request().Context()

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, errorMessage("note id is required"))
	}

	note, err := s.Store.GetNote(ctx, &store.FindNote{ID: &id, CreatorID: demoUserID})
	if err != nil {
		slog.Error("failed to get note", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, errorMessage("Failed to get note"))
	}
	if note == nil {
		return c.JSON(http.StatusNotFound, errorMessage("Note not found"))
	}
	return c.JSON(http.StatusOK, convertNote(note))
}

func convertNote(note *store.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		RawText:   note.RawText,
		Status:    string(note.Status),
		CreatedAt: time.Unix(note.CreatedTs, 0).UTC().Format(time.RFC3339),

		ChiefComplaint:          note.ChiefComplaint,
		HistoryOfPresentIllness: note.HistoryOfPresentIllness,
		Assessment:              note.Assessment,
		Plan:                    note.Plan,
		Medications:             emptyIfNil(note.Medications),
		Allergies:               emptyIfNil(note.Allergies),
		ICDCodes:                emptyCodesIfNil(note.ICDCodes),

		SummarySource: note.SummarySource,
	}
}

// Sequences always serialize as [], never null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func emptyCodesIfNil(codes []store.ICDCode) []store.ICDCode {
	if codes == nil {
		return []store.ICDCode{}
	}
	return codes
}

func errorMessage(message string) map[string]string {
	return map[string]string{"message": message}
}
