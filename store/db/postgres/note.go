package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

var noteFields = []string{
	"id", "creator_id", "title", "raw_text", "status", "created_ts",
	"chief_complaint", "history_of_present_illness", "assessment", "plan",
	"medications", "allergies", "icd_codes", "summary_source",
}

func (d *DB) CreateNote(ctx context.Context, create *store.Note) (*store.Note, error) {
	medications, allergies, icdCodes, err := marshalSummaryLists(create)
	if err != nil {
		return nil, err
	}

	args := []any{
		create.ID, create.CreatorID, create.Title, create.RawText, create.Status, create.CreatedTs,
		create.ChiefComplaint, create.HistoryOfPresentIllness, create.Assessment, create.Plan,
		medications, allergies, icdCodes, create.SummarySource,
	}
	stmt := `INSERT INTO note (` + strings.Join(noteFields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)`
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return create, nil
}

func (d *DB) GetNote(ctx context.Context, find *store.FindNote) (*store.Note, error) {
	if find.ID == nil {
		return nil, fmt.Errorf("note id is required")
	}

	query := `SELECT ` + strings.Join(noteFields, ", ") + ` FROM note
		WHERE id = $1 AND creator_id = $2`
	note, err := scanNote(d.db.QueryRowContext(ctx, query, *find.ID, find.CreatorID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (d *DB) ListNotes(ctx context.Context, find *store.FindNote) ([]*store.Note, error) {
	where, args := []string{"creator_id = " + placeholder(1)}, []any{find.CreatorID}
	if find.ID != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *find.ID)
	}

	query := `SELECT ` + strings.Join(noteFields, ", ") + ` FROM note
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		list = append(list, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*store.Note, error) {
	note := &store.Note{}
	var medications, allergies, icdCodes []byte
	if err := row.Scan(
		&note.ID, &note.CreatorID, &note.Title, &note.RawText, &note.Status, &note.CreatedTs,
		&note.ChiefComplaint, &note.HistoryOfPresentIllness, &note.Assessment, &note.Plan,
		&medications, &allergies, &icdCodes, &note.SummarySource,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(medications, &note.Medications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal medications: %w", err)
	}
	if err := json.Unmarshal(allergies, &note.Allergies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allergies: %w", err)
	}
	if err := json.Unmarshal(icdCodes, &note.ICDCodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal icd codes: %w", err)
	}

	return note, nil
}

// marshalSummaryLists serializes the sequence fields to JSON columns.
// Nil slices serialize as empty arrays so an empty sequence round-trips
// as a value, distinct from "not documented".
func marshalSummaryLists(note *store.Note) (medications, allergies, icdCodes []byte, err error) {
	medications, err = json.Marshal(emptyIfNil(note.Medications))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal medications: %w", err)
	}
	allergies, err = json.Marshal(emptyIfNil(note.Allergies))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal allergies: %w", err)
	}
	codes := note.ICDCodes
	if codes == nil {
		codes = []store.ICDCode{}
	}
	icdCodes, err = json.Marshal(codes)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal icd codes: %w", err)
	}
	return medications, allergies, icdCodes, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
