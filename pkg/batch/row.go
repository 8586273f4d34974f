// Package batch runs the batch-resolution pipeline: per-row
// normalization, in-batch memoization of upstream lookups, a
// concurrency-limited scheduler, and row assembly with an ordered
// summary.
package batch

import (
	"github.com/booklab-kr/bookmeta/pkg/author"
	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

// ReuseNote marks a row whose outcome was shared from an earlier
// duplicate occurrence in the same batch.
const ReuseNote = "reused earlier result for same ISBN"

// Row is one output record. Exactly one Row is produced per input
// position; duplicates are never merged or dropped.
type Row struct {
	// ISBN is the normalized identifier, or the raw token when
	// normalization failed validation.
	ISBN string `json:"isbn"`

	// Title is the resolved book title.
	Title string `json:"title"`

	// Author is the normalized, comma-joined person-name list.
	Author string `json:"author"`

	// TitleAuthor is the composite display label "title(short author)".
	TitleAuthor string `json:"titleAuthor"`

	// Publisher is the resolved publisher name.
	Publisher string `json:"publisher"`

	// Year is the four-digit publication year, or empty.
	Year string `json:"year"`

	// Status is the terminal classification for this row.
	Status resolver.Status `json:"status"`

	// Note carries annotations: error detail, reuse marker.
	Note string `json:"note"`
}

// BuildRow assembles the public row from an identifier and its outcome.
// The composite label is "{title}({short author})" when both exist,
// the bare title when only the title exists, and empty otherwise.
func BuildRow(id string, outcome resolver.Outcome) Row {
	status := outcome.Status
	if status == "" {
		status = resolver.StatusNotFound
	}

	parsed := author.Normalize(outcome.Author)

	label := ""
	if outcome.Title != "" {
		label = outcome.Title
		if parsed.Short != "" {
			label += "(" + parsed.Short + ")"
		}
	}

	return Row{
		ISBN:        id,
		Title:       outcome.Title,
		Author:      parsed.Name,
		TitleAuthor: label,
		Publisher:   outcome.Publisher,
		Year:        outcome.Year,
		Status:      status,
		Note:        outcome.Note,
	}
}

// appendNote appends marker to an existing note without replacing it.
func appendNote(note, marker string) string {
	if note == "" {
		return marker
	}
	return note + "; " + marker
}
