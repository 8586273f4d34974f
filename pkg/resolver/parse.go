package resolver

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// searchResponse is the upstream search envelope: a document list plus a
// total-count field. TOTAL_COUNT arrives as a JSON string.
type searchResponse struct {
	TotalCount string        `json:"TOTAL_COUNT"`
	Docs       []upstreamDoc `json:"docs"`
}

// upstreamDoc is one bibliographic record. Only the fields the resolver
// extracts are mapped.
type upstreamDoc struct {
	Title           string `json:"TITLE"`
	Author          string `json:"AUTHOR"`
	Publisher       string `json:"PUBLISHER"`
	PublishPredate  string `json:"PUBLISH_PREDATE"`
	RealPublishDate string `json:"REAL_PUBLISH_DATE"`
	InputDate       string `json:"INPUT_DATE"`
}

var (
	digits8Re = regexp.MustCompile(`^\d{8}$`)
	digits4Re = regexp.MustCompile(`^\d{4}$`)
	isoDateRe = regexp.MustCompile(`^(\d{4})-\d{2}-\d{2}$`)
)

// parseSearchResponse decodes the upstream body and classifies it.
// A body that is not the expected structure is a parse failure; zero
// documents (or an explicit zero count) is a stable not-found.
func parseSearchResponse(body []byte) (Outcome, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Outcome{}, &UpstreamError{
			Class:   ErrorClassParse,
			Message: "unexpected response structure: " + err.Error(),
		}
	}

	if total, err := strconv.Atoi(strings.TrimSpace(resp.TotalCount)); err == nil && total == 0 {
		return Outcome{Status: StatusNotFound}, nil
	}
	if len(resp.Docs) == 0 {
		return Outcome{Status: StatusNotFound}, nil
	}

	// First matching document only; no multi-candidate resolution.
	doc := resp.Docs[0]
	outcome := Outcome{
		Title:     strings.TrimSpace(doc.Title),
		Author:    strings.TrimSpace(doc.Author),
		Publisher: strings.TrimSpace(doc.Publisher),
		Year:      extractYear(doc),
		Status:    StatusSuccess,
	}

	if outcome.Title == "" && outcome.Author == "" && outcome.Publisher == "" {
		outcome.Status = StatusNotFound
	}

	return outcome, nil
}

// extractYear tries the date fields in priority order. Accepted forms:
// an 8-digit date (first 4 digits), a bare 4-digit year, or YYYY-MM-DD.
func extractYear(doc upstreamDoc) string {
	for _, field := range []string{doc.PublishPredate, doc.RealPublishDate, doc.InputDate} {
		if y := yearFrom(strings.TrimSpace(field)); y != "" {
			return y
		}
	}
	return ""
}

func yearFrom(s string) string {
	switch {
	case digits8Re.MatchString(s):
		return s[:4]
	case digits4Re.MatchString(s):
		return s
	case isoDateRe.MatchString(s):
		return isoDateRe.FindStringSubmatch(s)[1]
	default:
		return ""
	}
}
