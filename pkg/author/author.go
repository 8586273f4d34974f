// Package author parses free-text author-credit strings into a cleaned
// list of person names.
//
// Upstream bibliographic records carry author credits in wildly
// inconsistent formats: role annotations ("지음", "옮김", "illustrator"),
// mixed separators (middle dot, semicolon, slash), parenthetical notes,
// and et-al suffixes ("외 2인"). This package is a best-effort text
// cleaning pipeline driven by hand-maintained policy tables; malformed
// input degrades to an empty result rather than an error.
package author

import (
	"regexp"
	"strings"
)

// Result holds the parsed author credit.
type Result struct {
	// Name is every surviving person name joined by ", ".
	Name string

	// Short is a display form: the first name alone, with an "외"
	// (et al.) marker appended when more than one name survived.
	Short string

	// Count is the number of surviving person names.
	Count int
}

// roleWords are role/function tokens removed wherever they appear as
// standalone tokens. Hand-maintained policy table, not exhaustive.
var roleWords = map[string]bool{
	// Korean
	"지음": true, "지은이": true, "글": true, "글쓴이": true,
	"그림": true, "그린이": true, "옮김": true, "옮긴이": true,
	"엮음": true, "엮은이": true, "감수": true, "번역": true,
	"편저": true, "편집": true, "저자": true, "공저": true,
	"저": true, "역": true, "편": true, "작": true, "사진": true,
	// Latin
	"author": true, "authors": true, "illustrator": true,
	"translator": true, "editor": true, "supervisor": true,
	"written": true, "illustrated": true, "translated": true,
	"edited": true, "by": true, "with": true,
}

var (
	// Parenthetical/bracketed/braced annotations are dropped entirely.
	annotationRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|\{[^}]*\}|（[^）]*）`)

	// Separator variants unified to commas before splitting.
	separatorRe = regexp.MustCompile(`[·;|/]|，|、|\s+&\s+|\s+and\s+`)

	// Leading "role:" prefix immediately before a name, e.g. "지음: 김철수".
	rolePrefixRe = regexp.MustCompile(`^[\p{Hangul}A-Za-z]{1,12}\s*:\s*`)

	// Trailing et-al suffix on a token: "외", "외 2인", "외 다수", "et al."
	etAlSuffixRe = regexp.MustCompile(`\s*(외(\s*\d+\s*인|\s*다수)?|et\s*al\.?)$`)

	// Native-script person name: 1-8 Hangul syllables per segment with
	// optional spaced segments. Interpunct never appears here: separatorRe
	// has already turned it into a comma, since upstream records use it
	// to join distinct names ("김철수·이영희").
	hangulNameRe = regexp.MustCompile(`^\p{Hangul}{1,8}(\s\p{Hangul}{1,8}){0,3}$`)

	// Latin-script person name: letters with interior spaces, periods,
	// hyphens, apostrophes; must start and end with a letter.
	latinNameRe = regexp.MustCompile(`^\p{L}[\p{L}.\-'\s]*\p{L}$`)

	digitRe = regexp.MustCompile(`\d`)
)

// Normalize parses a raw author-credit string into a Result.
// Zero extractable names yields the zero Result, never an error.
func Normalize(raw string) Result {
	s := annotationRe.ReplaceAllString(raw, " ")
	s = separatorRe.ReplaceAllString(s, ",")

	var names []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		tok = rolePrefixRe.ReplaceAllString(tok, "")
		tok = etAlSuffixRe.ReplaceAllString(tok, "")
		tok = stripRoleWords(tok)
		tok = strings.Trim(tok, " .:")
		if isPersonName(tok) {
			names = append(names, tok)
		}
	}

	if len(names) == 0 {
		return Result{}
	}

	short := names[0]
	if len(names) > 1 {
		short += " 외"
	}

	return Result{
		Name:  strings.Join(names, ", "),
		Short: short,
		Count: len(names),
	}
}

// stripRoleWords removes role tokens that stand alone inside a candidate,
// e.g. "김철수 지음" -> "김철수".
func stripRoleWords(tok string) string {
	fields := strings.Fields(tok)
	kept := fields[:0]
	for _, f := range fields {
		if roleWords[strings.ToLower(f)] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// isPersonName applies the plausibility filter: bounded length, no
// digits, no leftover role words, and one of the script patterns.
func isPersonName(tok string) bool {
	if tok == "" {
		return false
	}
	n := len([]rune(tok))
	if n < 2 || n > 30 {
		return false
	}
	if digitRe.MatchString(tok) {
		return false
	}
	if roleWords[strings.ToLower(tok)] {
		return false
	}
	if hangulNameRe.MatchString(tok) {
		return true
	}
	return latinNameRe.MatchString(tok)
}
