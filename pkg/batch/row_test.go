package batch

import (
	"testing"

	"github.com/booklab-kr/bookmeta/pkg/resolver"
)

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name       string
		outcome    resolver.Outcome
		wantAuthor string
		wantLabel  string
		wantStatus resolver.Status
	}{
		{
			name: "title and author",
			outcome: resolver.Outcome{
				Title:     "소년이 온다",
				Author:    "한강 지음",
				Publisher: "창비",
				Year:      "2014",
				Status:    resolver.StatusSuccess,
			},
			wantAuthor: "한강",
			wantLabel:  "소년이 온다(한강)",
			wantStatus: resolver.StatusSuccess,
		},
		{
			name: "multiple authors use short form",
			outcome: resolver.Outcome{
				Title:  "책",
				Author: "지음: 김철수, 그림 이영희",
				Status: resolver.StatusSuccess,
			},
			wantAuthor: "김철수, 이영희",
			wantLabel:  "책(김철수 외)",
			wantStatus: resolver.StatusSuccess,
		},
		{
			name: "et-al suffix dropped from label",
			outcome: resolver.Outcome{
				Title:  "무제",
				Author: "편집부 외 3인, 지음",
				Status: resolver.StatusSuccess,
			},
			wantAuthor: "편집부",
			wantLabel:  "무제(편집부)",
			wantStatus: resolver.StatusSuccess,
		},
		{
			name:       "no title yields empty label",
			outcome:    resolver.Outcome{Author: "한강 지음", Status: resolver.StatusSuccess},
			wantAuthor: "한강",
			wantLabel:  "",
			wantStatus: resolver.StatusSuccess,
		},
		{
			name:       "unspecified status defaults to not-found",
			outcome:    resolver.Outcome{},
			wantAuthor: "",
			wantLabel:  "",
			wantStatus: resolver.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := BuildRow("9788954644411", tt.outcome)
			if row.ISBN != "9788954644411" {
				t.Errorf("ISBN = %q", row.ISBN)
			}
			if row.Author != tt.wantAuthor {
				t.Errorf("Author = %q, want %q", row.Author, tt.wantAuthor)
			}
			if row.TitleAuthor != tt.wantLabel {
				t.Errorf("TitleAuthor = %q, want %q", row.TitleAuthor, tt.wantLabel)
			}
			if row.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", row.Status, tt.wantStatus)
			}
		})
	}
}

func TestAppendNote(t *testing.T) {
	if got := appendNote("", ReuseNote); got != ReuseNote {
		t.Errorf("appendNote on empty = %q", got)
	}
	if got := appendNote("existing", ReuseNote); got != "existing; "+ReuseNote {
		t.Errorf("appendNote = %q, want existing note preserved", got)
	}
}
