package author

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantName  string
		wantShort string
		wantCount int
	}{
		{
			name:      "role prefix and inline role word",
			raw:       "지음: 김철수, 그림 이영희",
			wantName:  "김철수, 이영희",
			wantShort: "김철수 외",
			wantCount: 2,
		},
		{
			name:      "single korean author with role suffix",
			raw:       "한강 지음",
			wantName:  "한강",
			wantShort: "한강",
			wantCount: 1,
		},
		{
			name:      "middle dot separator",
			raw:       "김영하·박완서",
			wantName:  "김영하, 박완서",
			wantShort: "김영하 외",
			wantCount: 2,
		},
		{
			name:      "middle dot splits names before role stripping",
			raw:       "김영하·박완서 지음",
			wantName:  "김영하, 박완서",
			wantShort: "김영하 외",
			wantCount: 2,
		},
		{
			name:      "et al suffix dropped",
			raw:       "정세랑 외 2인",
			wantName:  "정세랑",
			wantShort: "정세랑",
			wantCount: 1,
		},
		{
			name:      "parenthetical annotation stripped",
			raw:       "무라카미 하루키 (村上春樹) 지음; 김난주 옮김",
			wantName:  "무라카미 하루키, 김난주",
			wantShort: "무라카미 하루키 외",
			wantCount: 2,
		},
		{
			name:      "latin names joined by and",
			raw:       "written by J. R. R. Tolkien and Christopher Tolkien",
			wantName:  "J. R. R. Tolkien, Christopher Tolkien",
			wantShort: "J. R. R. Tolkien 외",
			wantCount: 2,
		},
		{
			name:      "only role words",
			raw:       "지음, 옮김",
			wantName:  "",
			wantShort: "",
			wantCount: 0,
		},
		{
			name:      "digits rejected",
			raw:       "편집부 128명",
			wantName:  "",
			wantShort: "",
			wantCount: 0,
		},
		{
			name:      "empty input",
			raw:       "",
			wantName:  "",
			wantShort: "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Short != tt.wantShort {
				t.Errorf("Short = %q, want %q", got.Short, tt.wantShort)
			}
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
		})
	}
}
