package schedules

import (
	"strings"
	"testing"

	"github.com/hochfrequenz/jules-tools/internal/domain"
)

func TestSummarize_Latest(t *testing.T) {
	tests := []struct {
		name  string
		times []string
		want  string
	}{
		{"single", []string{"2024-01-01T00:00:00Z"}, "2024-01-01T00:00:00+00:00"},
		{"max wins", []string{"2024-01-01T00:00:00Z", "2024-03-01T12:30:00Z", "2024-02-01T00:00:00Z"}, "2024-03-01T12:30:00+00:00"},
		{"offset kept", []string{"2024-01-01T10:00:00+02:00"}, "2024-01-01T10:00:00+02:00"},
		{"offsets compared as instants", []string{"2024-01-01T10:00:00+02:00", "2024-01-01T09:00:00Z"}, "2024-01-01T09:00:00+00:00"},
		{"fractional seconds", []string{"2024-05-01T12:34:56.789Z"}, "2024-05-01T12:34:56.789000+00:00"},
		{"nanoseconds truncated", []string{"2024-05-01T12:34:56.123456789Z"}, "2024-05-01T12:34:56.123456+00:00"},
		{"malformed skipped", []string{"yesterday", "2024-01-02T00:00:00Z", ""}, "2024-01-02T00:00:00+00:00"},
		{"none parse", []string{"", "not a time"}, UnknownTime},
		{"no sessions with time", nil, UnknownTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Group{Key: Key{Title: "t", Prompt: "p"}}
			for i, ts := range tt.times {
				g.Sessions = append(g.Sessions, domain.Session{ID: string(rune('a' + i)), CreateTime: ts})
			}
			got := Summarize(g)
			if got.Latest != tt.want {
				t.Errorf("Latest = %q, want %q", got.Latest, tt.want)
			}
			if got.Count != len(tt.times) {
				t.Errorf("Count = %d, want %d", got.Count, len(tt.times))
			}
		})
	}
}

func TestSummarize_Display(t *testing.T) {
	s := Summarize(Group{Key: Key{Title: "", Prompt: "Fix bug"}})
	if s.TitleDisplay != NoTitle {
		t.Errorf("TitleDisplay = %q, want %q", s.TitleDisplay, NoTitle)
	}
	if s.PromptDisplay != "Fix bug" {
		t.Errorf("PromptDisplay = %q", s.PromptDisplay)
	}

	s = Summarize(Group{Key: Key{Title: "Nightly"}})
	if s.TitleDisplay != "Nightly" {
		t.Errorf("TitleDisplay = %q, want Nightly", s.TitleDisplay)
	}
}

func TestTruncatePrompt(t *testing.T) {
	exact := strings.Repeat("a", MaxPromptDisplay)
	if got := TruncatePrompt(exact); got != exact {
		t.Errorf("prompt of %d chars should be verbatim", MaxPromptDisplay)
	}

	long := strings.Repeat("b", MaxPromptDisplay+1)
	want := strings.Repeat("b", MaxPromptDisplay) + Ellipsis
	if got := TruncatePrompt(long); got != want {
		t.Errorf("TruncatePrompt(long) = %q, want %q", got, want)
	}

	// counted in characters, not bytes
	multi := strings.Repeat("ü", MaxPromptDisplay)
	if got := TruncatePrompt(multi); got != multi {
		t.Errorf("multi-byte prompt of %d chars should be verbatim", MaxPromptDisplay)
	}
	multiLong := strings.Repeat("ü", MaxPromptDisplay+5)
	if got := TruncatePrompt(multiLong); got != strings.Repeat("ü", MaxPromptDisplay)+Ellipsis {
		t.Errorf("multi-byte truncation = %q", got)
	}
}

func TestParseTime(t *testing.T) {
	valid := []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00+00:00",
		"2024-01-01T00:00:00.5-05:00",
		"2024-01-01T00:00:00",
		"2024-01-01 00:00:00+00:00",
		"2024-01-01 00:00:00.25",
		"2024-01-01",
	}
	for _, v := range valid {
		if _, ok := ParseTime(v); !ok {
			t.Errorf("ParseTime(%q) failed", v)
		}
	}

	invalid := []string{"", "2024-13-01T00:00:00Z", "01/02/2024", "now"}
	for _, v := range invalid {
		if _, ok := ParseTime(v); ok {
			t.Errorf("ParseTime(%q) should fail", v)
		}
	}
}

func TestSummarize_SpaceSeparatedTimestamp(t *testing.T) {
	g := Group{
		Key: Key{Title: "Nightly"},
		Sessions: []domain.Session{
			{ID: "a", CreateTime: "2024-01-01 00:00:00+00:00"},
			{ID: "b", CreateTime: "2024-01-02 08:30:00"},
		},
	}
	if got := Summarize(g).Latest; got != "2024-01-02T08:30:00+00:00" {
		t.Errorf("Latest = %q, want 2024-01-02T08:30:00+00:00", got)
	}
}

func TestFormatTime_NaiveTimestampGetsUTCOffset(t *testing.T) {
	parsed, ok := ParseTime("2024-03-04T05:06:07")
	if !ok {
		t.Fatal("ParseTime failed")
	}
	if got := FormatTime(parsed); got != "2024-03-04T05:06:07+00:00" {
		t.Errorf("FormatTime = %q", got)
	}
}
