package schedules

import "time"

const (
	// UnknownTime is shown when no session of a group has a usable createTime
	UnknownTime = "unknown"
	// NoTitle is shown for groups without a title
	NoTitle = "<no title>"
	// MaxPromptDisplay is the number of characters of a prompt shown
	MaxPromptDisplay = 120
	// Ellipsis marks a truncated prompt
	Ellipsis = "…"
)

// Timestamps without an offset are taken as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Summary is the report line of one group.
type Summary struct {
	Title         string   `json:"title" yaml:"title"`
	Prompt        string   `json:"prompt" yaml:"prompt"`
	Count         int      `json:"count" yaml:"count"`
	Latest        string   `json:"latest" yaml:"latest"`
	Sessions      []string `json:"sessions" yaml:"sessions"`
	Schedule      string   `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	NextRun       string   `json:"nextRun,omitempty" yaml:"nextRun,omitempty"`
	Overdue       bool     `json:"overdue,omitempty" yaml:"overdue,omitempty"`
	TitleDisplay  string   `json:"-" yaml:"-"`
	PromptDisplay string   `json:"-" yaml:"-"`

	latest    time.Time
	hasLatest bool
}

// Summarize computes count, latest creation time and display strings of a
// group. Sessions with a missing or malformed createTime still count but do
// not contribute to Latest.
func Summarize(g Group) Summary {
	s := Summary{
		Title:         g.Key.Title,
		Prompt:        g.Key.Prompt,
		Count:         len(g.Sessions),
		Latest:        UnknownTime,
		Sessions:      make([]string, 0, len(g.Sessions)),
		TitleDisplay:  TitleDisplay(g.Key.Title),
		PromptDisplay: TruncatePrompt(g.Key.Prompt),
	}

	for i := range g.Sessions {
		s.Sessions = append(s.Sessions, g.Sessions[i].Identifier())
		t, ok := ParseTime(g.Sessions[i].CreateTime)
		if !ok {
			continue
		}
		if !s.hasLatest || t.After(s.latest) {
			s.latest = t
			s.hasLatest = true
		}
	}
	if s.hasLatest {
		s.Latest = FormatTime(s.latest)
	}
	return s
}

// LatestTime returns the parsed latest creation time, if any.
func (s *Summary) LatestTime() (time.Time, bool) {
	return s.latest, s.hasLatest
}

// ParseTime parses an ISO-8601 timestamp such as "2024-01-02T03:04:05Z" or
// "2024-01-02T03:04:05.123+02:00".
func ParseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders t as "2006-01-02T15:04:05+00:00", adding microseconds
// only when they are non-zero. The offset is always printed, so a createTime
// that had none comes out as UTC with "+00:00".
func FormatTime(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000-07:00")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}

// TitleDisplay returns title, or NoTitle when it is empty.
func TitleDisplay(title string) string {
	if title == "" {
		return NoTitle
	}
	return title
}

// TruncatePrompt shortens prompts longer than MaxPromptDisplay characters.
func TruncatePrompt(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= MaxPromptDisplay {
		return prompt
	}
	return string(runes[:MaxPromptDisplay]) + Ellipsis
}

func summarizeAll(groups []Group) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summarize(g))
	}
	return out
}
