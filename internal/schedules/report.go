package schedules

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hochfrequenz/jules-tools/internal/config"
	"github.com/hochfrequenz/jules-tools/internal/domain"
)

// Report is the schedules overview of one repository.
type Report struct {
	Repo          string    `json:"repo" yaml:"repo"`
	Source        string    `json:"source" yaml:"source"`
	TotalSessions int       `json:"totalSessions" yaml:"totalSessions"`
	Groups        []Summary `json:"groups" yaml:"groups"`
}

// BuildReport filters sessions down to sourceID, groups them and summarizes
// each group. It does no I/O.
func BuildReport(repo, sourceID string, sessions []domain.Session, declared []config.DeclaredSchedule, now time.Time) *Report {
	filtered := FilterBySource(sessions, sourceID)
	summaries := summarizeAll(GroupSessions(filtered))
	Annotate(summaries, declared, now)

	return &Report{
		Repo:          repo,
		Source:        sourceID,
		TotalSessions: len(filtered),
		Groups:        summaries,
	}
}

// Render writes the human readable report. Headings are styled when w is a
// terminal, unless plain is set.
func (r *Report) Render(w io.Writer, plain bool) error {
	renderer := lipgloss.NewRenderer(w)
	if plain {
		renderer.SetColorProfile(termenv.Ascii)
	}
	heading := renderer.NewStyle().Bold(true)
	count := renderer.NewStyle().Foreground(lipgloss.Color("42"))
	overdue := renderer.NewStyle().Foreground(lipgloss.Color("214"))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", heading.Render("Source:"), r.Source)
	fmt.Fprintf(&b, "%s %d\n", heading.Render("Total sessions for repo:"), r.TotalSessions)
	fmt.Fprintf(&b, "%s\n", heading.Render("Potential schedules (grouped by title/prompt):"))

	for _, s := range r.Groups {
		fmt.Fprintf(&b, "- count=%s latest=%s title=%s prompt=%s",
			count.Render(fmt.Sprintf("%d", s.Count)), s.Latest, s.TitleDisplay, s.PromptDisplay)
		if s.Schedule != "" {
			fmt.Fprintf(&b, " schedule=%s next=%s", s.Schedule, s.NextRun)
			if s.Overdue {
				b.WriteString(" " + overdue.Render("(overdue)"))
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Text returns the report without any styling.
func (r *Report) Text() string {
	var b strings.Builder
	_ = r.Render(&b, true)
	return b.String()
}
