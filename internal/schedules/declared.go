package schedules

import (
	"time"

	"github.com/hochfrequenz/jules-tools/internal/config"
)

// Annotate attaches the first matching declared schedule to each summary and
// computes when its next run is due, counting from the latest session, or
// from now if the group has no usable timestamp.
func Annotate(summaries []Summary, declared []config.DeclaredSchedule, now time.Time) {
	for i := range summaries {
		s := &summaries[i]
		for j := range declared {
			d := &declared[j]
			if !d.Matches(s.Title, s.Prompt) {
				continue
			}
			sched, err := config.ParseCron(d.Cron)
			if err != nil {
				// config.Validate rejects these; skip rather than abort the report
				continue
			}
			from := now
			if latest, ok := s.LatestTime(); ok {
				from = latest
			}
			next := sched.Next(from)
			s.Schedule = d.Name
			s.NextRun = FormatTime(next)
			s.Overdue = next.Before(now)
			break
		}
	}
}
