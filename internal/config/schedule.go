package config

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// DeclaredSchedule names a recurring session the user knows about, so the
// schedules report can show when the next run is due. Prompt is optional;
// when empty only the title has to match.
type DeclaredSchedule struct {
	Name   string `toml:"name"`
	Title  string `toml:"title"`
	Prompt string `toml:"prompt"`
	Cron   string `toml:"cron"`
}

// ParseCron parses a five-field cron expression or a descriptor like @daily.
func ParseCron(expr string) (cron.Schedule, error) {
	return cronParser.Parse(expr)
}

// Validate checks if the declaration is usable
func (d *DeclaredSchedule) Validate() error {
	if d.Name == "" {
		return errors.New("schedule name is required")
	}
	if d.Title == "" {
		return fmt.Errorf("schedule %s: title is required", d.Name)
	}
	if d.Cron == "" {
		return fmt.Errorf("schedule %s: cron expression is required", d.Name)
	}
	if _, err := ParseCron(d.Cron); err != nil {
		return fmt.Errorf("schedule %s: invalid cron expression: %w", d.Name, err)
	}
	return nil
}

// Matches reports whether a session group with this title and prompt is an
// instance of the declared schedule.
func (d *DeclaredSchedule) Matches(title, prompt string) bool {
	if d.Title != title {
		return false
	}
	return d.Prompt == "" || d.Prompt == prompt
}
