package schedules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hochfrequenz/jules-tools/internal/domain"
)

// ErrSourceNotFound is returned when no registered source matches a repo.
var ErrSourceNotFound = errors.New("source not found")

// ResolveSource returns the identifier of the first source whose repository
// full name ends with repo. Suffix matching lets "OWNER/REPO" match
// "github.com/OWNER/REPO".
func ResolveSource(sources []domain.Source, repo string) (string, error) {
	for _, source := range sources {
		name := source.RepoFullName()
		if name != "" && strings.HasSuffix(name, repo) {
			return source.Identifier(), nil
		}
	}
	return "", fmt.Errorf("source for %s not found in sources list: %w", repo, ErrSourceNotFound)
}

// FilterBySource keeps the sessions that belong to sourceID, in order.
func FilterBySource(sessions []domain.Session, sourceID string) []domain.Session {
	var filtered []domain.Session
	for i := range sessions {
		if sessions[i].SourceName() == sourceID {
			filtered = append(filtered, sessions[i])
		}
	}
	return filtered
}
