package schedules

import (
	"sort"

	"github.com/hochfrequenz/jules-tools/internal/domain"
)

// Key identifies a potential schedule. Missing titles and prompts are "".
type Key struct {
	Title  string
	Prompt string
}

// Group is the set of sessions sharing one Key, in first-seen order.
type Group struct {
	Key      Key
	Sessions []domain.Session
}

// GroupSessions partitions sessions by title and prompt. Groups come back
// largest first; groups of equal size keep the order in which their first
// session appeared. That tie order is a side effect of the stable sort and
// callers should not build on it.
func GroupSessions(sessions []domain.Session) []Group {
	index := make(map[Key]int)
	var groups []Group

	for _, session := range sessions {
		key := Key{Title: session.Title, Prompt: session.Prompt}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Sessions = append(groups[i].Sessions, session)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Sessions) > len(groups[j].Sessions)
	})
	return groups
}
