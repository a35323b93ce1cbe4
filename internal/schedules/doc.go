// Package schedules approximates recurring Jules schedules for a repository.
//
// The API has no notion of a recurring session, so sessions that share the
// exact same title and prompt are assumed to come from one schedule. This is
// a heuristic: two unrelated sessions with identical text land in the same
// group, and nothing here looks at the spacing between creation times.
package schedules
