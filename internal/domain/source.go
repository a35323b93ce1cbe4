package domain

import "encoding/json"

// Upstream responses are not consistent about field casing, so repository
// information is looked up under each known variant in this order.
var (
	repoObjectKeys   = []string{"githubRepo", "github_repo"}
	repoFullNameKeys = []string{"fullName", "full_name", "name"}
)

// Source is a repository registered with the Jules service.
type Source struct {
	Name string
	ID   string

	raw map[string]any
}

// NewSource builds a Source from an already decoded JSON object.
func NewSource(raw map[string]any) Source {
	return Source{
		Name: FirstString(raw, "name"),
		ID:   FirstString(raw, "id"),
		raw:  raw,
	}
}

// UnmarshalJSON keeps the decoded object around so that RepoFullName can
// look through whichever field variant the server sent.
func (s *Source) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSource(raw)
	return nil
}

// MarshalJSON writes the source back out as it was received.
func (s Source) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return json.Marshal(s.raw)
	}
	return json.Marshal(map[string]string{"name": s.Name, "id": s.ID})
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (s Source) MarshalYAML() (any, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	return map[string]string{"name": s.Name, "id": s.ID}, nil
}

// Identifier is the value sessions reference in sourceContext.source.
func (s Source) Identifier() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// RepoFullName returns the owner/repo string of the source, or "" if the
// source carries no repository information.
func (s Source) RepoFullName() string {
	repo := FirstObject(s.raw, repoObjectKeys...)
	if repo == nil {
		return ""
	}
	if name := FirstString(repo, repoFullNameKeys...); name != "" {
		return name
	}
	owner, name := FirstString(repo, "owner"), FirstString(repo, "repo")
	if owner != "" && name != "" {
		return owner + "/" + name
	}
	return ""
}

// SourcesPage is one page of GET /sources.
type SourcesPage struct {
	Sources       []Source `json:"sources"`
	NextPageToken string   `json:"nextPageToken"`
}
