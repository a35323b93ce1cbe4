package domain

// Session is a unit of agent work tied to one Source. Fields are typed, so a
// page holding a session whose title or prompt is not a string fails to
// decode and the listing that fetched it returns an error.
type Session struct {
	Name          string         `json:"name,omitempty"`
	ID            string         `json:"id,omitempty"`
	Title         string         `json:"title,omitempty"`
	Prompt        string         `json:"prompt,omitempty"`
	State         string         `json:"state,omitempty"`
	URL           string         `json:"url,omitempty"`
	CreateTime    string         `json:"createTime,omitempty"`
	UpdateTime    string         `json:"updateTime,omitempty"`
	SourceContext *SourceContext `json:"sourceContext,omitempty"`
}

// SourceContext ties a session to a registered source.
type SourceContext struct {
	Source            string             `json:"source,omitempty"`
	GithubRepoContext *GithubRepoContext `json:"githubRepoContext,omitempty"`
}

// GithubRepoContext holds GitHub specific session settings.
type GithubRepoContext struct {
	StartingBranch string `json:"startingBranch,omitempty"`
}

// SourceName returns the source the session belongs to, or "" if the
// session has no source context.
func (s *Session) SourceName() string {
	if s.SourceContext == nil {
		return ""
	}
	return s.SourceContext.Source
}

// Identifier returns the short session id, falling back to the resource name.
func (s *Session) Identifier() string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name
}

// SessionsPage is one page of GET /sessions.
type SessionsPage struct {
	Sessions      []Session `json:"sessions"`
	NextPageToken string    `json:"nextPageToken"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	Prompt              string        `json:"prompt"`
	SourceContext       SourceContext `json:"sourceContext"`
	Title               string        `json:"title,omitempty"`
	RequirePlanApproval bool          `json:"requirePlanApproval,omitempty"`
	AutomationMode      string        `json:"automationMode,omitempty"`
}

// NewCreateSessionRequest builds a request for a session on source that
// starts from branch.
func NewCreateSessionRequest(prompt, source, branch string) *CreateSessionRequest {
	return &CreateSessionRequest{
		Prompt: prompt,
		SourceContext: SourceContext{
			Source:            source,
			GithubRepoContext: &GithubRepoContext{StartingBranch: branch},
		},
	}
}
