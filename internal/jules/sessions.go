package jules

import (
	"context"
	"net/http"
	"strings"

	"github.com/hochfrequenz/jules-tools/internal/domain"
)

// Object is a decoded JSON response printed as-is by the CLI
type Object = map[string]any

// ListSessions returns one page of sessions
func (c *Client) ListSessions(ctx context.Context, pageSize int, pageToken string) (Object, error) {
	var out Object
	if err := c.get(ctx, "/sessions", pageQuery(pageSize, pageToken), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllSessions follows nextPageToken until it is empty or maxPages pages
// have been fetched.
func (c *Client) ListAllSessions(ctx context.Context, pageSize, maxPages int) ([]domain.Session, error) {
	return paginate(ctx, c, "/sessions", maxPages, func(token string) ([]domain.Session, string, error) {
		var page domain.SessionsPage
		if err := c.get(ctx, "/sessions", pageQuery(pageSize, token), &page); err != nil {
			return nil, "", err
		}
		return page.Sessions, page.NextPageToken, nil
	})
}

// GetSession fetches a session by id
func (c *Client) GetSession(ctx context.Context, id string) (Object, error) {
	var out Object
	if err := c.get(ctx, sessionPath(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSession starts a new session
func (c *Client) CreateSession(ctx context.Context, req *domain.CreateSessionRequest) (Object, error) {
	var out Object
	if err := c.post(ctx, "/sessions", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSession deletes a session. The API answers with an empty body, which
// is returned as an empty object.
func (c *Client) DeleteSession(ctx context.Context, id string) (Object, error) {
	out := Object{}
	if err := c.do(ctx, http.MethodDelete, sessionPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a user message to a session
func (c *Client) SendMessage(ctx context.Context, id, message string) (Object, error) {
	var out Object
	body := map[string]string{"message": message}
	if err := c.post(ctx, sessionPath(id)+":sendMessage", body, &out); err != nil {
		return nil, err
	}
	return emptyIfNil(out), nil
}

// ApprovePlan approves the pending plan of a session
func (c *Client) ApprovePlan(ctx context.Context, id string) (Object, error) {
	var out Object
	if err := c.post(ctx, sessionPath(id)+":approvePlan", struct{}{}, &out); err != nil {
		return nil, err
	}
	return emptyIfNil(out), nil
}

// ListActivities returns one page of activities of a session
func (c *Client) ListActivities(ctx context.Context, sessionID string, pageSize int, pageToken string) (Object, error) {
	var out Object
	if err := c.get(ctx, sessionPath(sessionID)+"/activities", pageQuery(pageSize, pageToken), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActivity fetches a single activity of a session
func (c *Client) GetActivity(ctx context.Context, sessionID, activityID string) (Object, error) {
	var out Object
	path := sessionPath(sessionID) + "/activities/" + strings.TrimPrefix(activityID, "activities/")
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func emptyIfNil(o Object) Object {
	if o == nil {
		return Object{}
	}
	return o
}
