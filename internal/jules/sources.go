package jules

import (
	"context"

	"github.com/hochfrequenz/jules-tools/internal/domain"
)

// ListSources returns one page of sources
func (c *Client) ListSources(ctx context.Context, pageSize int, pageToken string) (Object, error) {
	var out Object
	if err := c.get(ctx, "/sources", pageQuery(pageSize, pageToken), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllSources follows nextPageToken until it is empty or maxPages pages
// have been fetched.
func (c *Client) ListAllSources(ctx context.Context, pageSize, maxPages int) ([]domain.Source, error) {
	return paginate(ctx, c, "/sources", maxPages, func(token string) ([]domain.Source, string, error) {
		var page domain.SourcesPage
		if err := c.get(ctx, "/sources", pageQuery(pageSize, token), &page); err != nil {
			return nil, "", err
		}
		return page.Sources, page.NextPageToken, nil
	})
}
