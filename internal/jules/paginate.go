package jules

import "context"

// paginate calls fetch with the previous page's continuation token until the
// token comes back empty. maxPages bounds the loop against a server that
// never stops returning a token; reaching it is not an error.
func paginate[T any](ctx context.Context, c *Client, path string, maxPages int, fetch func(token string) ([]T, string, error)) ([]T, error) {
	var items []T
	token := ""
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch, next, err := fetch(token)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if next == "" {
			return items, nil
		}
		token = next
	}
	if maxPages > 0 {
		c.logger.Warn("page limit reached, results may be incomplete", "path", path, "pages", maxPages)
	}
	return items, nil
}
