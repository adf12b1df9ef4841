package pexels

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Download streams the media file at fileURL into w and returns the number
// of bytes written. Media files are served from Pexels' CDN and need no
// Authorization header.
func (c *Client) Download(ctx context.Context, fileURL string, w io.Writer) (int64, error) {
	if strings.TrimSpace(fileURL) == "" {
		return 0, invalidParam("url", "must not be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return 0, &RequestError{URL: fileURL, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &RequestError{URL: fileURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, &RequestError{URL: fileURL, Err: err}
	}

	c.logger.Debug().
		Str("url", fileURL).
		Int64("bytes", n).
		Msg("Downloaded media file")

	return n, nil
}
