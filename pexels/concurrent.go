package pexels

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultFetchConcurrency bounds concurrent get-by-id requests so a large
// batch does not burn through the API quota in one burst
const defaultFetchConcurrency = 10

// GetPhotos fetches multiple photos by ID concurrently. Results are
// returned in the order of ids. The first error cancels the remaining
// fetches.
func (c *Client) GetPhotos(ctx context.Context, ids []int) ([]*Photo, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := validateID("id", id); err != nil {
			return nil, err
		}
	}

	photos := make([]*Photo, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			photo, err := c.GetPhoto(ctx, id)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("photo_id", id).
					Msg("Failed to fetch photo")
				return err
			}
			photos[i] = photo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetVideos fetches multiple videos by ID concurrently. Results are
// returned in the order of ids. The first error cancels the remaining
// fetches.
func (c *Client) GetVideos(ctx context.Context, ids []int) ([]*Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if err := validateID("id", id); err != nil {
			return nil, err
		}
	}

	videos := make([]*Video, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			video, err := c.GetVideo(ctx, id)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Int("video_id", id).
					Msg("Failed to fetch video")
				return err
			}
			videos[i] = video
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return videos, nil
}
