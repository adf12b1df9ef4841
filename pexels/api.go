package pexels

import (
	"context"
	"io"
)

// API defines the interface for Pexels operations
type API interface {
	// SearchPhotos searches for photos matching the query
	SearchPhotos(ctx context.Context, params SearchPhotosParams) (*PhotoPage, error)

	// CuratedPhotos returns the curated photo feed
	CuratedPhotos(ctx context.Context, params CuratedPhotosParams) (*PhotoPage, error)

	// GetPhoto retrieves a single photo by ID
	GetPhoto(ctx context.Context, id int) (*Photo, error)

	// SearchVideos searches for videos matching the query
	SearchVideos(ctx context.Context, params SearchVideosParams) (*VideoPage, error)

	// PopularVideos returns the popular video feed
	PopularVideos(ctx context.Context, params PopularVideosParams) (*VideoPage, error)

	// GetVideo retrieves a single video by ID
	GetVideo(ctx context.Context, id int) (*Video, error)

	// SearchCollections returns the user's collections
	SearchCollections(ctx context.Context, params CollectionsParams) (*CollectionPage, error)

	// FeaturedCollections returns the featured collections feed
	FeaturedCollections(ctx context.Context, params CollectionsParams) (*CollectionPage, error)

	// CollectionMedia returns the mixed media within a single collection
	CollectionMedia(ctx context.Context, id string, params CollectionMediaParams) (*MediaPage, error)

	// Download streams a media file to w
	Download(ctx context.Context, fileURL string, w io.Writer) (int64, error)
}

// Compile-time check that Client satisfies the API interface
var _ API = (*Client)(nil)
