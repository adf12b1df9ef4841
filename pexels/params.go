package pexels

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// MinPerPage is the smallest page size the API accepts
	MinPerPage = 1
	// MaxPerPage is the largest page size the API accepts
	MaxPerPage = 80
)

// validatePagination checks the shared page/per_page bounds. Zero means
// "not set" and is omitted from the request, letting the server default
// apply. Out-of-range values are rejected, never clamped.
func validatePagination(page, perPage int) error {
	if page < 0 {
		return invalidParam("page", "must be >= 1, got %d", page)
	}
	if perPage < 0 || perPage > MaxPerPage {
		return invalidParam("per_page", "must be between %d and %d, got %d", MinPerPage, MaxPerPage, perPage)
	}
	return nil
}

func setPagination(v url.Values, page, perPage int) {
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
}

// SearchPhotosParams are the inputs to Client.SearchPhotos. Query is
// required; everything else is optional and omitted from the request when
// zero-valued.
type SearchPhotosParams struct {
	Query       string
	Orientation Orientation
	Size        Size
	Color       Color
	Locale      Locale
	Page        int
	PerPage     int
}

// Validate checks the parameters without touching the network
func (p SearchPhotosParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return invalidParam("query", "must not be empty")
	}
	return validatePagination(p.Page, p.PerPage)
}

func (p SearchPhotosParams) values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	if p.Orientation != "" {
		v.Set("orientation", p.Orientation.String())
	}
	if p.Size != "" {
		v.Set("size", p.Size.String())
	}
	if p.Color != "" {
		v.Set("color", p.Color.String())
	}
	if p.Locale != "" {
		v.Set("locale", p.Locale.String())
	}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// CuratedPhotosParams are the inputs to Client.CuratedPhotos
type CuratedPhotosParams struct {
	Page    int
	PerPage int
}

// Validate checks the parameters without touching the network
func (p CuratedPhotosParams) Validate() error {
	return validatePagination(p.Page, p.PerPage)
}

func (p CuratedPhotosParams) values() url.Values {
	v := url.Values{}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// SearchVideosParams are the inputs to Client.SearchVideos. Query is
// required; the video search endpoint takes no color filter.
type SearchVideosParams struct {
	Query       string
	Orientation Orientation
	Size        Size
	Locale      Locale
	Page        int
	PerPage     int
}

// Validate checks the parameters without touching the network
func (p SearchVideosParams) Validate() error {
	if strings.TrimSpace(p.Query) == "" {
		return invalidParam("query", "must not be empty")
	}
	return validatePagination(p.Page, p.PerPage)
}

func (p SearchVideosParams) values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	if p.Orientation != "" {
		v.Set("orientation", p.Orientation.String())
	}
	if p.Size != "" {
		v.Set("size", p.Size.String())
	}
	if p.Locale != "" {
		v.Set("locale", p.Locale.String())
	}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// PopularVideosParams are the inputs to Client.PopularVideos. All filters
// are optional; zero means unconstrained.
type PopularVideosParams struct {
	MinWidth    int
	MinHeight   int
	MinDuration int
	MaxDuration int
	Page        int
	PerPage     int
}

// Validate checks the parameters without touching the network
func (p PopularVideosParams) Validate() error {
	if p.MinWidth < 0 {
		return invalidParam("min_width", "must be >= 0, got %d", p.MinWidth)
	}
	if p.MinHeight < 0 {
		return invalidParam("min_height", "must be >= 0, got %d", p.MinHeight)
	}
	if p.MinDuration < 0 {
		return invalidParam("min_duration", "must be >= 0, got %d", p.MinDuration)
	}
	if p.MaxDuration < 0 {
		return invalidParam("max_duration", "must be >= 0, got %d", p.MaxDuration)
	}
	if p.MaxDuration > 0 && p.MinDuration > p.MaxDuration {
		return invalidParam("min_duration", "must not exceed max_duration (%d > %d)", p.MinDuration, p.MaxDuration)
	}
	return validatePagination(p.Page, p.PerPage)
}

func (p PopularVideosParams) values() url.Values {
	v := url.Values{}
	if p.MinWidth > 0 {
		v.Set("min_width", strconv.Itoa(p.MinWidth))
	}
	if p.MinHeight > 0 {
		v.Set("min_height", strconv.Itoa(p.MinHeight))
	}
	if p.MinDuration > 0 {
		v.Set("min_duration", strconv.Itoa(p.MinDuration))
	}
	if p.MaxDuration > 0 {
		v.Set("max_duration", strconv.Itoa(p.MaxDuration))
	}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// CollectionsParams are the inputs to Client.SearchCollections and
// Client.FeaturedCollections
type CollectionsParams struct {
	Page    int
	PerPage int
}

// Validate checks the parameters without touching the network
func (p CollectionsParams) Validate() error {
	return validatePagination(p.Page, p.PerPage)
}

func (p CollectionsParams) values() url.Values {
	v := url.Values{}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// CollectionMediaParams are the inputs to Client.CollectionMedia. Type
// narrows the result to photos or videos; Sort orders items within the
// collection.
type CollectionMediaParams struct {
	Type    MediaType
	Sort    MediaSort
	Page    int
	PerPage int
}

// Validate checks the parameters without touching the network
func (p CollectionMediaParams) Validate() error {
	return validatePagination(p.Page, p.PerPage)
}

func (p CollectionMediaParams) values() url.Values {
	v := url.Values{}
	if p.Type != MediaTypeAll {
		v.Set("type", p.Type.String())
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort.String())
	}
	setPagination(v, p.Page, p.PerPage)
	return v
}

// validateID checks a numeric photo or video identifier
func validateID(name string, id int) error {
	if id <= 0 {
		return invalidParam(name, "must be a positive integer, got %d", id)
	}
	return nil
}
