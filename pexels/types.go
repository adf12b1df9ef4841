package pexels

import (
	"encoding/json"
	"fmt"
)

// Photo represents a single Pexels photo
type Photo struct {
	ID              int         `json:"id"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	URL             string      `json:"url"`
	Photographer    string      `json:"photographer"`
	PhotographerURL string      `json:"photographer_url"`
	PhotographerID  int         `json:"photographer_id"`
	AvgColor        string      `json:"avg_color"`
	Src             PhotoSource `json:"src"`
	Liked           bool        `json:"liked"`
	Alt             string      `json:"alt"`
}

// PhotoSource holds the pre-rendered image URLs for a photo, one per size
type PhotoSource struct {
	Original  string `json:"original"`
	Large2X   string `json:"large2x"`
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Small     string `json:"small"`
	Portrait  string `json:"portrait"`
	Landscape string `json:"landscape"`
	Tiny      string `json:"tiny"`
}

// URLFor returns the URL for the requested size. It falls back to the
// original image when the requested size has no URL.
func (s PhotoSource) URLFor(size PhotoSize) string {
	var u string
	switch size {
	case PhotoSizeOriginal:
		u = s.Original
	case PhotoSizeLarge2X:
		u = s.Large2X
	case PhotoSizeLarge:
		u = s.Large
	case PhotoSizeMedium:
		u = s.Medium
	case PhotoSizeSmall:
		u = s.Small
	case PhotoSizePortrait:
		u = s.Portrait
	case PhotoSizeLandscape:
		u = s.Landscape
	case PhotoSizeTiny:
		u = s.Tiny
	}
	if u == "" {
		return s.Original
	}
	return u
}

// validate checks the fields a photo cannot be used without. prefix is the
// JSON path to this photo within the enclosing document.
func (p *Photo) validate(prefix string) error {
	if p.ID <= 0 {
		return missingField(prefix + "id")
	}
	if p.Src.Original == "" {
		return missingField(prefix + "src.original")
	}
	return nil
}

// Video represents a single Pexels video
type Video struct {
	ID            int            `json:"id"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	URL           string         `json:"url"`
	Image         string         `json:"image"`
	FullRes       *string        `json:"full_res"`
	Tags          []string       `json:"tags"`
	Duration      int            `json:"duration"`
	User          User           `json:"user"`
	VideoFiles    []VideoFile    `json:"video_files"`
	VideoPictures []VideoPicture `json:"video_pictures"`
}

// BestFile returns the video file with the largest frame, preserving the
// API's order on ties. The second return value is false when the video has
// no files.
func (v *Video) BestFile() (VideoFile, bool) {
	if len(v.VideoFiles) == 0 {
		return VideoFile{}, false
	}
	best := v.VideoFiles[0]
	for _, f := range v.VideoFiles[1:] {
		if f.Width*f.Height > best.Width*best.Height {
			best = f
		}
	}
	return best, true
}

func (v *Video) validate(prefix string) error {
	if v.ID <= 0 {
		return missingField(prefix + "id")
	}
	return nil
}

// VideoFile is one downloadable rendition of a video
type VideoFile struct {
	ID       int     `json:"id"`
	Quality  string  `json:"quality"`
	FileType string  `json:"file_type"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FPS      float64 `json:"fps"`
	Link     string  `json:"link"`
}

// VideoPicture is a preview frame of a video
type VideoPicture struct {
	ID      int    `json:"id"`
	Picture string `json:"picture"`
	Nr      int    `json:"nr"`
}

// User is the creator of a video
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Collection represents a Pexels collection. Collection IDs are opaque
// strings, unlike photo and video IDs.
type Collection struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Private     bool    `json:"private"`
	MediaCount  int     `json:"media_count"`
	PhotosCount int     `json:"photos_count"`
	VideosCount int     `json:"videos_count"`
}

func (c *Collection) validate(prefix string) error {
	if c.ID == "" {
		return missingField(prefix + "id")
	}
	if c.Title == "" {
		return missingField(prefix + "title")
	}
	return nil
}

// PhotoPage is one page of photo results with pagination metadata
type PhotoPage struct {
	Photos       []Photo `json:"photos"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	TotalResults int     `json:"total_results"`
	NextPage     *string `json:"next_page"`
	PrevPage     *string `json:"prev_page"`
}

// HasMore reports whether the API advertises a next page
func (p *PhotoPage) HasMore() bool {
	return p.NextPage != nil && *p.NextPage != ""
}

func (p *PhotoPage) validate() error {
	for i := range p.Photos {
		if err := p.Photos[i].validate(fmt.Sprintf("photos[%d].", i)); err != nil {
			return err
		}
	}
	return nil
}

// VideoPage is one page of video results with pagination metadata
type VideoPage struct {
	Videos       []Video `json:"videos"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	TotalResults int     `json:"total_results"`
	URL          string  `json:"url"`
	NextPage     *string `json:"next_page"`
	PrevPage     *string `json:"prev_page"`
}

// HasMore reports whether the API advertises a next page
func (p *VideoPage) HasMore() bool {
	return p.NextPage != nil && *p.NextPage != ""
}

func (p *VideoPage) validate() error {
	for i := range p.Videos {
		if err := p.Videos[i].validate(fmt.Sprintf("videos[%d].", i)); err != nil {
			return err
		}
	}
	return nil
}

// CollectionPage is one page of collections with pagination metadata
type CollectionPage struct {
	Collections  []Collection `json:"collections"`
	Page         int          `json:"page"`
	PerPage      int          `json:"per_page"`
	TotalResults int          `json:"total_results"`
	NextPage     *string      `json:"next_page"`
	PrevPage     *string      `json:"prev_page"`
}

// HasMore reports whether the API advertises a next page
func (p *CollectionPage) HasMore() bool {
	return p.NextPage != nil && *p.NextPage != ""
}

func (p *CollectionPage) validate() error {
	for i := range p.Collections {
		if err := p.Collections[i].validate(fmt.Sprintf("collections[%d].", i)); err != nil {
			return err
		}
	}
	return nil
}

// MediaItem is one entry of a collection's media list. Each entry is either
// a photo or a video, discriminated by the payload's "type" field. The API's
// return order is preserved by the enclosing MediaPage.
type MediaItem struct {
	Type  string
	photo *Photo
	video *Video
}

// Photo returns the photo variant, if this item is one
func (m MediaItem) Photo() (*Photo, bool) {
	return m.photo, m.photo != nil
}

// Video returns the video variant, if this item is one
func (m MediaItem) Video() (*Video, bool) {
	return m.video, m.video != nil
}

// decodeMediaItem parses one raw media entry. path is the JSON path to the
// entry, used in error reporting.
func decodeMediaItem(raw json.RawMessage, path string) (MediaItem, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return MediaItem{}, &DecodeError{Field: path, Detail: "malformed media entry", Err: err}
	}

	switch probe.Type {
	case "Photo":
		var photo Photo
		if err := unmarshalBody(raw, &photo); err != nil {
			return MediaItem{}, prefixDecodeError(err, path+".")
		}
		if err := photo.validate(path + "."); err != nil {
			return MediaItem{}, err
		}
		return MediaItem{Type: probe.Type, photo: &photo}, nil
	case "Video":
		var video Video
		if err := unmarshalBody(raw, &video); err != nil {
			return MediaItem{}, prefixDecodeError(err, path+".")
		}
		if err := video.validate(path + "."); err != nil {
			return MediaItem{}, err
		}
		return MediaItem{Type: probe.Type, video: &video}, nil
	default:
		return MediaItem{}, &DecodeError{
			Field:  path + ".type",
			Detail: fmt.Sprintf("unknown media type %q", probe.Type),
		}
	}
}

// MarshalJSON emits the underlying variant with its type discriminator,
// mirroring the API's wire form
func (m MediaItem) MarshalJSON() ([]byte, error) {
	var payload any
	switch {
	case m.photo != nil:
		payload = m.photo
	case m.video != nil:
		payload = m.video
	default:
		return []byte("null"), nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	obj["type"], err = json.Marshal(m.Type)
	if err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

// MediaPage is one page of a collection's media, mixed photos and videos
type MediaPage struct {
	ID           string      `json:"id"`
	Media        []MediaItem `json:"-"`
	Page         int         `json:"page"`
	PerPage      int         `json:"per_page"`
	TotalResults int         `json:"total_results"`
	NextPage     *string     `json:"next_page"`
	PrevPage     *string     `json:"prev_page"`
}

// HasMore reports whether the API advertises a next page
func (p *MediaPage) HasMore() bool {
	return p.NextPage != nil && *p.NextPage != ""
}

// MarshalJSON restores the media list dropped by the field tag
func (p MediaPage) MarshalJSON() ([]byte, error) {
	type alias MediaPage
	return json.Marshal(struct {
		alias
		Media []MediaItem `json:"media"`
	}{alias: alias(p), Media: p.Media})
}

// UnmarshalJSON decodes the page metadata first, then each media entry
// through the type discriminator so decode errors name the exact entry.
func (p *MediaPage) UnmarshalJSON(data []byte) error {
	type alias MediaPage
	var aux struct {
		alias
		Media []json.RawMessage `json:"media"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*p = MediaPage(aux.alias)
	p.Media = make([]MediaItem, 0, len(aux.Media))
	for i, raw := range aux.Media {
		item, err := decodeMediaItem(raw, fmt.Sprintf("media[%d]", i))
		if err != nil {
			return err
		}
		p.Media = append(p.Media, item)
	}
	return nil
}
