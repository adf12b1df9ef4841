package pexels

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input   string
		want    Orientation
		wantErr bool
	}{
		{"landscape", OrientationLandscape, false},
		{"Portrait", OrientationPortrait, false},
		{"SQUARE", OrientationSquare, false},
		{"diagonal", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrientation(tt.input)
			if tt.wantErr {
				var paramErr *ParameterError
				require.ErrorAs(t, err, &paramErr)
				assert.Equal(t, "orientation", paramErr.Param)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"Turquoise", ColorTurquoise, false},
		{"#a1b2c3", Color("#a1b2c3"), false},
		{"#A1B2C3", Color("#a1b2c3"), false},
		{"#a1b2c", "", true},
		{"#a1b2cg", "", true},
		{"a1b2c3", "", true},
		{"magenta", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				var paramErr *ParameterError
				require.ErrorAs(t, err, &paramErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		input   string
		want    MediaType
		wantErr bool
	}{
		{"", MediaTypeAll, false},
		{"photo", MediaTypePhotos, false},
		{"photos", MediaTypePhotos, false},
		{"Videos", MediaTypeVideos, false},
		{"audio", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMediaType(tt.input)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseMediaSort(t *testing.T) {
	got, err := ParseMediaSort("ASC")
	require.NoError(t, err)
	assert.Equal(t, MediaSortAsc, got)

	got, err = ParseMediaSort("desc")
	require.NoError(t, err)
	assert.Equal(t, MediaSortDesc, got)

	_, err = ParseMediaSort("latest")
	assert.Error(t, err)
}

func TestParseLocale(t *testing.T) {
	got, err := ParseLocale("en-US")
	require.NoError(t, err)
	assert.Equal(t, LocaleEnUS, got)

	got, err = ParseLocale("ja_jp")
	require.NoError(t, err)
	assert.Equal(t, LocaleJaJP, got)

	_, err = ParseLocale("xx-XX")
	assert.Error(t, err)
}

func TestPhotoSourceURLFor(t *testing.T) {
	src := PhotoSource{
		Original: "https://images.pexels.com/orig.jpeg",
		Large:    "https://images.pexels.com/large.jpeg",
		Tiny:     "https://images.pexels.com/tiny.jpeg",
	}

	assert.Equal(t, src.Original, src.URLFor(PhotoSizeOriginal))
	assert.Equal(t, src.Large, src.URLFor(PhotoSizeLarge))
	assert.Equal(t, src.Tiny, src.URLFor(PhotoSizeTiny))
	// missing sizes fall back to the original
	assert.Equal(t, src.Original, src.URLFor(PhotoSizeMedium))
	assert.Equal(t, src.Original, src.URLFor(PhotoSizePortrait))
}

func TestVideoBestFile(t *testing.T) {
	t.Run("largest frame wins", func(t *testing.T) {
		video := Video{
			VideoFiles: []VideoFile{
				{ID: 1, Quality: "sd", Width: 640, Height: 360},
				{ID: 2, Quality: "uhd", Width: 3840, Height: 2160},
				{ID: 3, Quality: "hd", Width: 1920, Height: 1080},
			},
		}

		best, ok := video.BestFile()
		require.True(t, ok)
		assert.Equal(t, 2, best.ID)
	})

	t.Run("no files", func(t *testing.T) {
		video := Video{}
		_, ok := video.BestFile()
		assert.False(t, ok)
	})
}

func TestMediaPageUnmarshal(t *testing.T) {
	t.Run("order preserved", func(t *testing.T) {
		data := `{
			"id": "abc",
			"media": [
				{"type": "Video", "id": 10, "user": {"id": 1, "name": "a", "url": ""}},
				{"type": "Photo", "id": 20, "src": {"original": "https://images.pexels.com/x.jpeg"}},
				{"type": "Photo", "id": 30, "src": {"original": "https://images.pexels.com/y.jpeg"}}
			],
			"page": 1, "per_page": 3, "total_results": 3,
			"next_page": "https://api.pexels.com/v1/collections/abc?page=2"
		}`

		var page MediaPage
		require.NoError(t, json.Unmarshal([]byte(data), &page))

		assert.Equal(t, "abc", page.ID)
		require.Len(t, page.Media, 3)
		assert.Equal(t, "Video", page.Media[0].Type)
		assert.Equal(t, "Photo", page.Media[1].Type)
		assert.True(t, page.HasMore())

		video, ok := page.Media[0].Video()
		require.True(t, ok)
		assert.Equal(t, 10, video.ID)

		photo, ok := page.Media[2].Photo()
		require.True(t, ok)
		assert.Equal(t, 30, photo.ID)
	})

	t.Run("missing discriminator names the entry", func(t *testing.T) {
		data := `{
			"id": "abc",
			"media": [
				{"type": "Photo", "id": 20, "src": {"original": "https://images.pexels.com/x.jpeg"}},
				{"id": 30}
			],
			"page": 1, "per_page": 2, "total_results": 2
		}`

		var page MediaPage
		err := json.Unmarshal([]byte(data), &page)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "media[1].type", decodeErr.Field)
	})

	t.Run("invalid variant field names the entry", func(t *testing.T) {
		data := `{
			"id": "abc",
			"media": [{"type": "Photo", "id": 20, "src": {}}],
			"page": 1, "per_page": 1, "total_results": 1
		}`

		var page MediaPage
		err := json.Unmarshal([]byte(data), &page)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "media[0].src.original", decodeErr.Field)
	})
}

func TestOptionalFieldsDecodeToNil(t *testing.T) {
	var video Video
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "full_res": null}`), &video))
	assert.Nil(t, video.FullRes)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "full_res": "https://example.com/full.mp4"}`), &video))
	require.NotNil(t, video.FullRes)
	assert.Equal(t, "https://example.com/full.mp4", *video.FullRes)

	var col Collection
	require.NoError(t, json.Unmarshal([]byte(`{"id": "a", "title": "t"}`), &col))
	assert.Nil(t, col.Description)
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, `invalid parameter "per_page": must be between 1 and 80, got 99`,
		invalidParam("per_page", "must be between %d and %d, got %d", 1, 80, 99).Error())

	apiErr := &APIError{StatusCode: 404, Message: "Not Found"}
	assert.Equal(t, "pexels API error: status 404: Not Found", apiErr.Error())

	decodeErr := &DecodeError{Field: "photos[0].id", Detail: "required field is missing or empty"}
	assert.Contains(t, decodeErr.Error(), "photos[0].id")
}
