package pexels

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPhotosFixture = `{
	"total_results": 10000,
	"page": 1,
	"per_page": 10,
	"photos": [
		{
			"id": 2014422,
			"width": 3024,
			"height": 3024,
			"url": "https://www.pexels.com/photo/brown-rocks-during-golden-hour-2014422/",
			"photographer": "Joey Farina",
			"photographer_url": "https://www.pexels.com/@joey",
			"photographer_id": 680589,
			"avg_color": "#978E82",
			"src": {
				"original": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg",
				"large2x": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=650&w=940",
				"large": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=650&w=940",
				"medium": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=350",
				"small": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=130",
				"portrait": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=1200&w=800",
				"landscape": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=627&w=1200",
				"tiny": "https://images.pexels.com/photos/2014422/pexels-photo-2014422.jpeg?h=200&w=280"
			},
			"liked": false,
			"alt": "Brown Rocks During Golden Hour"
		},
		{
			"id": 1029604,
			"width": 5184,
			"height": 3456,
			"url": "https://www.pexels.com/photo/landscape-photo-of-mountain-alps-1029604/",
			"photographer": "Simon Berger",
			"photographer_url": "https://www.pexels.com/@simon73",
			"photographer_id": 382731,
			"avg_color": "#818F88",
			"src": {
				"original": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg",
				"large2x": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=650&w=940",
				"large": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=650&w=940",
				"medium": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=350",
				"small": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=130",
				"portrait": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=1200&w=800",
				"landscape": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=627&w=1200",
				"tiny": "https://images.pexels.com/photos/1029604/pexels-photo-1029604.jpeg?h=200&w=280"
			},
			"liked": false,
			"alt": "Landscape Photo of Mountain Alps"
		}
	],
	"next_page": "https://api.pexels.com/v1/search/?page=2&per_page=10&query=nature"
}`

const videoFixture = `{
	"id": 3401900,
	"width": 3840,
	"height": 2160,
	"url": "https://www.pexels.com/video/aerial-footage-of-a-statue-3401900/",
	"image": "https://images.pexels.com/videos/3401900/pictures/preview-0.jpg",
	"full_res": null,
	"tags": [],
	"duration": 13,
	"user": {
		"id": 1583460,
		"name": "Taryn Elliott",
		"url": "https://www.pexels.com/@taryn-elliott"
	},
	"video_files": [
		{
			"id": 9326361,
			"quality": "sd",
			"file_type": "video/mp4",
			"width": 640,
			"height": 360,
			"fps": 24.0,
			"link": "https://player.vimeo.com/external/371562617.sd.mp4"
		},
		{
			"id": 9326362,
			"quality": "hd",
			"file_type": "video/mp4",
			"width": 1920,
			"height": 1080,
			"fps": 24.0,
			"link": "https://player.vimeo.com/external/371562617.hd.mp4"
		}
	],
	"video_pictures": [
		{
			"id": 760855,
			"picture": "https://images.pexels.com/videos/3401900/pictures/preview-0.jpg",
			"nr": 0
		}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client, server
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr error
	}{
		{
			name:   "valid config",
			apiKey: "test-key",
		},
		{
			name:    "missing API key",
			apiKey:  "",
			wantErr: ErrAPIKeyRequired,
		},
		{
			name:    "empty base URL override",
			apiKey:  "test-key",
			opts:    []Option{WithBaseURL("")},
			wantErr: ErrBaseURLRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, zerolog.Nop(), tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
			assert.Equal(t, DefaultBaseURL, client.baseURL)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithBaseURL("https://proxy.example.com/"))
		require.NoError(t, err)
		assert.Equal(t, "https://proxy.example.com", client.baseURL)
	})
}

func TestSearchPhotos(t *testing.T) {
	t.Run("two photo fixture", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/search", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "nature", r.URL.Query().Get("query"))
			assert.Equal(t, "10", r.URL.Query().Get("per_page"))
			assert.Equal(t, "1", r.URL.Query().Get("page"))

			w.Write([]byte(searchPhotosFixture))
		}))

		page, err := client.SearchPhotos(context.Background(), SearchPhotosParams{
			Query:   "nature",
			PerPage: 10,
			Page:    1,
		})
		require.NoError(t, err)

		assert.Len(t, page.Photos, 2)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10000, page.TotalResults)
		assert.True(t, page.HasMore())
		for _, photo := range page.Photos {
			assert.NotEmpty(t, photo.Src.Original)
		}
		assert.Equal(t, 2014422, page.Photos[0].ID)
		assert.Equal(t, "Joey Farina", page.Photos[0].Photographer)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_results": 0, "page": 1, "per_page": 10, "photos": []}`))
		}))

		page, err := client.SearchPhotos(context.Background(), SearchPhotosParams{Query: "zzzzzz"})
		require.NoError(t, err)
		assert.Empty(t, page.Photos)
		assert.Equal(t, 0, page.TotalResults)
		assert.False(t, page.HasMore())
	})

	t.Run("invalid params skip the network", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		for _, perPage := range []int{-1, 81, 1000} {
			_, err := client.SearchPhotos(context.Background(), SearchPhotosParams{Query: "nature", PerPage: perPage})
			var paramErr *ParameterError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, "per_page", paramErr.Param)
		}
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("missing required field yields decode error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// second photo has no src.original
			w.Write([]byte(`{
				"total_results": 2, "page": 1, "per_page": 10,
				"photos": [
					{"id": 1, "src": {"original": "https://images.pexels.com/1.jpeg"}},
					{"id": 2, "src": {}}
				]
			}`))
		}))

		_, err := client.SearchPhotos(context.Background(), SearchPhotosParams{Query: "nature"})
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "photos[1].src.original", decodeErr.Field)
	})

	t.Run("type mismatch yields decode error", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_results": "lots", "page": 1, "per_page": 10, "photos": []}`))
		}))

		_, err := client.SearchPhotos(context.Background(), SearchPhotosParams{Query: "nature"})
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, decodeErr.Field, "total_results")
	})
}

func TestGetPhoto(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status": 404, "error": "Not Found"}`))
		}))

		_, err := client.GetPhoto(context.Background(), 999999999)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.True(t, apiErr.IsNotFound())
		assert.Equal(t, "Not Found", apiErr.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		for _, id := range []int{0, -5} {
			_, err := client.GetPhoto(context.Background(), id)
			var paramErr *ParameterError
			require.ErrorAs(t, err, &paramErr)
		}
	})
}

func TestGetVideo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/videos/videos/3401900", r.URL.Path)
			w.Write([]byte(videoFixture))
		}))

		video, err := client.GetVideo(context.Background(), 3401900)
		require.NoError(t, err)

		assert.Equal(t, 3401900, video.ID)
		assert.Equal(t, 13, video.Duration)
		assert.Nil(t, video.FullRes)
		assert.Equal(t, "Taryn Elliott", video.User.Name)
		require.Len(t, video.VideoFiles, 2)

		best, ok := video.BestFile()
		require.True(t, ok)
		assert.Equal(t, "hd", best.Quality)
	})

	t.Run("mocked 404", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status": 404, "error": "Not Found"}`))
		}))

		_, err := client.GetVideo(context.Background(), 3401900)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
	})
}

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		check       func(*APIError) bool
	}{
		{
			name:        "unauthorized with error body",
			status:      401,
			body:        `{"error": "Access to this API has been disallowed"}`,
			wantMessage: "Access to this API has been disallowed",
			check:       (*APIError).IsUnauthorized,
		},
		{
			name:        "forbidden",
			status:      403,
			body:        ``,
			wantMessage: "Forbidden",
			check:       (*APIError).IsUnauthorized,
		},
		{
			name:        "rate limited",
			status:      429,
			body:        `not json`,
			wantMessage: "Too Many Requests",
			check:       (*APIError).IsRateLimited,
		},
		{
			name:        "server error",
			status:      500,
			body:        `{"code": "internal"}`,
			wantMessage: "internal",
			check:       func(e *APIError) bool { return !e.IsNotFound() && !e.IsUnauthorized() && !e.IsRateLimited() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.CuratedPhotos(context.Background(), CuratedPhotosParams{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.True(t, tt.check(apiErr))
		})
	}
}

func TestRequestError(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL("http://127.0.0.1:1"), WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.CuratedPhotos(context.Background(), CuratedPhotosParams{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.NotNil(t, reqErr.Unwrap())
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CuratedPhotos(ctx, CuratedPhotosParams{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestSearchVideos(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/search", r.URL.Path)
		assert.Equal(t, "ocean", r.URL.Query().Get("query"))
		assert.Equal(t, "portrait", r.URL.Query().Get("orientation"))

		w.Write([]byte(`{
			"page": 1, "per_page": 15, "total_results": 1, "url": "",
			"videos": [` + videoFixture + `]
		}`))
	}))

	page, err := client.SearchVideos(context.Background(), SearchVideosParams{
		Query:       "ocean",
		Orientation: OrientationPortrait,
	})
	require.NoError(t, err)
	require.Len(t, page.Videos, 1)
	assert.Equal(t, 3401900, page.Videos[0].ID)
}

func TestCollections(t *testing.T) {
	t.Run("search collections", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/collections", r.URL.Path)
			w.Write([]byte(`{
				"collections": [
					{"id": "9mp14cx", "title": "Cool Cats", "description": null, "private": false, "media_count": 3, "photos_count": 2, "videos_count": 1}
				],
				"page": 1, "per_page": 15, "total_results": 1
			}`))
		}))

		page, err := client.SearchCollections(context.Background(), CollectionsParams{})
		require.NoError(t, err)
		require.Len(t, page.Collections, 1)
		assert.Equal(t, "9mp14cx", page.Collections[0].ID)
		assert.Nil(t, page.Collections[0].Description)
	})

	t.Run("featured collections", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/collections/featured", r.URL.Path)
			w.Write([]byte(`{"collections": [], "page": 1, "per_page": 15, "total_results": 0}`))
		}))

		page, err := client.FeaturedCollections(context.Background(), CollectionsParams{})
		require.NoError(t, err)
		assert.Empty(t, page.Collections)
	})

	t.Run("collection missing title", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"collections": [{"id": "abc"}], "page": 1, "per_page": 15, "total_results": 1}`))
		}))

		_, err := client.SearchCollections(context.Background(), CollectionsParams{})
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "collections[0].title", decodeErr.Field)
	})
}

func TestCollectionMedia(t *testing.T) {
	t.Run("mixed media with discriminator", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/collections/9mp14cx", r.URL.Path)
			assert.Equal(t, "desc", r.URL.Query().Get("sort"))

			w.Write([]byte(`{
				"id": "9mp14cx",
				"media": [
					{"type": "Photo", "id": 2014422, "width": 100, "height": 100, "src": {"original": "https://images.pexels.com/a.jpeg"}},
					{"type": "Video", "id": 3401900, "width": 100, "height": 100, "duration": 10, "user": {"id": 1, "name": "x", "url": ""}, "video_files": [], "video_pictures": []}
				],
				"page": 1, "per_page": 15, "total_results": 2
			}`))
		}))

		page, err := client.CollectionMedia(context.Background(), "9mp14cx", CollectionMediaParams{Sort: MediaSortDesc})
		require.NoError(t, err)
		require.Len(t, page.Media, 2)

		photo, ok := page.Media[0].Photo()
		require.True(t, ok)
		assert.Equal(t, 2014422, photo.ID)
		_, isVideo := page.Media[0].Video()
		assert.False(t, isVideo)

		video, ok := page.Media[1].Video()
		require.True(t, ok)
		assert.Equal(t, 3401900, video.ID)
	})

	t.Run("unknown discriminator", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"id": "9mp14cx",
				"media": [{"type": "Audio", "id": 1}],
				"page": 1, "per_page": 15, "total_results": 1
			}`))
		}))

		_, err := client.CollectionMedia(context.Background(), "9mp14cx", CollectionMediaParams{})
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "media[0].type", decodeErr.Field)
	})

	t.Run("empty collection id", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := client.CollectionMedia(context.Background(), "  ", CollectionMediaParams{})
		var paramErr *ParameterError
		require.ErrorAs(t, err, &paramErr)
	})
}

func TestDownload(t *testing.T) {
	t.Run("streams bytes", func(t *testing.T) {
		payload := []byte("fake image bytes")
		client, err := NewClient("test-key", zerolog.Nop())
		require.NoError(t, err)

		fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// media downloads go to the CDN without the API key
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write(payload)
		}))
		defer fileServer.Close()

		var buf bytes.Buffer
		n, err := client.Download(context.Background(), fileServer.URL+"/photo.jpeg", &buf)
		require.NoError(t, err)
		assert.Equal(t, int64(len(payload)), n)
		assert.Equal(t, payload, buf.Bytes())
	})

	t.Run("non-2xx status", func(t *testing.T) {
		client, err := NewClient("test-key", zerolog.Nop())
		require.NoError(t, err)

		fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer fileServer.Close()

		var buf bytes.Buffer
		_, err = client.Download(context.Background(), fileServer.URL, &buf)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 403, apiErr.StatusCode)
	})
}
