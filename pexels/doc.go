// Package pexels provides a typed client for the Pexels media API.
//
// Pexels hosts free stock photos and videos behind a REST API. This package
// implements a clean, idiomatic Go client covering photo search, video
// search, collections and the mixed-media collection feed.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client; builds requests, sends them, decodes responses
//   - Params: per-operation parameter structs with up-front validation
//   - Types: domain models (Photo, Video, Collection, pages, MediaItem)
//   - Errors: a closed error taxonomy with classification methods
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := pexels.NewClient("your-api-key", logger,
//		pexels.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.SearchPhotos(context.Background(), pexels.SearchPhotosParams{
//		Query:   "mountains",
//		PerPage: 15,
//	})
//
// # Error Handling
//
// Every operation returns the typed result or exactly one of four error
// kinds, never both and never a partial success:
//
//   - *ParameterError: a caller argument failed validation; no request was sent
//   - *RequestError: the transport failed with no response (DNS, TLS, timeout)
//   - *APIError: the API answered with a non-2xx status
//   - *DecodeError: the response body did not match the expected schema
//
// APIError carries classification helpers:
//
//	var apiErr *pexels.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
//		// back off
//	}
//
// The client holds only immutable configuration, so one instance may be
// shared across goroutines without synchronization.
package pexels
