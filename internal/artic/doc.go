// Package artic provides an HTTP client for the Art Institute of Chicago
// collection API.
//
// # Overview
//
// The package is deliberately thin: it builds endpoint URLs, performs one GET
// per call, and decodes the handful of fields artsearch renders. Nothing is
// cached and nothing is retried.
//
// # Files
//
//   - client.go: Client, URL builders, GetJSON and the HTTPError type
//   - types.go: SearchResultItem, ArtworkDetail and response envelopes
//   - iiif.go: IIIF image URL builder
//
// # Endpoints
//
//	GET {base}/artworks/search?q={q}&limit=20&fields=id,title,artist_title,date_display,image_id
//	GET {base}/artworks/{id}?fields=id,title,artist_title,date_display,image_id,medium_display,dimensions,credit_line,department_title
//
// The query is trimmed and percent-encoded exactly once (EncodeComponent).
// Spaces become %20.
//
// # Client Usage
//
//	client, err := artic.NewClient(artic.Options{})
//	if err != nil {
//		return err
//	}
//	items, err := client.Search(ctx, "Monet")
//	detail, err := client.Artwork(ctx, "27992")
//	if detail == nil && err == nil {
//		// no record
//	}
//
// # Error Handling
//
//   - Transport errors: "execute request: ..."
//   - Failing statuses: *HTTPError, message "HTTP 404"
//   - Malformed JSON: "decode response: ..."
//
// Use StatusCode(err) or errors.As to recover the numeric status.
//
// # Images
//
// ImageURL maps an image identifier and width to
// {image-base}/{id}/full/{width},/0/default.jpg. A blank identifier yields no
// URL. Images are only ever displayed as links; the client never fetches
// them.
//
// # Observability
//
// Every request carries an X-Request-ID header and is logged through logrus
// with its duration. When Options.Observer is set it receives the outcome of
// each request; the app wires the session state store here.
package artic
