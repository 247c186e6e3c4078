// Package nav parses and produces the location strings that drive view
// selection. A location is the query part of a page address: "?id=27992&q=Monet".
package nav

import (
	"net/url"
	"strings"

	"github.com/five82/artsearch/internal/artic"
)

// Location carries the two parameters the bootstrapper reads.
type Location struct {
	ID    string
	Query string
}

// IsDetail reports whether the location selects the detail view. Any
// non-empty id does, whitespace included.
func (l Location) IsDetail() bool {
	return l.ID != ""
}

// Parse reads id and q from raw. raw may be a bare query string ("id=1&q=x"),
// a query with its leading "?", or a full URL. Malformed input yields an empty
// location, which selects an empty search.
func Parse(raw string) Location {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	} else if strings.Contains(raw, "://") {
		return Location{}
	}
	if i := strings.Index(raw, "#"); i >= 0 {
		raw = raw[:i]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return Location{}
	}
	return Location{
		ID:    values.Get("id"),
		Query: values.Get("q"),
	}
}

// ResultHref links a search result to its detail view, carrying the query so
// the detail view can link back.
func ResultHref(id, query string) string {
	return "?id=" + artic.EncodeComponent(id) + "&q=" + artic.EncodeComponent(query)
}

// BackHref links the detail view back to the search it came from. Without a
// query it is the bare "?".
func BackHref(query string) string {
	if query == "" {
		return "?"
	}
	return "?q=" + artic.EncodeComponent(query)
}

// String encodes l in the same form the views emit.
func (l Location) String() string {
	if l.IsDetail() {
		return ResultHref(l.ID, l.Query)
	}
	return BackHref(l.Query)
}
