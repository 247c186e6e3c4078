package artic

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultImageWidth is used when a caller passes a non-positive width.
	DefaultImageWidth = 600
	// ThumbnailWidth is the width requested for search result thumbnails.
	ThumbnailWidth = 200
	// DetailImageWidth is the width requested on the detail view.
	DetailImageWidth = DefaultImageWidth
)

// ImageURL builds a IIIF rendition URL:
//
//	{base}/{imageID}/full/{width},/0/default.jpg
//
// It reports false and returns "" when imageID is blank.
func ImageURL(base, imageID string, width int) (string, bool) {
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return "", false
	}
	if width <= 0 {
		width = DefaultImageWidth
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultImageBase
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", base, url.PathEscape(imageID), width), true
}
