package view

import (
	"context"
	"fmt"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/nav"
)

// DetailState is the detail view's position. Rendered, NotFound and Failed
// are terminal.
type DetailState int

const (
	DetailLoading DetailState = iota
	DetailRendered
	DetailNotFound
	DetailFailed
)

func (s DetailState) String() string {
	switch s {
	case DetailRendered:
		return "rendered"
	case DetailNotFound:
		return "not found"
	case DetailFailed:
		return "failed"
	default:
		return "loading"
	}
}

const (
	labelFetchingArtwork = "Fetching artwork..."
	labelNotFound        = "No artwork found."
	labelBack            = "← Back to search"
	labelNoImage         = "No image"
)

// DetailResult is the outcome of Run. Artwork is nil with a nil Err when the
// record is missing.
type DetailResult struct {
	Artwork *artic.ArtworkDetail
	Err     error
}

// Detail shows one artwork.
type Detail struct {
	root    *Container
	fetcher artic.ArtworkFetcher
	images  ImageURLFunc

	id    string
	query string
	state DetailState
}

// NewDetail builds a detail view for id, rendering the loading placeholder
// into root immediately. query is carried into the back link.
func NewDetail(root *Container, fetcher artic.ArtworkFetcher, images ImageURLFunc, id, query string) *Detail {
	if images == nil {
		images = defaultImageURL
	}
	root.Empty()
	root.Append(El("p", Attrs{"class": "loading"}, labelFetchingArtwork))
	return &Detail{
		root:    root,
		fetcher: fetcher,
		images:  images,
		id:      id,
		query:   query,
	}
}

// ID returns the artwork id.
func (d *Detail) ID() string { return d.id }

// Query returns the originating search query.
func (d *Detail) Query() string { return d.query }

// State returns the current state.
func (d *Detail) State() DetailState { return d.state }

// Root returns the container the view renders into.
func (d *Detail) Root() *Container { return d.root }

// Run fetches the record.
func (d *Detail) Run(ctx context.Context) DetailResult {
	if d.fetcher == nil {
		return DetailResult{Err: fmt.Errorf("no fetcher configured")}
	}
	art, err := d.fetcher.Artwork(ctx, d.id)
	return DetailResult{Artwork: art, Err: err}
}

// Complete renders res.
func (d *Detail) Complete(res DetailResult) {
	d.root.Empty()

	if res.Err != nil {
		d.state = DetailFailed
		d.root.Append(El("p", Attrs{"class": "error"}, "Error fetching artwork: "+res.Err.Error()))
		return
	}
	art := res.Artwork
	if art == nil {
		d.state = DetailNotFound
		d.root.Append(El("p", Attrs{"class": "error"}, labelNotFound))
		return
	}

	d.state = DetailRendered
	var image *Node
	if src, ok := d.images(art.ImageID, artic.DetailImageWidth); ok {
		image = El("img", Attrs{"src": src, "alt": art.Title})
	} else {
		image = El("div", Attrs{"class": "img-placeholder large"}, labelNoImage)
	}

	d.root.Append(
		El("p", Attrs{"class": "back"}, El("a", Attrs{"href": nav.BackHref(d.query)}, labelBack)),
		El("h2", nil, Or(art.Title, labelUntitled)),
		El("p", Attrs{"class": "subtitle"}, artic.Subtitle(art.ArtistTitle, art.DateDisplay, labelUnknownArtist)),
		image,
		Field(art.MediumDisplay, para("medium", "")),
		Field(art.Dimensions, para("dimensions", "")),
		Field(art.DepartmentTitle, para("department", "Department: ")),
		Field(art.CreditLine, para("credit", "Credit: ")),
	)
}

func para(class, prefix string) func(string) *Node {
	return func(v string) *Node {
		return El("p", Attrs{"class": class}, prefix+v)
	}
}
