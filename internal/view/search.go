package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/artsearch/internal/artic"
	"github.com/five82/artsearch/internal/nav"
)

// SearchState is the search view's position in its request cycle.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchSubmitting
	SearchFailed
)

func (s SearchState) String() string {
	switch s {
	case SearchSubmitting:
		return "submitting"
	case SearchFailed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	labelSearching     = "Searching..."
	labelUntitled      = "(untitled)"
	labelUnknownArtist = "Unknown artist"
	labelNoThumbnail   = "—"
)

// ImageURLFunc maps an image id and width to a rendition URL.
type ImageURLFunc func(imageID string, width int) (string, bool)

func defaultImageURL(imageID string, width int) (string, bool) {
	return artic.ImageURL(artic.DefaultImageBase, imageID, width)
}

// Form is the search form's state at submit time.
type Form struct {
	Query string
	Slow  bool
	Fail  bool
}

// Submission is one accepted submit. Seq orders submissions; only the latest
// may render.
type Submission struct {
	Seq uint64
	Form
}

// SearchResult is the outcome of Run: either Items or Err.
type SearchResult struct {
	Seq   uint64
	Query string
	Items []artic.SearchResultItem
	Err   error
}

// Search drives the search form and its results container.
//
// Submit and Complete run on the UI goroutine. Run only reads fields fixed at
// construction and may run anywhere.
type Search struct {
	results  *Container
	searcher artic.Searcher
	images   ImageURLFunc
	sim      Simulation

	initialQuery string
	seq          uint64
	state        SearchState
}

// NewSearch builds a search view rendering into results. initialQuery seeds
// the form field; it is not submitted.
func NewSearch(results *Container, searcher artic.Searcher, images ImageURLFunc, sim Simulation, initialQuery string) *Search {
	if images == nil {
		images = defaultImageURL
	}
	results.Empty()
	return &Search{
		results:      results,
		searcher:     searcher,
		images:       images,
		sim:          sim,
		initialQuery: initialQuery,
	}
}

// InitialQuery returns the query the form was seeded with.
func (s *Search) InitialQuery() string {
	return s.initialQuery
}

// State returns the current state.
func (s *Search) State() SearchState {
	return s.state
}

// Results returns the results container.
func (s *Search) Results() *Container {
	return s.results
}

// Submit accepts a form submission. A blank query is refused, matching a
// required input. An accepted submission supersedes any in flight: the
// container is cleared and shows the loading placeholder.
func (s *Search) Submit(form Form) (Submission, bool) {
	form.Query = strings.TrimSpace(form.Query)
	if form.Query == "" {
		return Submission{}, false
	}
	s.seq++
	s.state = SearchSubmitting
	s.results.Empty()
	s.results.Append(El("p", Attrs{"class": "loading"}, labelSearching))
	return Submission{Seq: s.seq, Form: form}, true
}

// Run performs the simulated conditions and then the fetch. A simulated
// failure returns before any network call.
func (s *Search) Run(ctx context.Context, sub Submission) SearchResult {
	res := SearchResult{Seq: sub.Seq, Query: sub.Query}
	if err := s.sim.apply(ctx, sub.Slow, sub.Fail); err != nil {
		res.Err = err
		return res
	}
	if s.searcher == nil {
		res.Err = fmt.Errorf("no searcher configured")
		return res
	}
	res.Items, res.Err = s.searcher.Search(ctx, sub.Query)
	return res
}

// Complete renders res if it belongs to the latest submission and reports
// whether it did. Stale results are dropped untouched.
func (s *Search) Complete(res SearchResult) bool {
	if res.Seq != s.seq {
		return false
	}
	s.results.Empty()

	if res.Err != nil {
		s.state = SearchFailed
		s.results.Append(El("p", Attrs{"class": "error"}, "Search failed: "+res.Err.Error()))
		return true
	}

	s.state = SearchIdle
	if len(res.Items) == 0 {
		s.results.Append(El("p", Attrs{"class": "empty"}, fmt.Sprintf("No results for “%s”.", res.Query)))
		return true
	}

	list := El("ol", Attrs{"class": "art-list"})
	for _, item := range res.Items {
		list.Children = append(list.Children, s.renderItem(item, res.Query))
	}
	s.results.Append(list)
	return true
}

func (s *Search) renderItem(item artic.SearchResultItem, query string) *Node {
	var thumb *Node
	if src, ok := s.images(item.ImageID, artic.ThumbnailWidth); ok {
		thumb = El("img", Attrs{"src": src, "alt": item.Title})
	} else {
		thumb = El("div", Attrs{"class": "img-placeholder"}, labelNoThumbnail)
	}

	href := nav.ResultHref(item.ID.String(), query)
	return El("li", nil,
		thumb,
		El("div", Attrs{"class": "meta"},
			El("h3", nil, El("a", Attrs{"href": href}, Or(item.Title, labelUntitled))),
			El("p", Attrs{"class": "subtitle"}, artic.Subtitle(item.ArtistTitle, item.DateDisplay, labelUnknownArtist)),
		),
	)
}
