package nav

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Location
	}{
		{"empty", "", Location{}},
		{"bare question mark", "?", Location{}},
		{"query only", "?q=Monet", Location{Query: "Monet"}},
		{"id and query", "?id=27992&q=Monet", Location{ID: "27992", Query: "Monet"}},
		{"no leading mark", "id=5", Location{ID: "5"}},
		{"full url", "https://example.com/index.html?q=water%20lilies#top", Location{Query: "water lilies"}},
		{"url without query", "https://example.com/", Location{}},
		{"malformed", "?q=%zz", Location{}},
		{"blank id kept", "?id=%20&q=x", Location{ID: " ", Query: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.raw); got != tc.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestResultHrefRoundTrips(t *testing.T) {
	queries := []string{"Monet", "a&b=c", "50% off", "ð é", "x?y#z", ""}
	ids := []string{"27992", "a/b", "1&2"}
	for _, q := range queries {
		for _, id := range ids {
			href := ResultHref(id, q)
			got := Parse(href)
			if got.ID != id || got.Query != q {
				t.Fatalf("Parse(ResultHref(%q, %q)) = %#v", id, q, got)
			}
			if !got.IsDetail() {
				t.Fatalf("ResultHref location should select detail view")
			}
		}
	}
	if got := ResultHref("16568", "Monet"); got != "?id=16568&q=Monet" {
		t.Fatalf("ResultHref = %q, want ?id=16568&q=Monet", got)
	}
}

func TestBackHref(t *testing.T) {
	if got := BackHref(""); got != "?" {
		t.Fatalf("BackHref empty = %q, want ?", got)
	}
	if got := BackHref("water lilies"); got != "?q=water%20lilies" {
		t.Fatalf("BackHref = %q", got)
	}
	loc := Parse(BackHref("a&b"))
	if loc.IsDetail() || loc.Query != "a&b" {
		t.Fatalf("Parse(BackHref) = %#v", loc)
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{ID: "1", Query: "x"}).String(); got != "?id=1&q=x" {
		t.Fatalf("String = %q", got)
	}
	if got := (Location{Query: "x"}).String(); got != "?q=x" {
		t.Fatalf("String = %q", got)
	}
}

func TestIsDetail(t *testing.T) {
	cases := map[string]bool{
		"?q=Monet":     false,
		"?id=&q=Monet": false,
		"?id=1":        true,
		"?id=%20&q=x":  true,
	}
	for raw, want := range cases {
		if got := Parse(raw).IsDetail(); got != want {
			t.Fatalf("Parse(%q).IsDetail() = %v, want %v", raw, got, want)
		}
	}
}
