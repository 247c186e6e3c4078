package artic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ArtworkID is an artwork identifier. The API sends numbers but the field is
// treated as opaque text so string identifiers decode too.
type ArtworkID string

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ArtworkID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ArtworkID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("artwork id: %w", err)
	}
	*id = ArtworkID(n.String())
	return nil
}

func (id ArtworkID) String() string {
	return string(id)
}

// SearchResultItem mirrors one entry of /artworks/search. Every field except
// ID may be absent.
type SearchResultItem struct {
	ID          ArtworkID `json:"id"`
	Title       string    `json:"title"`
	ArtistTitle string    `json:"artist_title"`
	DateDisplay string    `json:"date_display"`
	ImageID     string    `json:"image_id"`
}

// ArtworkDetail mirrors the /artworks/{id} record.
type ArtworkDetail struct {
	SearchResultItem
	MediumDisplay   string `json:"medium_display"`
	Dimensions      string `json:"dimensions"`
	CreditLine      string `json:"credit_line"`
	DepartmentTitle string `json:"department_title"`
}

// SearchResponse mirrors the search payload. Data is kept raw because the
// API is not trusted to always send an array.
type SearchResponse struct {
	Data json.RawMessage `json:"data"`
}

// Items decodes Data. Absent, null or non-array data yields no items; an
// array whose elements do not decode is an error.
func (r SearchResponse) Items() ([]SearchResultItem, error) {
	raw := bytes.TrimSpace(r.Data)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var items []SearchResultItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ArtworkResponse mirrors the single-item payload. Data is nil when the
// record is absent.
type ArtworkResponse struct {
	Data *ArtworkDetail `json:"data"`
}

// Subtitle joins artist and date the way both views display them:
// "<artist>[ • <date>]", with unknownArtist standing in for a blank artist.
func Subtitle(artist, date, unknownArtist string) string {
	artist = strings.TrimSpace(artist)
	if artist == "" {
		artist = unknownArtist
	}
	if date = strings.TrimSpace(date); date != "" {
		return artist + " • " + date
	}
	return artist
}
