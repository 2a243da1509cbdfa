package models

import "strings"

// DefaultReleaseYear is the sentinel assigned when the feed's release-year
// cell is absent or does not parse.
const DefaultReleaseYear = 2025

// ProductRecord is one normalized product entry from the feed.
//
// Records are immutable once parsed: the cache hands out the same backing
// slice to every caller and the query engine only ever copies it.
// Optional fields (Code, ImageURL) are nil when the feed cell was empty,
// which is distinct from an empty string value.
type ProductRecord struct {
	ID            int     `json:"id"`
	Code          *string `json:"code,omitempty"`
	ReleaseYear   int     `json:"release_year"`
	Season        string  `json:"season"`
	Gender        string  `json:"gender"`
	ProductName   string  `json:"product_name"`
	ColorRange    string  `json:"color_range"`
	Genre         string  `json:"genre"`
	SizeRange     string  `json:"size_range"`
	Material      string  `json:"material"`
	Feature       string  `json:"feature"`
	TrimSpec      string  `json:"trim_spec"`
	FinalPriceYen float64 `json:"final_price_yen"`
	ImageURL      *string `json:"image_url,omitempty"`
}

// CodeOrEmpty returns the product code, or "" when absent.
func (r ProductRecord) CodeOrEmpty() string {
	if r.Code == nil {
		return ""
	}
	return *r.Code
}

// ImageURLOrEmpty returns the raw image URL, or "" when absent.
func (r ProductRecord) ImageURLOrEmpty() string {
	if r.ImageURL == nil {
		return ""
	}
	return *r.ImageURL
}

// seasonTokens maps a rank to the substrings that identify it. Seasons in
// the feed are free text ("2025 Spring", "春夏" etc.), so matching is by
// case-insensitive substring, highest rank first.
var seasonTokens = []struct {
	rank   int
	tokens []string
}{
	{4, []string{"spring", "春"}},
	{3, []string{"summer", "夏"}},
	{2, []string{"autumn", "fall", "秋"}},
	{1, []string{"winter", "冬"}},
}

// SeasonRank orders seasons for display: spring=4, summer=3, autumn=2,
// winter=1, anything unrecognized=0.
func SeasonRank(season string) int {
	v := strings.ToLower(season)
	for _, entry := range seasonTokens {
		for _, token := range entry.tokens {
			if strings.Contains(v, token) {
				return entry.rank
			}
		}
	}
	return 0
}
