package query

import (
	"sort"
	"strings"

	"catalog-manager/feature/catalog/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel facet value matching every record.
const All = "__ALL__"

// SortKey names one of the supported orderings.
type SortKey string

const (
	// SortDefault is the catalog's insertion order (id ascending).
	SortDefault SortKey = "default"
	// SortPrice is ascending final price.
	SortPrice SortKey = "price"
	// SortProductNumber is ascending product code.
	SortProductNumber SortKey = "productNumber"
	// SortProductYear is the year/season/code ordering used by the listing.
	SortProductYear SortKey = "productYear"
)

// Valid reports whether k names a supported sort mode.
func (k SortKey) Valid() bool {
	switch k {
	case SortDefault, SortPrice, SortProductNumber, SortProductYear:
		return true
	}
	return false
}

// Spec describes one listing query. The zero value (empty filters,
// SortDefault after normalization) returns the whole collection in
// catalog order.
type Spec struct {
	// Search is matched case-insensitively as a substring of the product
	// name, genre or code. Empty matches everything.
	Search string
	// Season filters on exact season text; All (or empty) matches all.
	Season string
	// Gender filters on exact gender text; All (or empty) matches all.
	Gender string
	// Sort selects the ordering.
	Sort SortKey
}

// Apply filters and orders the collection according to the query. The input
// slice is never mutated; the result is a fresh slice.
func Apply(records []models.ProductRecord, spec Spec) []models.ProductRecord {
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	out := make([]models.ProductRecord, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, search) {
			continue
		}
		if !matchesFacet(r.Season, spec.Season) {
			continue
		}
		if !matchesFacet(r.Gender, spec.Gender) {
			continue
		}
		out = append(out, r)
	}

	sortRecords(out, spec.Sort)
	return out
}

func matchesSearch(r models.ProductRecord, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.ProductName), search) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Genre), search) {
		return true
	}
	// An absent code never matches a non-empty search term.
	return r.Code != nil && strings.Contains(strings.ToLower(*r.Code), search)
}

func matchesFacet(value, filter string) bool {
	return filter == "" || filter == All || value == filter
}

// codeCollator compares product codes the way a shopper reads them:
// case-insensitive with embedded number sequences compared numerically,
// so "A2" sorts before "A10". Collators are not safe for concurrent use;
// one is built per sort.
func codeCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}

// compareCodes orders codes ascending with absent codes after present ones.
func compareCodes(col *collate.Collator, a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return col.CompareString(*a, *b)
}

// compareDefault is the layered tie-break comparator: newer release year
// first, then in-season first, then code ascending, then id ascending.
// The id step makes the order total, so re-renders are stable.
func compareDefault(col *collate.Collator, a, b models.ProductRecord) int {
	if a.ReleaseYear != b.ReleaseYear {
		if a.ReleaseYear > b.ReleaseYear {
			return -1
		}
		return 1
	}

	ra, rb := models.SeasonRank(a.Season), models.SeasonRank(b.Season)
	if ra != rb {
		if ra > rb {
			return -1
		}
		return 1
	}

	if c := compareCodes(col, a.Code, b.Code); c != 0 {
		return c
	}

	return a.ID - b.ID
}

func sortRecords(records []models.ProductRecord, key SortKey) {
	col := codeCollator()

	switch key {
	case SortPrice:
		sort.Slice(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if a.FinalPriceYen != b.FinalPriceYen {
				return a.FinalPriceYen < b.FinalPriceYen
			}
			return compareDefault(col, a, b) < 0
		})
	case SortProductNumber:
		sort.Slice(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if c := compareCodes(col, a.Code, b.Code); c != 0 {
				return c < 0
			}
			return a.ID < b.ID
		})
	case SortProductYear:
		sort.Slice(records, func(i, j int) bool {
			return compareDefault(col, records[i], records[j]) < 0
		})
	default:
		sort.Slice(records, func(i, j int) bool {
			return records[i].ID < records[j].ID
		})
	}
}

// SeasonOptions derives the season facet from the loaded collection:
// distinct non-empty values ordered by season rank descending, then
// alphabetically, with All prepended.
func SeasonOptions(records []models.ProductRecord) []string {
	values := distinct(records, func(r models.ProductRecord) string { return r.Season })
	sort.Slice(values, func(i, j int) bool {
		ri, rj := models.SeasonRank(values[i]), models.SeasonRank(values[j])
		if ri != rj {
			return ri > rj
		}
		return values[i] < values[j]
	})
	return append([]string{All}, values...)
}

// GenderOptions derives the gender facet: distinct non-empty values in
// alphabetical order, with All prepended.
func GenderOptions(records []models.ProductRecord) []string {
	values := distinct(records, func(r models.ProductRecord) string { return r.Gender })
	sort.Strings(values)
	return append([]string{All}, values...)
}

func distinct(records []models.ProductRecord, field func(models.ProductRecord) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
