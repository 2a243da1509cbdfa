package feed

import (
	"math"
	"strconv"
	"strings"

	"catalog-manager/feature/catalog/models"
)

// expectedCells is the current feed schema: id, code, release year, season,
// gender, product name, color range, genre, size range, material, feature,
// trim spec, final price, image URL.
const expectedCells = 14

// Result is the outcome of parsing one feed text.
type Result struct {
	// Records holds the normalized records in feed order.
	Records []models.ProductRecord
	// Malformed counts data lines that could not be normalized.
	Malformed int
	// Duplicates counts data lines dropped because their id was already
	// taken by an earlier line.
	Duplicates int
}

// Parse converts the full feed text into normalized product records.
//
// Lines are split on \n (a trailing \r from CRLF input is trimmed away),
// blank lines are dropped, and the first remaining line is always treated
// as a header and skipped. Each data line gets a 1-based fallback id equal
// to its position among the data lines. Lines that fail normalization are
// excluded silently but counted; a header-only feed yields an empty result.
func Parse(text string) Result {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	res := Result{}
	if len(lines) <= 1 {
		return res
	}

	seen := make(map[int]struct{})
	for i, line := range lines[1:] {
		rec, ok := NormalizeLine(line, i+1)
		if !ok {
			res.Malformed++
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			res.Duplicates++
			continue
		}
		seen[rec.ID] = struct{}{}
		res.Records = append(res.Records, rec)
	}

	return res
}

// NormalizeLine interprets one raw feed line as a product record.
// fallbackID is assigned when the id cell is empty or unparseable.
// The second return value is false when the line is unparseable.
func NormalizeLine(line string, fallbackID int) (models.ProductRecord, bool) {
	cells, ok := canonicalize(splitCells(line))
	if !ok {
		return models.ProductRecord{}, false
	}

	rec := models.ProductRecord{
		ID:            parseID(cells[0], fallbackID),
		Code:          optional(cells[1]),
		ReleaseYear:   parseYear(cells[2]),
		Season:        cells[3],
		Gender:        cells[4],
		ProductName:   cells[5],
		ColorRange:    cells[6],
		Genre:         cells[7],
		SizeRange:     cells[8],
		Material:      cells[9],
		Feature:       cells[10],
		TrimSpec:      cells[11],
		FinalPriceYen: parsePrice(cells[12]),
		ImageURL:      optional(cells[13]),
	}
	return rec, true
}

// splitCells breaks a line on the field delimiter, trims each cell and
// strips one pair of surrounding double quotes.
func splitCells(line string) []string {
	cells := strings.Split(line, "|")
	for i, c := range cells {
		c = strings.TrimSpace(c)
		c = strings.TrimPrefix(c, `"`)
		c = strings.TrimSuffix(c, `"`)
		cells[i] = c
	}
	return cells
}

// shapeRule repairs one known historical layout towards the current schema.
type shapeRule func(cells []string) []string

// The feed has drifted through several column layouts. The rules run in
// order, each producing a (possibly) wider cell slice:
//
//	12 cells: trailing image URL missing           -> pad to 13
//	13 cells: either release year or image missing -> disambiguate to 14
var shapeRules = []shapeRule{padTrailingImage, resolveMissingYear}

// padTrailingImage tolerates a line whose trailing image URL cell was
// dropped entirely.
func padTrailingImage(cells []string) []string {
	if len(cells) == expectedCells-2 {
		return append(cells, "")
	}
	return cells
}

// resolveMissingYear disambiguates the 13-cell layout: when the 3rd cell
// parses as an integer the release year is present and only the image URL
// is missing; otherwise the line predates the release-year column and the
// sentinel year is inserted at position 3.
//
// A legacy code value that happens to look numeric is misread as a release
// year here. The feed carries no schema version marker, so the guess is
// the best available and is kept as-is.
func resolveMissingYear(cells []string) []string {
	if len(cells) != expectedCells-1 {
		return cells
	}
	if _, err := strconv.Atoi(cells[2]); err == nil {
		return append(cells, "")
	}
	widened := make([]string, 0, expectedCells)
	widened = append(widened, cells[:2]...)
	widened = append(widened, strconv.Itoa(models.DefaultReleaseYear))
	widened = append(widened, cells[2:]...)
	return widened
}

// canonicalize applies the shape rules and validates the final width.
// Extra trailing cells beyond the current schema are ignored.
func canonicalize(cells []string) ([]string, bool) {
	for _, rule := range shapeRules {
		cells = rule(cells)
	}
	if len(cells) < expectedCells {
		return nil, false
	}
	return cells[:expectedCells], true
}

// optional maps an empty cell to an absent value.
func optional(cell string) *string {
	if cell == "" {
		return nil
	}
	return &cell
}

func parseID(cell string, fallback int) int {
	id, err := strconv.Atoi(cell)
	if err != nil || id <= 0 {
		return fallback
	}
	return id
}

func parseYear(cell string) int {
	year, err := strconv.Atoi(cell)
	if err != nil {
		return models.DefaultReleaseYear
	}
	return year
}

// parsePrice reads a currency-formatted cell ("¥12,800 ") into a
// non-negative amount. Anything unparseable resolves to 0 so a bad price
// never drops a record.
func parsePrice(cell string) float64 {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '¥', '￥', ',', ' ', '\t', ' ':
			return -1
		}
		return r
	}, cell)

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}
