// Package imageurl sizes raw asset URLs for display.
//
// The image CDN accepts a sz= query parameter carrying a size token
// ("s400"). WithSize appends or overwrites that parameter as a pure text
// transform, leaving the rest of the URL untouched.
package imageurl

import (
	"math"
	"strconv"
	"strings"
)

// WithSize returns rawURL with its sz= query parameter set to the target
// pixel size. An empty rawURL yields "". The size is rounded to the
// nearest integer with a floor of 1. Any #fragment is preserved unchanged.
func WithSize(rawURL string, size float64) string {
	base := strings.TrimSpace(rawURL)
	if base == "" {
		return ""
	}

	rounded := int(math.Round(size))
	if rounded < 1 {
		rounded = 1
	}
	token := "sz=s" + strconv.Itoa(rounded)

	withoutHash, hash, hasHash := strings.Cut(base, "#")

	if start, end := findSizeParam(withoutHash); start >= 0 {
		withoutHash = withoutHash[:start] + token + withoutHash[end:]
	} else if strings.Contains(withoutHash, "?") {
		withoutHash += "&" + token
	} else {
		withoutHash += "?" + token
	}

	if hasHash {
		return withoutHash + "#" + hash
	}
	return withoutHash
}

// findSizeParam locates an existing sz= parameter (case-insensitive),
// returning the bounds of "sz=<value>" or (-1, -1).
func findSizeParam(url string) (int, int) {
	lower := strings.ToLower(url)
	from := 0
	for {
		idx := strings.Index(lower[from:], "sz=")
		if idx < 0 {
			return -1, -1
		}
		idx += from
		// Must be a parameter, not a substring of a path or another key.
		if idx == 0 || (url[idx-1] != '?' && url[idx-1] != '&') {
			from = idx + 3
			continue
		}
		end := idx + 3
		for end < len(url) && url[end] != '&' {
			end++
		}
		return idx, end
	}
}
