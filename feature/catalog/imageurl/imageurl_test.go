package imageurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSize(t *testing.T) {
	tests := []struct {
		name string
		url  string
		size float64
		want string
	}{
		{"Empty", "", 400, ""},
		{"WhitespaceOnly", "   ", 400, ""},
		{"NoQuery", "http://x/img.jpg", 400, "http://x/img.jpg?sz=s400"},
		{"ExistingQuery", "http://x/img.jpg?v=2", 400, "http://x/img.jpg?v=2&sz=s400"},
		{"ReplaceExisting", "http://x/img.jpg?sz=s100", 400, "http://x/img.jpg?sz=s400"},
		{"ReplaceExistingMidQuery", "http://x/img.jpg?sz=s100&v=2", 600, "http://x/img.jpg?sz=s600&v=2"},
		{"ReplaceCaseInsensitive", "http://x/img.jpg?SZ=s100", 400, "http://x/img.jpg?sz=s400"},
		{"KeySubstringNotReplaced", "http://x/img.jpg?xsz=9", 400, "http://x/img.jpg?xsz=9&sz=s400"},
		{"FragmentPreserved", "http://x/img.jpg#top", 400, "http://x/img.jpg?sz=s400#top"},
		{"FragmentWithQuery", "http://x/img.jpg?sz=s100#top", 400, "http://x/img.jpg?sz=s400#top"},
		{"Rounded", "http://x/img.jpg", 399.6, "http://x/img.jpg?sz=s400"},
		{"FlooredAtOne", "http://x/img.jpg", -5, "http://x/img.jpg?sz=s1"},
		{"ZeroFloorsToOne", "http://x/img.jpg", 0, "http://x/img.jpg?sz=s1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithSize(tt.url, tt.size))
		})
	}
}
