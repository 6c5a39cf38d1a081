package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "short url", url: "https://youtu.be/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "embed url", url: "https://www.youtube.com/embed/dQw4w9WgXcQ", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "watch url with extra params", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s", wantID: "dQw4w9WgXcQ", wantOK: true},
		{name: "not youtube", url: "https://vimeo.com/123456", wantOK: false},
		{name: "empty", url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := YouTubeID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		YouTubeThumbnail("dQw4w9WgXcQ"))
}
