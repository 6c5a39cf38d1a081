package markup

import (
	"fmt"
	"regexp"
)

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]{11})`)

// YouTubeID extracts the 11-character video id from the common YouTube URL
// shapes. Returns false when the URL is not recognizable.
func YouTubeID(url string) (string, bool) {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// YouTubeThumbnail derives the standard thumbnail URL for a video id.
func YouTubeThumbnail(id string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
}
