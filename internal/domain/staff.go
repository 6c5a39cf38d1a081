package domain

import (
	"strings"
	"time"
	"unicode"
)

// Socials holds optional public links on a staff profile.
type Socials struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
	Substack  string `json:"substack,omitempty"`
}

// StaffEntry is an editorially managed public team-member record. The slug is
// the public profile URL key and is immutable once assigned. Email, when set,
// is a weak reference to a Profile: the directory never owns or deletes the
// login record.
type StaffEntry struct {
	Slug        string
	Name        string
	Title       string
	Department  string
	Bio         string
	Image       string
	Email       string
	Socials     Socials
	AccessLevel Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeriveSlug builds a URL-safe slug from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen. Deterministic, so retried saves upsert the same entry.
func DeriveSlug(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
