package domain

import "time"

// Preferences are user-owned flags with no access-control meaning.
type Preferences struct {
	MutedTopics        []string `json:"muted_topics"`
	EmailNotifications bool     `json:"email_notifications"`
}

// DefaultPreferences returns the preference set for a freshly created profile.
func DefaultPreferences() Preferences {
	return Preferences{MutedTopics: []string{}, EmailNotifications: true}
}

// Profile is this service's own record about an authenticated principal.
type Profile struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Credential is the local identity-provider record for a principal. It is
// deliberately separate from Profile: credentials authenticate, profiles
// carry role and preferences.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
