package events

import (
	"time"

	"github.com/spec-kit/press-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffSaved           EventType = "staff_saved"
	EventStaffDeleted         EventType = "staff_deleted"
	EventRoleReconciled       EventType = "role_reconciled"
	EventArticlePublished     EventType = "article_published"
	EventApplicationSubmitted EventType = "application_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffSavedPayload payload.
type StaffSavedPayload struct {
	Slug        string      `json:"slug"`
	Email       string      `json:"email,omitempty"`
	AccessLevel domain.Role `json:"access_level"`
}

// RoleReconciledPayload payload. Outcome mirrors the reconciler's
// classification; no_match and ambiguous entries exist for operator
// visibility, not alerting.
type RoleReconciledPayload struct {
	Email   string      `json:"email"`
	NewRole domain.Role `json:"new_role"`
	Outcome string      `json:"outcome"`
}

// StaffDeletedPayload payload.
type StaffDeletedPayload struct {
	Slug    string `json:"slug"`
	Email   string `json:"email,omitempty"`
	Revoked bool   `json:"revoked"`
}

// ArticlePublishedPayload payload.
type ArticlePublishedPayload struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	ApplicantName string `json:"applicant_name"`
}
