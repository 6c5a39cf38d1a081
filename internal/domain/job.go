package domain

import (
	"fmt"
	"time"
)

// JobType enumerates employment arrangements for a posting.
type JobType string

const (
	JobTypeFullTime JobType = "FULL_TIME"
	JobTypePartTime JobType = "PART_TIME"
	JobTypeContract JobType = "CONTRACT"
	JobTypeRemote   JobType = "REMOTE"
)

// JobPosting is a public careers listing.
type JobPosting struct {
	ID               string
	Title            string
	ShortDescription string
	LongDescription  string
	Skills           []string
	Location         string
	Type             JobType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ApplicationStatus tracks editorial review of a job application.
type ApplicationStatus string

const (
	ApplicationStatusNew         ApplicationStatus = "new"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates a submitted status value.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		return ApplicationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown application status %q", s)
	}
}

// JobApplication is a public submission against a posting.
type JobApplication struct {
	ID            string
	JobID         string
	JobTitle      string
	ApplicantName string
	Email         string
	LinkedInURL   string
	PortfolioURL  string
	ResumeURL     string
	Pitch         string
	Status        ApplicationStatus
	SubmittedAt   time.Time
}
