package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/press-service/internal/domain"
)

// SaveJobRequest payload. An empty id creates a new posting.
type SaveJobRequest struct {
	ID               string `json:"id"`
	Title            string `json:"title" validate:"required"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Skills           string `json:"skills"`
	Location         string `json:"location"`
	Type             string `json:"type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT REMOTE"`
}

// ToDomain maps the request onto a posting. Skills arrive comma separated.
func (r SaveJobRequest) ToDomain() *domain.JobPosting {
	var skills []string
	for _, skill := range strings.Split(r.Skills, ",") {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return &domain.JobPosting{
		ID:               r.ID,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Skills:           skills,
		Location:         r.Location,
		Type:             domain.JobType(r.Type),
	}
}

// JobResponse is the careers listing shape.
type JobResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	Skills           []string `json:"skills"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
}

// NewJobResponse maps a posting.
func NewJobResponse(p domain.JobPosting) JobResponse {
	return JobResponse{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		Skills:           p.Skills,
		Location:         p.Location,
		Type:             string(p.Type),
	}
}

// SubmitApplicationRequest payload for the public careers form.
type SubmitApplicationRequest struct {
	ApplicantName string `json:"applicant_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	LinkedInURL   string `json:"linkedin_url" validate:"omitempty,url"`
	PortfolioURL  string `json:"portfolio_url" validate:"omitempty,url"`
	ResumeURL     string `json:"resume_url" validate:"omitempty,url"`
	Pitch         string `json:"pitch" validate:"required"`
}

// ToDomain maps the request onto an application for the given posting.
func (r SubmitApplicationRequest) ToDomain(jobID string) *domain.JobApplication {
	return &domain.JobApplication{
		JobID:         jobID,
		ApplicantName: r.ApplicantName,
		Email:         r.Email,
		LinkedInURL:   r.LinkedInURL,
		PortfolioURL:  r.PortfolioURL,
		ResumeURL:     r.ResumeURL,
		Pitch:         r.Pitch,
	}
}

// ApplicationResponse is the admin review shape.
type ApplicationResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email"`
	LinkedInURL   string    `json:"linkedin_url,omitempty"`
	PortfolioURL  string    `json:"portfolio_url,omitempty"`
	ResumeURL     string    `json:"resume_url,omitempty"`
	Pitch         string    `json:"pitch"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// NewApplicationResponse maps an application.
func NewApplicationResponse(a domain.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		ApplicantName: a.ApplicantName,
		Email:         a.Email,
		LinkedInURL:   a.LinkedInURL,
		PortfolioURL:  a.PortfolioURL,
		ResumeURL:     a.ResumeURL,
		Pitch:         a.Pitch,
		Status:        string(a.Status),
		SubmittedAt:   a.SubmittedAt,
	}
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new reviewed shortlisted rejected"`
}
