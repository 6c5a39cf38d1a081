package dto

import (
	"github.com/spec-kit/press-service/internal/domain"
)

// SaveStaffRequest payload. An empty slug is derived from the name.
type SaveStaffRequest struct {
	Slug        string         `json:"slug"`
	Name        string         `json:"name" validate:"required"`
	Title       string         `json:"title"`
	Department  string         `json:"department"`
	Bio         string         `json:"bio"`
	Image       string         `json:"image"`
	Email       string         `json:"email" validate:"omitempty,email"`
	Socials     domain.Socials `json:"socials"`
	AccessLevel string         `json:"access_level" validate:"required"`
}

// ToDomain maps the request onto a staff entry, validating the access level
// against the closed role set.
func (r SaveStaffRequest) ToDomain() (*domain.StaffEntry, error) {
	level, err := domain.ParseRole(r.AccessLevel)
	if err != nil {
		return nil, err
	}
	return &domain.StaffEntry{
		Slug:        r.Slug,
		Name:        r.Name,
		Title:       r.Title,
		Department:  r.Department,
		Bio:         r.Bio,
		Image:       r.Image,
		Email:       r.Email,
		Socials:     r.Socials,
		AccessLevel: level,
	}, nil
}

// StaffResponse is the public directory shape. AccessLevel is only included
// on admin reads.
type StaffResponse struct {
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Department  string         `json:"department"`
	Bio         string         `json:"bio"`
	Image       string         `json:"image"`
	Email       string         `json:"email,omitempty"`
	Socials     domain.Socials `json:"socials"`
	AccessLevel domain.Role    `json:"access_level,omitempty"`
}

// NewStaffResponse maps a staff entry. withAccess controls whether the
// access level and email are exposed.
func NewStaffResponse(entry domain.StaffEntry, withAccess bool) StaffResponse {
	resp := StaffResponse{
		Slug:       entry.Slug,
		Name:       entry.Name,
		Title:      entry.Title,
		Department: entry.Department,
		Bio:        entry.Bio,
		Image:      entry.Image,
		Socials:    entry.Socials,
	}
	if withAccess {
		resp.Email = entry.Email
		resp.AccessLevel = entry.AccessLevel
	}
	return resp
}

// StaffSaveResponse reports both halves of the save saga.
type StaffSaveResponse struct {
	Entry          StaffResponse `json:"entry"`
	DirectorySaved bool          `json:"directory_saved"`
	Reconciliation string        `json:"reconciliation"`
}
