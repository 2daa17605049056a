// Package types provides type definitions for structured data used throughout the ATS resume builder.
package types

import (
	"github.com/go-playground/validator/v10"
)

// CandidateProfile represents the candidate's base profile loaded from a JSON file.
// Only the fields the generation prompt consumes are modeled.
type CandidateProfile struct {
	Name       string            `json:"name" validate:"required,min=1"`
	Email      string            `json:"email" validate:"required,email"`
	Phone      string            `json:"phone,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills" validate:"required,min=1"`
	Experience []ExperienceEntry `json:"experience" validate:"required,min=1,dive"`
	Education  []EducationEntry  `json:"education,omitempty" validate:"dive"`
}

// ExperienceEntry represents one employer/role record in the candidate profile.
type ExperienceEntry struct {
	Company   string   `json:"company" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
	Bullets   []string `json:"bullets,omitempty"`
}

// EducationEntry represents one education record in the candidate profile.
type EducationEntry struct {
	Institution    string `json:"institution" validate:"required"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
