// Package models defines the wire records exchanged with the REST backend.
// They mirror the JSON the server emits; display projections live in views.
package models

import "time"

// Role is the backend's user role.
type Role string

const (
	RoleTrainee     Role = "trainee"
	RoleFaculty     Role = "faculty"
	RoleAdmin       Role = "admin"
	RoleLeadership  Role = "leadership"
	RoleSystemAdmin Role = "system-admin"
)

type User struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Role                Role       `json:"role"`
	Organization        string     `json:"organization,omitempty"`
	OrganizationName    string     `json:"organization_name,omitempty"`
	Program             string     `json:"program,omitempty"`
	ProgramName         string     `json:"program_name,omitempty"`
	ProgramAbbreviation string     `json:"program_abbreviation,omitempty"`
	Department          string     `json:"department,omitempty"`
	StartDate           string     `json:"start_date,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// UserInput is the create/update payload. Password is only sent on create.
type UserInput struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Organization string `json:"organization,omitempty"`
	Program      string `json:"program,omitempty"`
	Department   string `json:"department,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	Password     string `json:"password,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
