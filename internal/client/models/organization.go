package models

import "time"

type Organization struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type Program struct {
	ID           string `json:"id"`
	Org          string `json:"org"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Specialty    string `json:"specialty"`
	ACGMEID      string `json:"acgme_id,omitempty"`
}

type Site struct {
	ID      string `json:"id"`
	Org     string `json:"org"`
	Program string `json:"program"`
	Name    string `json:"name"`
}

// Cohort is a named group of trainees, e.g. a graduating class.
type Cohort struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Org         string `json:"org"`
	OrgName     string `json:"org_name,omitempty"`
	Program     string `json:"program"`
	ProgramName string `json:"program_name,omitempty"`
}
