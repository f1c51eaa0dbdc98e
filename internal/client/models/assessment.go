package models

import "time"

// AssessmentStatus is the lifecycle state of an assessment on the server.
type AssessmentStatus string

const (
	StatusDraft     AssessmentStatus = "draft"
	StatusSubmitted AssessmentStatus = "submitted"
	StatusLocked    AssessmentStatus = "locked"
)

// AssessmentEPA is one EPA evaluation nested in an assessment.
type AssessmentEPA struct {
	ID               string     `json:"id,omitempty"`
	EPA              string     `json:"epa"`
	EPACode          string     `json:"epa_code,omitempty"`
	EPATitle         string     `json:"epa_title,omitempty"`
	EPACategory      string     `json:"epa_category,omitempty"`
	EntrustmentLevel int        `json:"entrustment_level"`
	WhatWentWell     string     `json:"what_went_well"`
	WhatCouldImprove string     `json:"what_could_improve"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

type Assessment struct {
	ID                 string           `json:"id"`
	Trainee            string           `json:"trainee"`
	TraineeName        string           `json:"trainee_name"`
	Evaluator          string           `json:"evaluator"`
	EvaluatorName      string           `json:"evaluator_name"`
	ShiftDate          string           `json:"shift_date"`
	Location           string           `json:"location"`
	Status             AssessmentStatus `json:"status"`
	PrivateComments    string           `json:"private_comments,omitempty"`
	AcknowledgedAt     *time.Time       `json:"acknowledged_at"`
	AcknowledgedBy     string           `json:"acknowledged_by,omitempty"`
	CreatedAt          *time.Time       `json:"created_at,omitempty"`
	UpdatedAt          *time.Time       `json:"updated_at,omitempty"`
	AssessmentEPAs     []AssessmentEPA  `json:"assessment_epas"`
	EPACount           int              `json:"epa_count"`
	AverageEntrustment *float64         `json:"average_entrustment"`
}

// AssessmentInput is the whole-record payload for create and update. The
// client never sends partial updates.
type AssessmentInput struct {
	Trainee         string           `json:"trainee"`
	Evaluator       string           `json:"evaluator"`
	ShiftDate       string           `json:"shift_date"`
	Location        string           `json:"location"`
	Status          AssessmentStatus `json:"status"`
	PrivateComments string           `json:"private_comments"`
	AssessmentEPAs  []AssessmentEPA  `json:"assessment_epas"`
}
