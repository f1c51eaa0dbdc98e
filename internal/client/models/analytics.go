package models

import "encoding/json"

// Report is an analytics payload whose shape is owned by the server and
// rendered as-is.
type Report map[string]json.RawMessage

type ProgramSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Specialty    string `json:"specialty"`
}

type Timeframe struct {
	Months    int    `json:"months"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ProgramMetrics struct {
	TotalTrainees            int     `json:"total_trainees"`
	ActiveTrainees           int     `json:"active_trainees"`
	AssessmentsInPeriod      int     `json:"assessments_in_period"`
	TotalLifetimeAssessments int     `json:"total_lifetime_assessments"`
	AverageCompetencyLevel   float64 `json:"average_competency_level"`
	CompletionRate           float64 `json:"completion_rate"`
}

type TraineeBreakdown struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Department             string  `json:"department"`
	AssessmentsInPeriod    int     `json:"assessments_in_period"`
	TotalAssessments       int     `json:"total_assessments"`
	AverageCompetencyLevel float64 `json:"average_competency_level"`
	IsActive               bool    `json:"is_active"`
	LastAssessmentDate     *string `json:"last_assessment_date"`
}

type LevelShare struct {
	Level      int     `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MonthlyTrend struct {
	Month        string  `json:"month"`
	Assessments  int     `json:"assessments"`
	AverageLevel float64 `json:"average_level"`
}

// ProgramPerformance is the leadership dashboard roll-up for one program.
type ProgramPerformance struct {
	Program                ProgramSummary     `json:"program"`
	Timeframe              Timeframe          `json:"timeframe"`
	Metrics                ProgramMetrics     `json:"metrics"`
	TraineeBreakdown       []TraineeBreakdown `json:"trainee_breakdown"`
	CompetencyDistribution []LevelShare       `json:"competency_distribution"`
	RecentTrends           []MonthlyTrend     `json:"recent_trends"`
}
