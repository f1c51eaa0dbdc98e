package views

import (
	"github.com/montanaflynn/stats"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

type EPAEvaluation struct {
	Code             string
	Title            string
	Level            int
	LevelLabel       string
	WhatWentWell     string
	WhatCouldImprove string
}

type Assessment struct {
	ID           string
	Trainee      string
	Evaluator    string
	ShiftDate    string
	Location     string
	Status       string
	Acknowledged bool
	Private      bool
	EPAs         []EPAEvaluation
	// Average is meaningful only when HasAverage is set.
	Average    float64
	HasAverage bool
}

// NewAssessment maps one wire assessment. The server's average wins; without
// it the mean of the nested levels is used.
func NewAssessment(a models.Assessment) Assessment {
	v := Assessment{
		ID:           a.ID,
		Trainee:      nameOr(a.TraineeName, UnknownTrainee),
		Evaluator:    nameOr(a.EvaluatorName, UnknownEvaluator),
		ShiftDate:    a.ShiftDate,
		Location:     a.Location,
		Status:       StatusLabel(a.Status),
		Acknowledged: a.AcknowledgedAt != nil,
		Private:      a.PrivateComments != "",
		EPAs:         make([]EPAEvaluation, 0, len(a.AssessmentEPAs)),
	}

	levels := make([]float64, 0, len(a.AssessmentEPAs))
	for _, e := range a.AssessmentEPAs {
		v.EPAs = append(v.EPAs, EPAEvaluation{
			Code:             FormatEPACode(e.EPACode),
			Title:            e.EPATitle,
			Level:            e.EntrustmentLevel,
			LevelLabel:       EntrustmentLabel(e.EntrustmentLevel),
			WhatWentWell:     e.WhatWentWell,
			WhatCouldImprove: e.WhatCouldImprove,
		})
		if e.EntrustmentLevel > 0 {
			levels = append(levels, float64(e.EntrustmentLevel))
		}
	}

	switch {
	case a.AverageEntrustment != nil:
		v.Average, v.HasAverage = *a.AverageEntrustment, true
	case len(levels) > 0:
		if mean, err := stats.Mean(levels); err == nil {
			v.Average, _ = stats.Round(mean, 2)
			v.HasAverage = true
		}
	}
	return v
}

// Assessments maps a slice, preserving order.
func Assessments(in []models.Assessment) []Assessment {
	out := make([]Assessment, len(in))
	for i, a := range in {
		out[i] = NewAssessment(a)
	}
	return out
}
