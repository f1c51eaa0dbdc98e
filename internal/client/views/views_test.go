package views

import (
	"testing"
	"time"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEPACode(t *testing.T) {
	cases := map[string]string{
		"EPA3":  "EPA 3",
		"EPA12": "EPA 12",
		"EPA 3": "EPA 3",
		"PC2":   "PC 2",
		"":      "",
		"12":    "12",
		"a1b2":  "a 1b 2",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got := FormatEPACode(in)
			assert.Equal(t, want, got)
			assert.Equal(t, got, FormatEPACode(got), "formatting twice changes nothing")
		})
	}
}

func TestNewAssessment_Placeholders(t *testing.T) {
	v := NewAssessment(models.Assessment{ID: "a1", TraineeName: "", EvaluatorName: "  "})
	assert.Equal(t, UnknownTrainee, v.Trainee)
	assert.Equal(t, UnknownEvaluator, v.Evaluator)

	v = NewAssessment(models.Assessment{TraineeName: "Dana Lee", EvaluatorName: "Dr. Ortiz"})
	assert.Equal(t, "Dana Lee", v.Trainee)
	assert.Equal(t, "Dr. Ortiz", v.Evaluator)
}

func TestNewAssessment_MapsEPAsAndAverage(t *testing.T) {
	now := time.Now()
	a := models.Assessment{
		ID:              "a1",
		Status:          models.StatusSubmitted,
		AcknowledgedAt:  &now,
		PrivateComments: "see me",
		AssessmentEPAs: []models.AssessmentEPA{
			{EPACode: "EPA1", EPATitle: "Triage", EntrustmentLevel: 3},
			{EPACode: "EPA10", EPATitle: "Handoff", EntrustmentLevel: 4},
		},
	}

	v := NewAssessment(a)
	assert.Equal(t, "Submitted", v.Status)
	assert.True(t, v.Acknowledged)
	assert.True(t, v.Private)
	require.Len(t, v.EPAs, 2)
	assert.Equal(t, "EPA 1", v.EPAs[0].Code)
	assert.Equal(t, "EPA 10", v.EPAs[1].Code)
	assert.Equal(t, "I helped a little", v.EPAs[0].LevelLabel)
	require.True(t, v.HasAverage)
	assert.InDelta(t, 3.5, v.Average, 1e-9)

	server := 4.25
	a.AverageEntrustment = &server
	assert.InDelta(t, 4.25, NewAssessment(a).Average, 1e-9)
}

func TestNewAssessment_NoLevelsNoAverage(t *testing.T) {
	v := NewAssessment(models.Assessment{ID: "a1"})
	assert.False(t, v.HasAverage)
	assert.Empty(t, v.EPAs)
	assert.False(t, v.Acknowledged)
}

func TestNewAssessment_IsPure(t *testing.T) {
	a := models.Assessment{ID: "a1", AssessmentEPAs: []models.AssessmentEPA{{EPACode: "EPA2", EntrustmentLevel: 2}}}
	first := NewAssessment(a)
	second := NewAssessment(a)
	assert.Equal(t, first, second)
	assert.Equal(t, "EPA2", a.AssessmentEPAs[0].EPACode, "input untouched")
}

func TestSummarize(t *testing.T) {
	items := Assessments([]models.Assessment{
		{AssessmentEPAs: []models.AssessmentEPA{{EntrustmentLevel: 2}, {EntrustmentLevel: 4}}},
		{AcknowledgedAt: new(time.Time), AssessmentEPAs: []models.AssessmentEPA{{EntrustmentLevel: 5}}},
		{},
	})

	s := Summarize(items)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Acknowledged)
	assert.Equal(t, 2, s.Pending)
	assert.InDelta(t, 4.0, s.Average, 1e-9)
	assert.InDelta(t, 4.0, s.Median, 1e-9)
	assert.Equal(t, [6]int{0, 0, 1, 0, 1, 1}, s.Levels)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Average)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "System Admin", RoleLabel(models.RoleSystemAdmin))
	assert.Equal(t, "custom", RoleLabel("custom"))
	assert.Equal(t, "Level 9", EntrustmentLabel(9))
	assert.Equal(t, "", StatusLabel(""))

	u := NewUser(models.User{ID: "u1", Email: "x@y.z", Role: models.RoleFaculty, ProgramName: "Emergency Medicine", ProgramAbbreviation: "EM"})
	assert.Equal(t, "x@y.z", u.Name)
	assert.Equal(t, "Faculty", u.Role)
	assert.Equal(t, "EM", u.Program)

	e := NewEPA(models.EPA{Code: "EPA7", Title: "Procedures", IsActive: true})
	assert.Equal(t, "EPA 7", e.Code)
	assert.True(t, e.Active)
}
