package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_DecodesPaginatedObject(t *testing.T) {
	body := `{"count": 42, "next": "http://api/epas/?page=3", "previous": null,
		"results": [{"id": "e1", "code": "EPA1", "title": "Triage"}]}`

	var p Page[EPA]
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, 42, p.Count)
	assert.Equal(t, "http://api/epas/?page=3", p.Next)
	assert.Empty(t, p.Previous)
	require.Len(t, p.Results, 1)
	assert.Equal(t, "EPA1", p.Results[0].Code)
}

func TestPage_DecodesResultsWithoutCount(t *testing.T) {
	var p Page[User]
	require.NoError(t, json.Unmarshal([]byte(`{"results": [{"id": "u1"}, {"id": "u2"}]}`), &p))
	assert.Equal(t, 2, p.Count)
}

func TestPage_DecodesBareArray(t *testing.T) {
	var p Page[Cohort]
	require.NoError(t, json.Unmarshal([]byte(` [{"id": "c1", "name": "Class of 2027"}]`), &p))
	assert.Equal(t, 1, p.Count)
	assert.Equal(t, "Class of 2027", p.Results[0].Name)
}

func TestAssessment_DecodesServerShape(t *testing.T) {
	body := `{
		"id": "a1", "trainee": "u1", "trainee_name": "Dana Lee",
		"evaluator": "u2", "evaluator_name": null,
		"shift_date": "2026-03-02", "location": "ED", "status": "submitted",
		"acknowledged_at": null, "created_at": "2026-03-02T18:04:05.123456Z",
		"assessment_epas": [{"id": "x", "epa": "e1", "epa_code": "EPA3", "epa_title": "Handoff",
			"entrustment_level": 4, "what_went_well": "clear", "what_could_improve": "pace"}],
		"epa_count": 1, "average_entrustment": 4.0
	}`

	var a Assessment
	require.NoError(t, json.Unmarshal([]byte(body), &a))
	assert.Equal(t, StatusSubmitted, a.Status)
	assert.Empty(t, a.EvaluatorName)
	assert.Nil(t, a.AcknowledgedAt)
	require.NotNil(t, a.CreatedAt)
	require.NotNil(t, a.AverageEntrustment)
	assert.InDelta(t, 4.0, *a.AverageEntrustment, 1e-9)
	assert.Equal(t, 4, a.AssessmentEPAs[0].EntrustmentLevel)
}
