package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/listquery"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
)

// Scope selects which assessments a list shows.
type Scope string

const (
	ScopeAll         Scope = "all"
	ScopeMine        Scope = "mine"
	ScopeEvaluations Scope = "evaluations"
	ScopeReceived    Scope = "received"
)

func ParseScope(s string) (Scope, error) {
	switch sc := Scope(s); sc {
	case ScopeAll, ScopeMine, ScopeEvaluations, ScopeReceived:
		return sc, nil
	case "":
		return ScopeAll, nil
	}
	return "", fmt.Errorf("unknown scope %q (all, mine, evaluations, received)", s)
}

type AssessmentsAPI interface {
	ListAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	MyAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	MyEvaluations(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	ReceivedAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	Acknowledge(ctx context.Context, id string) (models.Assessment, error)
}

// Filter keys accepted by the assessment list.
const (
	FilterTrainee   = "trainee"
	FilterEvaluator = "evaluator"
	FilterStatus    = "status"
	FilterStartDate = "start_date"
	FilterEndDate   = "end_date"
	FilterProgram   = "program"
)

var assessmentFilters = map[string]bool{
	FilterTrainee:   true,
	FilterEvaluator: true,
	FilterStatus:    true,
	FilterStartDate: true,
	FilterEndDate:   true,
	FilterProgram:   true,
}

type AssessmentList struct {
	*listquery.Controller[models.Assessment, views.Assessment]
	api   AssessmentsAPI
	scope Scope
}

func NewAssessmentList(api AssessmentsAPI, scope Scope, opts listquery.Options[views.Assessment]) *AssessmentList {
	var fetch listquery.Fetcher[models.Assessment]
	switch scope {
	case ScopeMine:
		fetch = api.MyAssessments
	case ScopeEvaluations:
		fetch = api.MyEvaluations
	case ScopeReceived:
		fetch = api.ReceivedAssessments
	default:
		scope = ScopeAll
		fetch = api.ListAssessments
	}
	if opts.Name == "" {
		opts.Name = "assessments." + string(scope)
	}
	if opts.SortKey == "" {
		opts.SortKey, opts.SortDesc = "shift_date", true
	}
	return &AssessmentList{
		Controller: listquery.New(fetch, views.NewAssessment, opts),
		api:        api,
		scope:      scope,
	}
}

func (l *AssessmentList) Scope() Scope { return l.scope }

// ApplyFilter validates key and value before handing them to the controller.
// Dates must be YYYY-MM-DD; status must be a known assessment status.
func (l *AssessmentList) ApplyFilter(key, value string) error {
	return l.ApplyFilters(map[string]string{key: value})
}

// ApplyFilters validates every entry first and then fetches once. Nothing
// is applied when any entry is rejected.
func (l *AssessmentList) ApplyFilters(filters map[string]string) error {
	for key, value := range filters {
		if err := validateFilter(key, value); err != nil {
			return err
		}
	}
	l.SetFilters(filters)
	return nil
}

func validateFilter(key, value string) error {
	if !assessmentFilters[key] {
		return fmt.Errorf("unknown filter %q", key)
	}
	if value == "" {
		return nil
	}
	switch key {
	case FilterStartDate, FilterEndDate:
		if _, err := time.Parse(time.DateOnly, value); err != nil {
			return fmt.Errorf("%s: %w", key, common.ErrInvalidDate)
		}
	case FilterStatus:
		switch models.AssessmentStatus(value) {
		case models.StatusDraft, models.StatusSubmitted, models.StatusLocked:
		default:
			return fmt.Errorf("unknown status %q", value)
		}
	}
	return nil
}

// Acknowledge marks an assessment as seen by its trainee and reloads the list.
func (l *AssessmentList) Acknowledge(ctx context.Context, id string) error {
	if _, err := l.api.Acknowledge(ctx, id); err != nil {
		return fmt.Errorf("acknowledge %s: %w", id, err)
	}
	l.Refetch()
	return nil
}
