package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
	"golang.org/x/sync/errgroup"
)

const recentLimit = 5

type DashboardAPI interface {
	ReceivedAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	MyEvaluations(ctx context.Context, query url.Values) (models.Page[models.Assessment], error)
	ProgramPerformance(ctx context.Context, query url.Values) (models.ProgramPerformance, error)
	ListCohorts(ctx context.Context, query url.Values) (models.Page[models.Cohort], error)
}

type DashboardData struct {
	User     views.User
	Received []views.Assessment
	Given    []views.Assessment
	// Summary covers Received for trainees and Given for everyone else.
	Summary views.Summary
	Program *models.ProgramPerformance
	Cohorts []models.Cohort
}

// Dashboard loads the home screen. Which panels load depends on the role.
type Dashboard struct {
	api DashboardAPI
}

func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

// Load fetches every panel concurrently. The first failure cancels the rest
// and is returned.
func (d *Dashboard) Load(ctx context.Context, u models.User) (*DashboardData, error) {
	data := &DashboardData{User: views.NewUser(u)}
	recent := url.Values{"limit": {strconv.Itoa(recentLimit)}, "ordering": {"-shift_date"}}

	g, ctx := errgroup.WithContext(ctx)

	if u.Role == models.RoleTrainee {
		g.Go(func() error {
			page, err := d.api.ReceivedAssessments(ctx, recent)
			if err != nil {
				return err
			}
			data.Received = views.Assessments(page.Results)
			return nil
		})
	} else {
		g.Go(func() error {
			page, err := d.api.MyEvaluations(ctx, recent)
			if err != nil {
				return err
			}
			data.Given = views.Assessments(page.Results)
			return nil
		})
	}

	switch u.Role {
	case models.RoleLeadership, models.RoleAdmin, models.RoleSystemAdmin:
		if u.Program != "" {
			g.Go(func() error {
				p, err := d.api.ProgramPerformance(ctx, url.Values{"program_id": {u.Program}})
				if err != nil {
					return err
				}
				data.Program = &p
				return nil
			})
		}
		g.Go(func() error {
			q := url.Values{}
			if u.Program != "" {
				q.Set("program", u.Program)
			}
			page, err := d.api.ListCohorts(ctx, q)
			if err != nil {
				return err
			}
			data.Cohorts = page.Results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if u.Role == models.RoleTrainee {
		data.Summary = views.Summarize(data.Received)
	} else {
		data.Summary = views.Summarize(data.Given)
	}
	return data, nil
}
