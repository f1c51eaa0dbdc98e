package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

func (c *HTTPClient) report(ctx context.Context, path string, query url.Values) (models.Report, error) {
	var r models.Report
	err := c.Do(ctx, http.MethodGet, path, query, nil, &r)
	return r, err
}

func (c *HTTPClient) FacultyDashboard(ctx context.Context, query url.Values) (models.Report, error) {
	return c.report(ctx, "/analytics/faculty-dashboard/", query)
}

func (c *HTTPClient) CompetencyProgress(ctx context.Context, query url.Values) (models.Report, error) {
	return c.report(ctx, "/analytics/competency-progress/", query)
}

func (c *HTTPClient) TraineePerformance(ctx context.Context, query url.Values) (models.Report, error) {
	return c.report(ctx, "/analytics/trainee-performance/", query)
}

func (c *HTTPClient) CompetencyGrid(ctx context.Context, query url.Values) (models.Report, error) {
	return c.report(ctx, "/analytics/competency-grid/", query)
}

// ProgramPerformance needs query "program_id"; "months" is optional.
func (c *HTTPClient) ProgramPerformance(ctx context.Context, query url.Values) (models.ProgramPerformance, error) {
	var p models.ProgramPerformance
	err := c.Do(ctx, http.MethodGet, "/analytics/program-performance/", query, nil, &p)
	return p, err
}
