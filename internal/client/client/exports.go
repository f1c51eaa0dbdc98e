package client

import (
	"context"
	"net/url"
)

func (c *HTTPClient) ExportAssessments(ctx context.Context, query url.Values) (*Blob, error) {
	return c.Download(ctx, "/exports/assessments/", query)
}

func (c *HTTPClient) ExportCompetencyGrid(ctx context.Context, query url.Values) (*Blob, error) {
	return c.Download(ctx, "/exports/competency-grid/", query)
}
