package client

import (
	"context"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

// The backend only exposes list, get and create for these collections to
// this client.

func (c *HTTPClient) Cohorts() *Resource[models.Cohort] {
	return newResource[models.Cohort](c, "/cohorts/")
}

func (c *HTTPClient) Programs() *Resource[models.Program] {
	return newResource[models.Program](c, "/programs/")
}

func (c *HTTPClient) Sites() *Resource[models.Site] {
	return newResource[models.Site](c, "/sites/")
}

func (c *HTTPClient) ListCohorts(ctx context.Context, query url.Values) (models.Page[models.Cohort], error) {
	return c.Cohorts().List(ctx, query)
}
