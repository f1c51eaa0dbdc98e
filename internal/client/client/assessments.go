package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

const assessmentsPath = "/assessments/"

func (c *HTTPClient) Assessments() *Resource[models.Assessment] {
	return newResource[models.Assessment](c, assessmentsPath)
}

// ListAssessments lists every assessment the caller may see.
func (c *HTTPClient) ListAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.Assessments().List(ctx, query)
}

func (c *HTTPClient) listAssessments(ctx context.Context, action string, query url.Values) (models.Page[models.Assessment], error) {
	var page models.Page[models.Assessment]
	err := c.Do(ctx, http.MethodGet, assessmentsPath+action, query, nil, &page)
	return page, err
}

// MyAssessments lists assessments the caller gave or received.
func (c *HTTPClient) MyAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.listAssessments(ctx, "my_assessments/", query)
}

// MyEvaluations lists assessments the caller gave as evaluator.
func (c *HTTPClient) MyEvaluations(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.listAssessments(ctx, "my_evaluations/", query)
}

// ReceivedAssessments lists assessments where the caller is the trainee.
func (c *HTTPClient) ReceivedAssessments(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.listAssessments(ctx, "received_assessments/", query)
}

// Mailbox lists unread assessments carrying private comments.
func (c *HTTPClient) Mailbox(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.listAssessments(ctx, "mailbox/", query)
}

// MailboxRead lists mailbox items already marked read.
func (c *HTTPClient) MailboxRead(ctx context.Context, query url.Values) (models.Page[models.Assessment], error) {
	return c.listAssessments(ctx, "mailbox/read/", query)
}

func (c *HTTPClient) MarkRead(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodPost, assessmentsPath+url.PathEscape(id)+"/mark-read/", nil, nil, nil)
}

// Acknowledge records that the trainee has seen the assessment and returns
// the updated record.
func (c *HTTPClient) Acknowledge(ctx context.Context, id string) (models.Assessment, error) {
	var a models.Assessment
	err := c.Do(ctx, http.MethodPost, assessmentsPath+url.PathEscape(id)+"/acknowledge/", nil, nil, &a)
	return a, err
}
