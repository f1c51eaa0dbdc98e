package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/client"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/listquery"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
	"github.com/shiftnotes/shiftnotes-cli/internal/client/views"
)

// EPAStore is satisfied by *client.Resource[models.EPA].
type EPAStore interface {
	List(ctx context.Context, query url.Values) (models.Page[models.EPA], error)
	Create(ctx context.Context, in any) (models.EPA, error)
	Update(ctx context.Context, id string, in any) (models.EPA, error)
	Delete(ctx context.Context, id string) error
}

const requiredField = "This field is required."

// FormError carries per-field messages for an edit form.
type FormError struct {
	Message string
	Fields  map[string]string
	Err     error
}

func (e *FormError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *FormError) Unwrap() error { return e.Err }

// Curriculum manages a program's EPAs.
type Curriculum struct {
	EPAs  *listquery.Controller[models.EPA, views.EPA]
	store EPAStore
}

func NewCurriculum(store EPAStore, opts listquery.Options[views.EPA]) *Curriculum {
	if opts.Name == "" {
		opts.Name = "curriculum.epas"
	}
	if opts.SortKey == "" {
		opts.SortKey = "code"
	}
	return &Curriculum{
		EPAs:  listquery.New(store.List, views.NewEPA, opts),
		store: store,
	}
}

// SaveEPA creates e when it has no ID and replaces it otherwise. Missing
// required fields are reported without a request; server validation errors
// come back as *FormError.
func (c *Curriculum) SaveEPA(ctx context.Context, e models.EPA) (models.EPA, error) {
	missing := map[string]string{}
	if strings.TrimSpace(e.Code) == "" {
		missing["code"] = requiredField
	}
	if strings.TrimSpace(e.Title) == "" {
		missing["title"] = requiredField
	}
	if e.Program == "" {
		missing["program"] = requiredField
	}
	if len(missing) > 0 {
		return models.EPA{}, &FormError{Message: "Please check the highlighted fields.", Fields: missing, Err: client.ErrValidation}
	}

	var (
		saved models.EPA
		err   error
	)
	if e.ID == "" {
		saved, err = c.store.Create(ctx, e)
	} else {
		saved, err = c.store.Update(ctx, e.ID, e)
	}
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && errors.Is(err, client.ErrValidation) {
			return models.EPA{}, &FormError{Message: client.Message(err), Fields: apiErr.FieldErrors(), Err: err}
		}
		return models.EPA{}, fmt.Errorf("save epa: %w", err)
	}

	c.EPAs.Refetch()
	return saved, nil
}

func (c *Curriculum) DeleteEPA(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete epa %s: %w", id, err)
	}
	c.EPAs.Refetch()
	return nil
}
