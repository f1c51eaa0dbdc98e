package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shiftnotes/shiftnotes-cli/internal/client/models"
)

// Resource is a REST collection rooted at path (with trailing slash), e.g.
// "/epas/". Item URLs are path + id + "/".
type Resource[T any] struct {
	c    *HTTPClient
	path string
}

func newResource[T any](c *HTTPClient, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + url.PathEscape(id) + "/"
}

func (r *Resource[T]) List(ctx context.Context, query url.Values) (models.Page[T], error) {
	var page models.Page[T]
	err := r.c.Do(ctx, http.MethodGet, r.path, query, nil, &page)
	return page, err
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var v T
	err := r.c.Do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &v)
	return v, err
}

// Create posts in and returns the record the server stored.
func (r *Resource[T]) Create(ctx context.Context, in any) (T, error) {
	var v T
	err := r.c.Do(ctx, http.MethodPost, r.path, nil, in, &v)
	return v, err
}

// Update replaces the whole record (PUT); the client never patches.
func (r *Resource[T]) Update(ctx context.Context, id string, in any) (T, error) {
	var v T
	err := r.c.Do(ctx, http.MethodPut, r.itemPath(id), nil, in, &v)
	return v, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}
