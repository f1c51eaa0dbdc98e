package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// APIError is returned for every non-2xx response. Body holds the decoded
// JSON body when the server sent JSON, otherwise the raw text.
type APIError struct {
	Method     string
	Path       string
	Status     int
	StatusText string
	Body       any
}

func newAPIError(method, path string, resp *http.Response, raw []byte) *APIError {
	e := &APIError{
		Method:     method,
		Path:       path,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
	}
	var decoded any
	if len(raw) > 0 && json.Unmarshal(raw, &decoded) == nil {
		e.Body = decoded
	} else if len(raw) > 0 {
		e.Body = string(raw)
	}
	return e
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.StatusText)
	if d := e.Detail(); d != "" {
		msg += ": " + d
	}
	return msg
}

// Is lets callers branch with errors.Is on the status class.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Status == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Detail returns the server's top-level message ("detail", "error" or
// "non_field_errors"), or the raw text body.
func (e *APIError) Detail() string {
	switch b := e.Body.(type) {
	case string:
		return strings.TrimSpace(b)
	case map[string]any:
		for _, k := range []string{"detail", "error", "non_field_errors"} {
			if v, ok := b[k]; ok {
				return flatten(v)
			}
		}
	}
	return ""
}

// FieldErrors returns per-field validation messages from a 400 body such as
// {"code": ["EPA code \"EPA1\" is already in use."]}. Nil when the body has
// no field structure.
func (e *APIError) FieldErrors() map[string]string {
	b, ok := e.Body.(map[string]any)
	if !ok || e.Status != http.StatusBadRequest {
		return nil
	}
	out := make(map[string]string, len(b))
	for k, v := range b {
		if k == "detail" || k == "error" {
			continue
		}
		if msg := flatten(v); msg != "" {
			out[k] = msg
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func flatten(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := flatten(t[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, "; ")
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
