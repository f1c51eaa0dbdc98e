package client

import (
	"errors"
	"sort"
	"strings"
)

// Message turns an error from the gateway into the short text a screen shows.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrUnavailable):
		return "Unable to reach the server. Check your connection and try again."
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrForbidden):
		return "You do not have permission to do that."
	case errors.Is(err, ErrNotFound):
		return "The requested item was not found."
	case errors.As(err, &apiErr) && apiErr.Status == 400:
		if d := apiErr.Detail(); d != "" {
			return d
		}
		if fields := apiErr.FieldErrors(); len(fields) > 0 {
			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, k+": "+fields[k])
			}
			return strings.Join(parts, "; ")
		}
		return "Please check the highlighted fields."
	default:
		return "Something went wrong. Please try again."
	}
}
