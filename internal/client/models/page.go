package models

import (
	"bytes"
	"encoding/json"
)

// Page is one page of a list endpoint. The backend answers list calls either
// with a paginated object ({count, next, previous, results}), with a bare
// {results, count} object from custom actions, or with a plain JSON array;
// Page decodes all three.
type Page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

func (p *Page[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*p = Page[T]{Count: len(items), Results: items}
		return nil
	}

	var raw struct {
		Count    *int    `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}

	*p = Page[T]{Results: raw.Results, Count: len(raw.Results)}
	if raw.Count != nil {
		p.Count = *raw.Count
	}
	if raw.Next != nil {
		p.Next = *raw.Next
	}
	if raw.Previous != nil {
		p.Previous = *raw.Previous
	}
	return nil
}
