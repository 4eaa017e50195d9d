// Package dto contains the JSON bodies of the HTTP API.
package dto

import (
	"sieve/internal/domain/preview"
	"sieve/internal/metadata"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ListResponse wraps list results.
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// NewListResponse wraps items.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, TotalCount: len(items)}
}

// --- Resources ---

// ResourceSummary is the short form of a resource used in listings.
type ResourceSummary struct {
	Name     string   `json:"name"`
	Label    string   `json:"label,omitempty"`
	Table    string   `json:"table"`
	Fields   int      `json:"fields"`
	Sortable []string `json:"sortable"`
}

// FromResource creates ResourceSummary from a resource definition.
func FromResource(def metadata.ResourceDef) ResourceSummary {
	sortable := []string{}
	for _, f := range def.Fields {
		if f.Sortable {
			sortable = append(sortable, f.Name)
		}
	}
	return ResourceSummary{
		Name:     def.Name,
		Label:    def.Label,
		Table:    def.Table,
		Fields:   len(def.Fields),
		Sortable: sortable,
	}
}

// FromResources maps a list of definitions.
func FromResources(defs []metadata.ResourceDef) []ResourceSummary {
	out := make([]ResourceSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, FromResource(def))
	}
	return out
}

// --- Preview ---

// PreviewResponse is a rendered statement together with the query string
// it was rendered from.
type PreviewResponse struct {
	*preview.Result
	Query string `json:"query"`
}
