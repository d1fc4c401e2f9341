package metadata

import (
	"fmt"
	"strings"

	"github.com/routelab/routedex/pkg/types"
)

// Format flattens a route document into the plain-text block sent to the
// embedding service. The layout is fixed: downstream fingerprints and stored
// text depend on it being stable across runs.
func Format(doc *types.RouteDoc) string {
	var parts []string

	parts = append(parts, "ROUTE: "+doc.Route, "")

	if doc.Description != "" {
		parts = append(parts, "DESCRIPTION:", doc.Description, "")
	}

	if len(doc.Elements) > 0 {
		parts = append(parts, "UI ELEMENTS:")
		for _, el := range doc.Elements {
			parts = append(parts, fmt.Sprintf("- %s: %s", el.ID, el.Description))
		}
		parts = append(parts, "")
	}

	parts = appendSection(parts, "API CALLS:", doc.APICalls)
	parts = appendSection(parts, "USER ACTIONS:", doc.UserActions)
	parts = appendSection(parts, "DEPENDENCIES:", doc.Dependencies)

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func appendSection(parts []string, header string, items []string) []string {
	if len(items) == 0 {
		return parts
	}
	parts = append(parts, header)
	for _, item := range items {
		parts = append(parts, "- "+item)
	}
	return append(parts, "")
}
