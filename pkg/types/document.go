package types

import "encoding/json"

// UIElement describes one interactive element on a route.
type UIElement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// RouteDoc represents one route metadata document.
//
// The route string is the unique key for the document and for every derived
// artifact (fingerprint record, embedding record). All other fields are
// optional free-form context that feeds the embedding text.
type RouteDoc struct {
	// Identification
	Route string

	// Content
	Description  string
	Elements     []UIElement
	APICalls     []string
	UserActions  []string
	Dependencies []string
}

// routeDocJSON mirrors the on-disk document shape. The list fields appear
// under two key spellings depending on which generation of the scanner
// produced the file.
type routeDocJSON struct {
	Route            string      `json:"route"`
	Description      string      `json:"description"`
	Elements         []UIElement `json:"elements"`
	APICalls         []string    `json:"apiCalls"`
	APICallsSnake    []string    `json:"api_calls"`
	UserActions      []string    `json:"userActions"`
	UserActionsSnake []string    `json:"user_actions"`
	Dependencies     []string    `json:"dependencies"`
}

// UnmarshalJSON decodes a metadata document, accepting both camelCase and
// snake_case spellings of the list keys. When both are present the values are
// merged with ordered-set semantics: first-insertion order, duplicates dropped.
func (d *RouteDoc) UnmarshalJSON(data []byte) error {
	var raw routeDocJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Route = raw.Route
	d.Description = raw.Description
	d.Elements = raw.Elements
	d.APICalls = mergeOrdered(raw.APICalls, raw.APICallsSnake)
	d.UserActions = mergeOrdered(raw.UserActions, raw.UserActionsSnake)
	d.Dependencies = mergeOrdered(raw.Dependencies, nil)
	return nil
}

// MarshalJSON encodes the document using only the camelCase key spelling.
// The snake_case keys accepted on input are never written back out.
func (d RouteDoc) MarshalJSON() ([]byte, error) {
	type routeDocOut struct {
		Route        string      `json:"route"`
		Description  string      `json:"description,omitempty"`
		Elements     []UIElement `json:"elements,omitempty"`
		APICalls     []string    `json:"apiCalls,omitempty"`
		UserActions  []string    `json:"userActions,omitempty"`
		Dependencies []string    `json:"dependencies,omitempty"`
	}
	return json.Marshal(routeDocOut{
		Route:        d.Route,
		Description:  d.Description,
		Elements:     d.Elements,
		APICalls:     d.APICalls,
		UserActions:  d.UserActions,
		Dependencies: d.Dependencies,
	})
}

// Validate checks that the document carries the required route identifier.
func (d *RouteDoc) Validate() error {
	if d.Route == "" {
		return ErrMissingRoute
	}
	return nil
}

func mergeOrdered(primary, secondary []string) []string {
	if len(primary) == 0 && len(secondary) == 0 {
		return nil
	}
	set := NewOrderedSet(primary...)
	set.AddAll(secondary)
	return set.Values()
}
