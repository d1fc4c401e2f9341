package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routelab/routedex/pkg/types"
)

func TestFormatFullDocument(t *testing.T) {
	doc := &types.RouteDoc{
		Route:       "/home",
		Description: "Landing page",
		Elements: []types.UIElement{
			{ID: "login-btn", Description: "Login button"},
			{ID: "signup-btn", Description: "Signup button"},
		},
		APICalls:     []string{"GET /api/session"},
		UserActions:  []string{"login", "signup"},
		Dependencies: []string{"auth"},
	}

	want := strings.Join([]string{
		"ROUTE: /home",
		"",
		"DESCRIPTION:",
		"Landing page",
		"",
		"UI ELEMENTS:",
		"- login-btn: Login button",
		"- signup-btn: Signup button",
		"",
		"API CALLS:",
		"- GET /api/session",
		"",
		"USER ACTIONS:",
		"- login",
		"- signup",
		"",
		"DEPENDENCIES:",
		"- auth",
	}, "\n")

	assert.Equal(t, want, Format(doc))
}

func TestFormatOmitsEmptySections(t *testing.T) {
	doc := &types.RouteDoc{Route: "/bare"}

	got := Format(doc)

	assert.Equal(t, "ROUTE: /bare", got)
	assert.NotContains(t, got, "DESCRIPTION:")
	assert.NotContains(t, got, "UI ELEMENTS:")
	assert.NotContains(t, got, "API CALLS:")
}

func TestFormatDeterministic(t *testing.T) {
	doc := &types.RouteDoc{
		Route:       "/orders",
		Description: "Order history",
		APICalls:    []string{"GET /api/orders", "GET /api/orders/{id}"},
	}

	first := Format(doc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Format(doc))
	}
}

func TestFormatNoTrailingWhitespace(t *testing.T) {
	doc := &types.RouteDoc{
		Route:       "/home",
		UserActions: []string{"login"},
	}

	got := Format(doc)
	assert.Equal(t, strings.TrimSpace(got), got)
}
