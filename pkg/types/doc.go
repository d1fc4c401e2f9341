// Package types provides shared type definitions for routedex.
//
// This package defines the domain types used across the embedding pipeline:
// route metadata documents, their UI element descriptors, and the ordered-set
// container used when decoding list fields.
//
// # Core Types
//
// RouteDoc represents one metadata document describing a logical route of an
// application. Documents are produced externally (one JSON file per route) and
// are read-only to the pipeline:
//
//	doc := &types.RouteDoc{
//	    Route:       "/home",
//	    Description: "Landing page",
//	    Elements:    []types.UIElement{{ID: "login-btn", Description: "Login button"}},
//	}
//
// # JSON Compatibility
//
// Metadata files exist in two generations: newer files use camelCase keys
// (apiCalls, userActions) while older files use snake_case (api_calls,
// user_actions). RouteDoc decodes both spellings and merges them, preserving
// first-insertion order and dropping duplicates.
//
// # Validation
//
// Every document must carry a non-empty route identifier:
//
//	if err := doc.Validate(); err != nil {
//	    // per-item failure, never fatal for the batch
//	}
package types
