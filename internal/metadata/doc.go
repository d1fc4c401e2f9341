// Package metadata reads route metadata documents and flattens them into
// embedding-ready text.
//
// A metadata directory contains one JSON document per route. List enumerates
// the documents, Load decodes a single document while retaining its raw bytes
// for fingerprinting, and Format produces the deterministic plain-text block
// sent to the embedding service:
//
//	ROUTE: /home
//
//	DESCRIPTION:
//	Landing page
//
//	UI ELEMENTS:
//	- login-btn: Login button
//
// Sections with no content are omitted. Format is pure: identical documents
// always produce identical text.
package metadata
