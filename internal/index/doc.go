// Package index persists the pipeline's two durable artifacts: the
// change-detection index and the embedding store.
//
// # Change-Detection Index
//
// hashes.json maps each route to the fingerprint of its metadata document as
// of the last successful embedding, plus a UTC timestamp:
//
//	{
//	  "/home": {"hash": "9f86d0...", "last_updated": "2026-08-29T12:00:00Z"}
//	}
//
// A route whose current fingerprint matches its stored fingerprint is skipped
// on the next run. Records are never deleted automatically; stale routes
// persist until externally pruned.
//
// # Embedding Store
//
// embeddings.json maps each route to its vector and the exact text that was
// embedded:
//
//	{
//	  "/home": {"embedding": [0.12, -0.03], "text": "ROUTE: /home..."}
//	}
//
// # Corruption Policy
//
// An unreadable or corrupt index file is treated as empty state: the load
// logs a warning and starts fresh, and the next save overwrites the corrupt
// file. Loads are never fatal.
//
// Both files are written atomically (temp file + rename), but they remain two
// independent artifacts without a shared transaction. A crash between the two
// saves can leave them out of step; the pipeline narrows the window by saving
// embeddings before hashes, so a route is never marked unchanged without its
// embedding on disk.
package index
