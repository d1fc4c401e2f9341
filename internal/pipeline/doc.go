// Package pipeline drives route metadata documents through the incremental
// embedding flow: fingerprint → change check → format → embed → record.
//
// Each document moves through a per-item state machine:
//
//	Pending → Hashed → Skipped                       (fingerprint unchanged)
//	Pending → Hashed → Formatted → Embedded → Recorded
//	any step failing  → Failed                       (batch continues)
//
// One item's failure never aborts the batch: failures are collected in the
// run's Result and reported at the end. Both persisted indices are saved at
// the end of every run, success or partial failure alike.
//
// # Concurrency
//
// The default is sequential processing; the remote embedding service is the
// bottleneck, so parallelism is a throughput option, not a requirement. With
// Concurrency > 1 a bounded worker pool processes items; a single mutex
// serializes updates to the shared indices and the result accumulator, and
// retry backoff sleeps block only the worker they run on.
//
// # Cancellation
//
// A run can be canceled between items. Items completed before cancellation
// are still persisted; items never started are simply absent from this run's
// counts and will be picked up (or skipped as unchanged) next run.
package pipeline
