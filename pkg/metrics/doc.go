/*
Package metrics exposes Prometheus metrics for all workers.

Metrics are registered once at package load and served from an optional
HTTP endpoint (--metrics-addr). Counters cover the hot paths: slots replayed,
checkpoints saved, days archived, slots mirrored, bytes shipped, and SSE
events delivered.
*/
package metrics
