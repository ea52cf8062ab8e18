/*
Package stream serves the live endpoints over the normalized row tables.

GET /state returns the reconstructed whirlpool-state gzip blob of a
checkpoint date (the latest one when yyyymmdd is omitted).

GET /stream opens a Server-Sent Events stream of per-slot jsonl batches
starting at the queried slot (the indexer checkpoint when omitted). The
handler alternates between a bounded fetch loop (at most 5 seconds of
500ms-spaced retries) and event emission; when no slot arrives in time an
empty heartbeat event is emitted instead. The limit parameter counts both.
One goroutine serves one connection; parallel readers pay independent
database costs through the shared pool.
*/
package stream
