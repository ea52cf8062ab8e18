/*
Package archive exports completed days into durable object-storage
artifacts.

For each day past the archiver cursor the worker exports the token, state,
and transaction artifacts, uploads them, downloads them back and verifies
the SHA-256 round trip, derives the event and OHLCV artifacts from the
previous day's state, uploads and verifies those too, and only then commits
latestArchivedDate. A crash at any point leaves the day re-attemptable: tmp
files may linger and remote copies are simply overwritten by the retry, and
because every export is deterministic the retry produces byte-identical
artifacts.
*/
package archive
