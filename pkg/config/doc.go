/*
Package config resolves database connection parameters for the workers.

Parameters come from command line flags, optionally overlaid on a YAML config
file (--config). The distributor's destination endpoint additionally supports
mutual TLS with DER-encoded client credentials; connection-level compression
is never enabled because mirrored rows are already zstd-compressed.
*/
package config
