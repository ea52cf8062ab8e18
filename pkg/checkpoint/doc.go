/*
Package checkpoint persists and restores the replay engine's daily state.

A checkpoint is (date, slot, program, accounts) where the program binary is
stored as gzip(base64(bytes)) and the account set as a gzip-compressed
headerless CSV of (pubkey, base64(data)) rows in ascending pubkey order.
Both encodings are deterministic: replaying identical inputs must reproduce
byte-identical compressed blobs, which is what makes archive re-runs verify
by hash.

Advance inserts the blob row and moves latestReplayedDate inside one
database transaction.
*/
package checkpoint
