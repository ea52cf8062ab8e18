/*
Package schema defines the data model shared by every worker: slots, packed
transaction ids, the per-slot transaction records serialized into the
whirlpool-transaction jsonl artifacts, and the daily whirlpool-state artifact.

The txid packing is load bearing: txid = slot<<24 | index, so a BETWEEN scan
over txid is a slot-range scan. Any reimplementation of the row tables must
preserve it.
*/
package schema
