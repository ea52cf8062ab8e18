/*
Package accounts provides the account data store used by the replay engine:
a pubkey -> data mapping with deterministic lexicographic traversal.

Two backings implement the Store interface:

  - MemoryStore: a plain map, sorted at traversal time. Fastest, bounded by
    process memory.
  - BoltStore: a BoltDB file for memory-bounded operation on large account
    sets. BoltDB's native key order is already the traversal order.

Traversal order determinism matters: daily checkpoints and the state
artifacts serialize accounts in ascending pubkey order, and two runs over
identical inputs must produce byte-identical compressed blobs.
*/
package accounts
