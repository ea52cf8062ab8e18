/*
Package replay implements the single-writer replay engine and its driver
loop.

The engine holds (slot cursor, program binary, account store) and applies
decoded instructions in strict slot order. For each instruction it resolves
the variant's writable account set, captures their pre-images into a
WritableAccountSnapshot, hands the snapshot to the Program executor, and
commits the resulting account writes. A write outside the declared writable
set is a fatal bug.

The driver owns the loop around the engine: chunked slot fetches, the
block-height monotonicity assertion, and the daily checkpoint rule: when
the UTC day of the next slot's block time differs from the current one, the
current state is checkpointed before the next slot is applied, and the two
days must be consecutive.

Every inconsistency (non-monotone height, date gap, decode failure,
instruction application failure) aborts the run; there is no skip or repair
path.
*/
package replay
