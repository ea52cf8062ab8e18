/*
Package whirlpool models the decoded instructions of the Whirlpool program as
a closed tagged union.

Each variant carries its typed account keys (Key*), instruction arguments
(Data*), and the token transfers observed during execution (Transfer*).
u64/u128 arguments serialize as decimal strings because payload values can
exceed the 53-bit range of JSON numbers.

FromJSON dispatches a (name, payload) row from the typed instruction views to
its variant. The set is closed: an unknown name is an error, and callers
treat it as fatal.

WritableAccounts lists the accounts a variant may mutate. The replay engine
snapshots exactly those accounts before applying an instruction, and the
event derivation reads the pre-images from that snapshot.
*/
package whirlpool
