/*
Package distribute mirrors recent slots into a second database behind a
sliding retention window.

Each batch is written to the destination in a single transaction: the
zstd-compressed jsonl rows (verified by decode before insert), the deletion
of rows older than the retention window, and the destination cursor update.
The source cursor is updated afterwards in its own transaction. The commit
order is the crash-recovery mechanism: a crash between the two commits
leaves the destination cursor ahead of the source's, which startup detects
and resolves by fast-forwarding the source; a crash during the destination
transaction rolls it back entirely. No slot is mirrored twice (the
destination's primary key would reject it) and none is lost.
*/
package distribute
