/*
Package txreader deterministically reassembles per-slot transaction records
from the normalized row tables.

For a contiguous slot range the reader issues three txid range scans
(transactions, balances, instructions), sorts each result client-side, and
merges leading rows per slot into one WhirlpoolTransaction record. The
instruction scan fans in over the per-variant typed views; the server emits
no ORDER BY because the unioned plan proved too slow with one, so ordering
is entirely a client responsibility:

  - transactions by txid (= by slot, then index)
  - balances by (txid, account)
  - instructions by (txid, order)

The reader is shared by the replayer (decoded instructions per slot), the
archiver (daily jsonl export), the distributor, and the live stream server.
*/
package txreader
