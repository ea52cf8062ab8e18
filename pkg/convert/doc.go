/*
Package convert derives the event and OHLCV artifacts from a day's archive
inputs.

ProcessEvent is a pure function (previous-state, token, transaction) ->
event: it loads the previous day's account set into a fresh store, replays
the day's transactions through the replay engine, and converts each
instruction into events with access to both the pre-image snapshot and the
post-state store. ProcessOHLCV folds the Traded events into daily and
minutely candles per pool.

Both outputs are deterministic for identical inputs; the archiver relies on
that to verify re-runs by hash.
*/
package convert
