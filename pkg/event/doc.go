/*
Package event defines the derived-event model published in the
whirlpool-event jsonl artifacts.

Events form a closed tagged union (see Event); every payload field uses a
stable short JSON key, u64/u128 values serialize as decimal strings, and
prices serialize as decimal strings whose scale is derived from the token
pair's decimals. Each payload carries an "o" origin tag naming the
instruction that produced it.
*/
package event
