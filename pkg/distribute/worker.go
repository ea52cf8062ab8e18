package distribute

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

const (
	// FetchChunkSize covers more than a minute of slots per fetch
	// (~2.5 blocks per second).
	FetchChunkSize uint16 = 192

	idleSleep = 500 * time.Millisecond

	// DefaultKeepBlockHeight is about 3 days of blocks at 2.5 blocks/sec.
	DefaultKeepBlockHeight uint64 = 648000
)

// Worker mirrors each new slot's transaction batch into the destination
// with dual-cursor crash-safe advancement.
type Worker struct {
	source          *sqlx.DB
	dest            *sqlx.DB
	reader          *txreader.Reader
	codec           *codec
	profile         string
	keepBlockHeight uint64
	logger          zerolog.Logger

	cursor schema.Slot
}

// NewWorker builds a distributor worker and performs the startup cursor
// reconciliation.
//
// The destination must never trail the source: the destination commit
// happens first, so a crash between the two commits leaves the destination
// at most one chunk ahead. That state is resolved by fast-forwarding the
// source cursor; anything else is fatal.
func NewWorker(source, dest *sqlx.DB, reader *txreader.Reader, profile string, keepBlockHeight uint64) (*Worker, error) {
	c, err := newCodec()
	if err != nil {
		return nil, err
	}

	w := &Worker{
		source:          source,
		dest:            dest,
		reader:          reader,
		codec:           c,
		profile:         profile,
		keepBlockHeight: keepBlockHeight,
		logger:          log.WithProfile("distributor", profile),
	}

	sourceCursor, err := FetchSourceCursor(source, profile)
	if err != nil {
		return nil, err
	}
	destCursor, err := FetchDestCursor(dest)
	if err != nil {
		return nil, err
	}

	if destCursor.Slot < sourceCursor.Slot {
		return nil, fmt.Errorf("destination cursor %d trails source cursor %d",
			destCursor.Slot, sourceCursor.Slot)
	}
	if destCursor.Slot > sourceCursor.Slot {
		if destCursor.BlockHeight > sourceCursor.BlockHeight+uint64(FetchChunkSize) {
			return nil, fmt.Errorf("destination cursor %d is more than one chunk ahead of source cursor %d",
				destCursor.Slot, sourceCursor.Slot)
		}

		// crash between destination commit and source commit: replay the
		// source-side record and continue from the destination's position
		w.logger.Warn().
			Uint64("source_slot", sourceCursor.Slot).
			Uint64("dest_slot", destCursor.Slot).
			Msg("destination cursor ahead, fast-forwarding source cursor")

		slot, err := reader.FetchSlotInfo(destCursor.Slot)
		if err != nil {
			return nil, err
		}
		if slot.BlockHeight != destCursor.BlockHeight {
			return nil, fmt.Errorf("destination cursor height %d does not match slot %d height %d",
				destCursor.BlockHeight, destCursor.Slot, slot.BlockHeight)
		}
		if err := AdvanceSourceCursor(source, profile, slot); err != nil {
			return nil, err
		}
		w.cursor = slot
		return w, nil
	}

	slot, err := reader.FetchSlotInfo(sourceCursor.Slot)
	if err != nil {
		return nil, err
	}
	if slot.BlockHeight != sourceCursor.BlockHeight {
		return nil, fmt.Errorf("source cursor height %d does not match slot %d height %d",
			sourceCursor.BlockHeight, sourceCursor.Slot, slot.BlockHeight)
	}
	w.cursor = slot
	return w, nil
}

// Cursor returns the current mirroring position.
func (w *Worker) Cursor() schema.Slot {
	return w.cursor
}

// Run mirrors slots until ctx is cancelled or a fatal inconsistency is hit.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			w.logger.Info().Msg("shutting down")
			return nil
		}

		w.logger.Info().
			Uint64("start_slot", w.cursor.Slot).
			Str("block_time", time.Unix(w.cursor.BlockTime, 0).UTC().Format("2006/01/02 15:04:05")).
			Msg("fetching next slots")

		nextSlots, err := w.reader.FetchNextSlotInfos(w.cursor.Slot, FetchChunkSize)
		if err != nil {
			return err
		}
		isFullFetch := len(nextSlots) == int(FetchChunkSize)

		if nextSlots[0].Slot != w.cursor.Slot {
			return fmt.Errorf("slot %d vanished from the source: got %d", w.cursor.Slot, nextSlots[0].Slot)
		}
		nextSlots = nextSlots[1:]

		if len(nextSlots) == 0 {
			w.logger.Info().Msg("no more slots to distribute now")
		} else {
			if err := w.distribute(nextSlots); err != nil {
				return err
			}
		}

		if !isFullFetch {
			select {
			case <-ctx.Done():
			case <-time.After(idleSleep):
			}
		}
	}
}

func (w *Worker) distribute(slots []schema.Slot) error {
	w.logger.Info().Int("slots", len(slots)).Msg("distributing slots")

	records, err := w.reader.FetchTransactions(slots)
	if err != nil {
		return err
	}

	batch := make([]SlotData, len(records))
	for i, record := range records {
		jsonl, err := json.Marshal(record)
		if err != nil {
			return err
		}
		batch[i] = SlotData{
			Slot:  schema.Slot{Slot: record.Slot, BlockHeight: record.BlockHeight, BlockTime: record.BlockTime},
			JSONL: jsonl,
		}
	}

	first := batch[0].Slot
	last := batch[len(batch)-1].Slot
	heightDelta := last.BlockHeight - first.BlockHeight
	if heightDelta != uint64(len(batch))-1 {
		return fmt.Errorf("block heights are not dense: delta %d over %d slots", heightDelta, len(batch))
	}

	raw, compressed, err := AdvanceDestState(w.dest, w.codec, batch, w.keepBlockHeight)
	if err != nil {
		return err
	}

	if err := AdvanceSourceCursor(w.source, w.profile, last); err != nil {
		return err
	}
	w.cursor = last

	metrics.SlotsDistributedTotal.Add(float64(len(batch)))
	metrics.DistributedBytesTotal.WithLabelValues("raw").Add(float64(raw))
	metrics.DistributedBytesTotal.WithLabelValues("compressed").Add(float64(compressed))
	w.logger.Info().
		Uint64("last_slot", last.Slot).
		Str("raw_kb", datetime.WithSeparator(uint64(raw/1024))).
		Str("compressed_kb", datetime.WithSeparator(uint64(compressed/1024))).
		Msg("distributed")
	return nil
}
