package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/datetime"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
	"github.com/everlastingsong/sedimentology/pkg/schema"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
	"github.com/everlastingsong/sedimentology/pkg/whirlpool"
)

const (
	// FetchChunkSize is the number of slot infos fetched per iteration.
	FetchChunkSize uint16 = 1024

	idleSleep = 10 * time.Second
)

// Driver runs the replay loop: it feeds slots into the engine in order and
// persists a daily checkpoint whenever the UTC day of the block time is
// about to change.
type Driver struct {
	db          *sqlx.DB
	reader      *txreader.Reader
	engine      *Engine
	initialSlot uint64
	logger      zerolog.Logger
}

// NewDriver builds a driver around an engine bootstrapped from a checkpoint.
// initialSlot is the checkpoint's slot; no checkpoint is written until the
// engine has advanced past it.
func NewDriver(db *sqlx.DB, reader *txreader.Reader, engine *Engine, initialSlot uint64) *Driver {
	return &Driver{
		db:          db,
		reader:      reader,
		engine:      engine,
		initialSlot: initialSlot,
		logger:      log.WithComponent("replayer"),
	}
}

// Run replays slots until ctx is cancelled or a fatal inconsistency is hit.
// The shutdown signal is observed between slots; the current slot's
// application is never preempted.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			d.logger.Info().Msg("shutting down")
			return nil
		}

		current := d.engine.Slot()
		d.logger.Info().
			Uint64("start_slot", current.Slot).
			Str("block_time", time.Unix(current.BlockTime, 0).UTC().Format("2006/01/02 15:04:05")).
			Msg("fetching next slots")

		nextSlots, err := d.reader.FetchNextSlotInfos(current.Slot, FetchChunkSize)
		if err != nil {
			return err
		}
		isFullFetch := len(nextSlots) == int(FetchChunkSize)

		if nextSlots[0].Slot != current.Slot {
			return fmt.Errorf("slot %d vanished from the source: got %d", current.Slot, nextSlots[0].Slot)
		}
		nextSlots = nextSlots[1:]

		if len(nextSlots) == 0 {
			d.logger.Info().Msg("no more slots to replay now")
		} else {
			d.logger.Info().Int("slots", len(nextSlots)).Msg("replaying slots")
		}

		for _, slot := range nextSlots {
			if ctx.Err() != nil {
				d.logger.Info().Msg("shutting down")
				return nil
			}
			if err := d.replaySlot(slot); err != nil {
				return err
			}
		}

		if !isFullFetch {
			d.logger.Info().Dur("sleep", idleSleep).Msg("sleeping")
			select {
			case <-ctx.Done():
			case <-time.After(idleSleep):
			}
		}
	}
}

func (d *Driver) replaySlot(slot schema.Slot) error {
	current := d.engine.Slot()

	if slot.BlockHeight != current.BlockHeight+1 {
		return fmt.Errorf("block height is not sequential: %d after %d at slot %d",
			slot.BlockHeight, current.BlockHeight, slot.Slot)
	}

	// Save a checkpoint before crossing a UTC day boundary. The bootstrap
	// slot's day is already checkpointed, so skip until we have advanced.
	currentDay := datetime.TruncateToDay(current.BlockTime)
	nextDay := datetime.TruncateToDay(slot.BlockTime)
	if currentDay != nextDay && current.Slot > d.initialSlot {
		if !datetime.IsNextDay(currentDay, nextDay) {
			return fmt.Errorf("date gap: %d to %d at slot %d",
				datetime.ToYYYYMMDD(currentDay), datetime.ToYYYYMMDD(nextDay), slot.Slot)
		}

		date := datetime.ToYYYYMMDD(currentDay)
		d.logger.Info().
			Uint32("date", date).
			Uint64("slot", current.Slot).
			Msg("saving checkpoint")

		err := checkpoint.Advance(d.db, date, current.Slot, d.engine.ProgramData(), d.engine.Accounts())
		if err != nil {
			return err
		}
		metrics.CheckpointsSavedTotal.Inc()
		d.logger.Info().Uint32("date", date).Msg("saved checkpoint")
	}

	ixs, err := d.reader.FetchInstructionsInSlot(slot.Slot)
	if err != nil {
		return err
	}

	d.engine.UpdateSlot(slot.Slot, slot.BlockHeight, slot.BlockTime)
	for _, row := range ixs {
		if deploy, ok := row.Ix.(*whirlpool.ProgramDeployInstruction); ok {
			if err := d.engine.UpdateProgramData(deploy.ProgramData); err != nil {
				return err
			}
		} else {
			if _, err := d.engine.ReplayInstruction(row.Ix); err != nil {
				return err
			}
		}
		metrics.InstructionsReplayedTotal.WithLabelValues(row.Name).Inc()
	}

	metrics.SlotsReplayedTotal.Inc()
	metrics.LatestReplayedSlot.Set(float64(slot.Slot))
	return nil
}
