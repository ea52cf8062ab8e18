package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/accounts"
	"github.com/everlastingsong/sedimentology/pkg/checkpoint"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/txreader"

	_ "github.com/go-sql-driver/mysql"
)

var replayerCmd = &cobra.Command{
	Use:   "replayer",
	Short: "Replay slots through the engine and checkpoint daily state",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := sourceDatabase(cmd)
		if err != nil {
			return err
		}
		db, err := openDB(source)
		if err != nil {
			return err
		}
		defer db.Close()

		sandboxPath, _ := cmd.Flags().GetString("program-sandbox")
		dataDir, _ := cmd.Flags().GetString("data-dir")

		latestReplayedDate, err := checkpoint.FetchLatestReplayedDate(db)
		if err != nil {
			return err
		}
		log.Logger.Info().Uint32("latest_replayed_date", latestReplayedDate).Msg("resuming from checkpoint")

		var store accounts.Store
		if dataDir != "" {
			store, err = accounts.NewBoltStore(dataDir)
			if err != nil {
				return err
			}
		} else {
			store = accounts.NewMemoryStore()
		}
		defer store.Close()

		state, err := checkpoint.FetchState(db, latestReplayedDate, store)
		if err != nil {
			return err
		}
		log.Logger.Info().
			Uint64("slot", state.Slot.Slot).
			Uint64("block_height", state.Slot.BlockHeight).
			Int64("block_time", state.Slot.BlockTime).
			Int("program_data", len(state.ProgramData)).
			Msg("state loaded")

		program, err := replay.NewSandboxProgram(sandboxPath, state.ProgramData)
		if err != nil {
			return err
		}
		defer program.Close()

		engine := replay.NewEngine(state.Slot, state.ProgramData, store, program)
		driver := replay.NewDriver(db, txreader.New(db), engine, state.Slot.Slot)

		ctx, cancel := runContext(cmd)
		defer cancel()

		if err := driver.Run(ctx); err != nil {
			return fmt.Errorf("replayer failed: %w", err)
		}
		return nil
	},
}

func init() {
	replayerCmd.Flags().String("program-sandbox", "sedimentology-sandbox", "Path of the program sandbox helper binary")
	replayerCmd.Flags().String("data-dir", "", "Directory for the on-disk account store (empty = in-memory)")
}
