package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/archive"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

var exportCmd = &cobra.Command{
	Use:   "export <yyyymmdd>",
	Short: "Export one day's artifacts to the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date64, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid yyyymmdd: %q", args[0])
		}
		date := uint32(date64)

		source, err := sourceDatabase(cmd)
		if err != nil {
			return err
		}
		db, err := openDB(source)
		if err != nil {
			return err
		}
		defer db.Close()

		exportToken, _ := cmd.Flags().GetBool("token")
		exportState, _ := cmd.Flags().GetBool("state")
		exportTransaction, _ := cmd.Flags().GetBool("transaction")

		if exportToken {
			path := fmt.Sprintf("whirlpool-token-%d.json.gz", date)
			log.Logger.Info().Str("path", path).Msg("exporting token")
			if err := archive.ExportToken(db, date, path); err != nil {
				return err
			}
		}
		if exportState {
			path := fmt.Sprintf("whirlpool-state-%d.json.gz", date)
			log.Logger.Info().Str("path", path).Msg("exporting state")
			if err := archive.ExportState(db, date, path); err != nil {
				return err
			}
		}
		if exportTransaction {
			path := fmt.Sprintf("whirlpool-transaction-%d.jsonl.gz", date)
			log.Logger.Info().Str("path", path).Msg("exporting transaction")
			if err := archive.ExportTransaction(db, txreader.New(db), date, path); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("token", false, "Export the token artifact")
	exportCmd.Flags().Bool("state", false, "Export the state artifact")
	exportCmd.Flags().Bool("transaction", false, "Export the transaction artifact")
}
