package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/archive"
	"github.com/everlastingsong/sedimentology/pkg/replay"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

var archiverCmd = &cobra.Command{
	Use:   "archiver",
	Short: "Export completed days to object storage with verification",
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

		profile, _ := cmd.Flags().GetString("profile")
		remotePath, _ := cmd.Flags().GetString("rclone-remote-path")
		workDir, _ := cmd.Flags().GetString("working-directory")
		sandboxPath, _ := cmd.Flags().GetString("program-sandbox")

		program, err := replay.NewSandboxProgram(sandboxPath, nil)
		if err != nil {
			return err
		}
		defer program.Close()

		worker := archive.NewWorker(
			db,
			txreader.New(db),
			archive.NewRcloneTransport(),
			&archive.ConvertDeriver{Program: program},
			profile, remotePath, workDir)

		ctx, cancel := runContext(cmd)
		defer cancel()

		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("archiver failed: %w", err)
		}
		return nil
	},
}

func init() {
	archiverCmd.Flags().String("profile", "", "Archiver profile selecting the admArchiverState row")
	archiverCmd.Flags().String("rclone-remote-path", "", "Remote artifact root, e.g. r2:sedimentology/alpha")
	archiverCmd.Flags().String("working-directory", "", "Directory for tmp and verify files")
	archiverCmd.Flags().String("program-sandbox", "sedimentology-sandbox", "Path of the program sandbox helper binary")
	_ = archiverCmd.MarkFlagRequired("profile")
	_ = archiverCmd.MarkFlagRequired("rclone-remote-path")
	_ = archiverCmd.MarkFlagRequired("working-directory")
}
