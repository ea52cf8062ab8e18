package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/stream"
)

var streamerCmd = &cobra.Command{
	Use:   "streamer",
	Short: "Serve the /state and /stream live endpoints",
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

		port, _ := cmd.Flags().GetUint16("port")
		server := stream.NewServer(db, fmt.Sprintf(":%d", port))

		ctx, cancel := runContext(cmd)
		defer cancel()

		go func() {
			<-ctx.Done()
			_ = server.Close()
		}()

		return server.ListenAndServe()
	},
}

func init() {
	streamerCmd.Flags().Uint16("port", stream.DefaultPort, "Listen port")
}
