package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/config"
	"github.com/everlastingsong/sedimentology/pkg/distribute"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

var distributorCmd = &cobra.Command{
	Use:   "distributor",
	Short: "Mirror recent slots into the destination database",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := sourceDatabase(cmd)
		if err != nil {
			return err
		}

		dest := config.Defaults()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			file, err := config.Load(path)
			if err != nil {
				return err
			}
			if file.Destination.Host != "" {
				dest = file.Destination
			}
		}
		destHost, _ := cmd.Flags().GetString("distributor-mariadb-host")
		destPort, _ := cmd.Flags().GetUint16("distributor-mariadb-port")
		destUser, _ := cmd.Flags().GetString("distributor-mariadb-user")
		destPassword, _ := cmd.Flags().GetString("distributor-mariadb-password")
		destDatabase, _ := cmd.Flags().GetString("distributor-mariadb-database")
		dest = dest.Merge(destHost, destPort, destUser, destPassword, destDatabase)

		clientCert, _ := cmd.Flags().GetString("tls-client-cert")
		clientKey, _ := cmd.Flags().GetString("tls-client-key")
		rootCA, _ := cmd.Flags().GetString("tls-root-ca")
		if clientCert != "" {
			dest.TLS = &config.TLSConfig{ClientCert: clientCert, ClientKey: clientKey, RootCA: rootCA}
		}
		if dest.TLS != nil {
			if err := config.RegisterDestTLS(dest.TLS); err != nil {
				return err
			}
		}

		sourceDB, err := openDB(source)
		if err != nil {
			return err
		}
		defer sourceDB.Close()

		destDB, err := openDB(dest)
		if err != nil {
			return err
		}
		defer destDB.Close()

		profile, _ := cmd.Flags().GetString("profile")
		keepBlockHeight, _ := cmd.Flags().GetUint64("keep-block-height")

		worker, err := distribute.NewWorker(sourceDB, destDB, txreader.New(sourceDB), profile, keepBlockHeight)
		if err != nil {
			return err
		}

		ctx, cancel := runContext(cmd)
		defer cancel()

		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("distributor failed: %w", err)
		}
		return nil
	},
}

func init() {
	distributorCmd.Flags().String("profile", "", "Distributor profile selecting the admDistributorState row")
	distributorCmd.Flags().String("distributor-mariadb-host", "", "Destination database host")
	distributorCmd.Flags().Uint16("distributor-mariadb-port", 0, "Destination database port")
	distributorCmd.Flags().String("distributor-mariadb-user", "", "Destination database user")
	distributorCmd.Flags().String("distributor-mariadb-password", "", "Destination database password")
	distributorCmd.Flags().String("distributor-mariadb-database", "", "Destination database name")
	distributorCmd.Flags().String("tls-client-cert", "", "DER-encoded client certificate for the destination")
	distributorCmd.Flags().String("tls-client-key", "", "DER-encoded client key for the destination")
	distributorCmd.Flags().String("tls-root-ca", "", "DER-encoded root CA for the destination")
	// 648000 = 2.5 * 3600 * 24 * 3 (at least 3 days)
	distributorCmd.Flags().Uint64("keep-block-height", distribute.DefaultKeepBlockHeight, "Destination retention window in blocks")
	_ = distributorCmd.MarkFlagRequired("profile")
}
