package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/everlastingsong/sedimentology/pkg/config"
	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sedimentology",
	Short: "Sedimentology - Whirlpool transaction pipeline workers",
	Long: `Sedimentology turns an indexed store of Whirlpool transactions into
durable daily archives, a rolling mirror of recent slots, and a live
server-sent-event feed.

Each subcommand runs one worker: replayer, archiver, distributor, streamer.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Sedimentology version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().String("config", "", "YAML config file resolving database endpoints")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Prometheus metrics address (empty = disabled)")

	rootCmd.PersistentFlags().String("mariadb-host", "", "Source database host")
	rootCmd.PersistentFlags().Uint16("mariadb-port", 0, "Source database port")
	rootCmd.PersistentFlags().String("mariadb-user", "", "Source database user")
	rootCmd.PersistentFlags().String("mariadb-password", "", "Source database password")
	rootCmd.PersistentFlags().String("mariadb-database", "", "Source database name")

	cobra.OnInitialize(initLogging)

	rootCmd.AddCommand(replayerCmd)
	rootCmd.AddCommand(archiverCmd)
	rootCmd.AddCommand(distributorCmd)
	rootCmd.AddCommand(streamerCmd)
	rootCmd.AddCommand(exportCmd)
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")

	log.Init(log.Config{
		Level:      log.Level(logLevel),
		JSONOutput: logJSON,
	})
}

// sourceDatabase resolves the source endpoint from config file and flags.
func sourceDatabase(cmd *cobra.Command) (config.Database, error) {
	db := config.Defaults()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		file, err := config.Load(path)
		if err != nil {
			return config.Database{}, err
		}
		if file.Source.Host != "" {
			db = file.Source
		}
	}

	host, _ := cmd.Flags().GetString("mariadb-host")
	port, _ := cmd.Flags().GetUint16("mariadb-port")
	user, _ := cmd.Flags().GetString("mariadb-user")
	password, _ := cmd.Flags().GetString("mariadb-password")
	database, _ := cmd.Flags().GetString("mariadb-database")
	return db.Merge(host, port, user, password, database), nil
}

// openDB connects and verifies the connection.
func openDB(d config.Database) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", d.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%d: %w", d.Host, d.Port, err)
	}
	return db, nil
}

// runContext returns a context cancelled by SIGINT/SIGTERM, and starts the
// metrics server when requested.
func runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		metrics.StartMetricsServer(addr)
	}
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
