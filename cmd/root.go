/*
PGSVC - PostgreSQL service launcher
Copyright (c) 2024 Alessandro Gallo. All rights reserved.

Licensed under the Business Source License 1.1.
See LICENSE file for full terms.
*/

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"pgsvc/internal/config"
	"pgsvc/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version string
	commit  string
	date    string
)

var (
	serviceFileFlag string
	serviceName     string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "pgsvc [servicefile]",
	Short: "Pick a PostgreSQL service and connect to it with psql",
	Long: `pgsvc lists the services defined in a pg_service.conf file, lets you pick one
from a menu and starts psql connected to it. With a single service the menu is skipped.

A hostaddr starting with '!' names a nameserver: the service's host is looked up
there and the first answer is passed to psql as hostaddr.

The service file is taken from the argument, --file, the service_file setting,
$PGSERVICEFILE, ./pg_service.conf, ~/.pg_service.conf or /etc/pg_service.conf.`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
	RunE: runConnect,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
}

func setupLogging() {
	level := logger.ParseLevel(config.LogLevel())
	if verbose {
		level = slog.LevelDebug
	}
	logger.InitLogger(level, config.LogFile())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serviceFileFlag, "file", "f", "", "Service file to read instead of searching for pg_service.conf")
	rootCmd.PersistentFlags().StringVarP(&serviceName, "service", "s", "", "Service to use without showing the menu")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the psql command instead of running it")
	rootCmd.Flags().String("psql", "", "psql binary to run")
	_ = viper.BindPFlag(config.KeyPsql, rootCmd.Flags().Lookup("psql"))

	_ = rootCmd.RegisterFlagCompletionFunc("service", completeServices)
}
