package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/dockweave/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dockweave",
	Short: "Dockweave composes Dockerfiles from reusable specifications",
	Long: `Dockweave locates named Dockerfile specifications along a search path
(DOCKWEAVE_PATH, the working directory, then the bundled defaults),
merges them into a single Dockerfile, and wipes the result after use so
no credential material is left behind.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func createLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}
