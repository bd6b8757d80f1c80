package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/dockweave"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dockweave",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dockweave version %s\n", dockweave.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
