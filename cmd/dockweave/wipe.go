package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/dockweave"
)

var wipeCmd = &cobra.Command{
	Use:   "wipe [PATH]",
	Short: "Remove a composed Dockerfile and the credentials inside it",
	Long: `Overwrites the artifact's bytes and deletes the file. Wiping an absent
artifact is not an error. Defaults to ./Dockerfile.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := dockweave.DefaultArtifact
		if len(args) > 0 {
			path = args[0]
		}
		if err := runWipe(path); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(wipeCmd)
}

func runWipe(path string) error {
	result, err := dockweave.Wipe(path, nil)
	if err != nil {
		return err
	}
	if result.AlreadyAbsent {
		fmt.Printf("%s already absent, nothing to wipe\n", path)
		return nil
	}
	if !result.Overwritten {
		fmt.Fprintf(os.Stderr, "note: %s was removed but its bytes could not be overwritten first\n", path)
	}
	fmt.Printf("Wiped %s\n", path)
	return nil
}
