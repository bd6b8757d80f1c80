package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/dockweave"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the specifications visible on the search path",
	Long: `Walks the search path in order and prints every specification name with
the directory that wins its lookup (first match shadows later ones).`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(cmd); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command) error {
	cfg, err := dockweave.DefaultConfig()
	if err != nil {
		return err
	}
	eng, err := dockweave.New(cfg, dockweave.WithLogger(createLogger(cmd)))
	if err != nil {
		return err
	}

	infos, err := eng.Store().List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No specifications found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLOCATION")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\n", info.Name, info.Location)
	}
	return w.Flush()
}
