package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/dockweave"
	"github.com/aretw0/dockweave/internal/presentation/tui"
	"github.com/aretw0/dockweave/pkg/domain"
)

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Describe a specification",
	Long:  `Renders the specification's description and prints its includes and placeholders.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runShow(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, name string) error {
	cfg, err := dockweave.DefaultConfig()
	if err != nil {
		return err
	}
	eng, err := dockweave.New(cfg, dockweave.WithLogger(createLogger(cmd)))
	if err != nil {
		return err
	}

	spec, err := eng.Store().Find(name)
	if err != nil {
		return err
	}

	fmt.Printf("%s (from %s)\n", spec.Name, spec.Location)
	if spec.Description != "" {
		render := tui.NewRenderer()
		if out, err := render(spec.Description); err == nil {
			fmt.Print(out)
		} else {
			fmt.Println(spec.Description)
		}
	}
	if len(spec.Includes) > 0 {
		fmt.Printf("Includes: %s\n", strings.Join(spec.Includes, ", "))
	}

	var plain, secret []string
	for _, key := range spec.Placeholders() {
		if domain.IsSecret(key) {
			secret = append(secret, key)
		} else {
			plain = append(plain, key)
		}
	}
	if len(plain) > 0 {
		fmt.Printf("Placeholders: %s\n", strings.Join(plain, ", "))
	}
	if len(secret) > 0 {
		fmt.Printf("Secret placeholders (prompted at build): %s\n", strings.Join(secret, ", "))
	}
	return nil
}
