package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/dockweave"
	"github.com/aretw0/dockweave/internal/presentation/tui"
)

var buildCmd = &cobra.Command{
	Use:   "build NAME",
	Short: "Compose a Dockerfile from a named specification",
	Long: `Resolves the named specification along the search path, merges it with
its includes, substitutes placeholders (prompting for SECRET_ keys), and
writes the result as a Dockerfile.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuild(cmd, args[0]); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", dockweave.DefaultArtifact, "Artifact path to write")
	buildCmd.Flags().StringArray("set", nil, "Plain placeholder value KEY=VALUE (repeatable, highest precedence)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, name string) error {
	cfg, err := dockweave.DefaultConfig()
	if err != nil {
		return err
	}
	cfg.Output, _ = cmd.Flags().GetString("output")

	pairs, _ := cmd.Flags().GetStringArray("set")
	if len(pairs) > 0 {
		cfg.Values = make(map[string]string, len(pairs))
		for _, pair := range pairs {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --set %q: expected KEY=VALUE", pair)
			}
			cfg.Values[key] = value
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner()
	}

	eng, err := dockweave.New(cfg, dockweave.WithLogger(createLogger(cmd)))
	if err != nil {
		return err
	}

	res, err := eng.Build(cmd.Context(), name)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s from specification %q\n", res.Path, res.Spec)
	if res.Manifest.HasSecrets() {
		p := termenv.ColorProfile()
		warning := termenv.String(
			fmt.Sprintf("WARNING: %s contains credentials (%s). Run 'dockweave wipe' after 'docker build'.",
				res.Path, strings.Join(res.Manifest.Keys(), ", "))).
			Foreground(p.Color("#f87171")).Bold()
		fmt.Fprintln(os.Stderr, warning)
	}
	return nil
}
