// Package cli defines Cobra command definitions for the memepicker CLI.
// This file contains the root command, shared flags and session wiring.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jumpinjune/memepicker/internal/catalog"
	"github.com/jumpinjune/memepicker/internal/config"
	"github.com/jumpinjune/memepicker/internal/log"
	"github.com/jumpinjune/memepicker/internal/picker"
	"github.com/jumpinjune/memepicker/internal/session"
	"github.com/jumpinjune/memepicker/internal/tui"
	"github.com/jumpinjune/memepicker/internal/tui/app"
)

var (
	catalogFlag string
	seedFlag    uint64
	logFlag     bool
	version     = "dev" // set via ldflags at build time
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memepicker",
		Short: "Pick a meme that matches your mood",
		Long: `Jumpin' June's Meme Picker.
Choose an emotion from the catalog and get a random matching image,
optionally restricted to animated GIFs.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}

	cmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Path to a YAML catalog (default: built-in cats)")
	cmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "Seed for reproducible picks; any value, 0 included (default: random)")
	cmd.PersistentFlags().BoolVar(&logFlag, "log", false, "Append diagnostic events to .memepicker/log.jsonl")

	cmd.AddCommand(newMoodsCmd())
	cmd.AddCommand(newPickCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newLogCmd())
	return cmd
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Without a terminal there is nothing to draw; point at the CLI instead.
	if !tui.IsTTY() {
		fmt.Fprintln(cmd.OutOrStdout(), "Non-TTY environment detected.")
		fmt.Fprintln(cmd.OutOrStdout(), "Use 'memepicker pick --mood <mood>' for non-interactive selection.")
		return nil
	}

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	return tui.Run(app.New(env.newSession, env.cfg.Catalog.AssetDir))
}

// runEnv is everything a command needs to start sessions.
type runEnv struct {
	cfg     *config.Config
	catalog catalog.Catalog
	logger  *log.Logger
}

// loadEnv resolves config (file, then env, then flags), opens the catalog and
// the optional event log.
func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog.Path = catalogFlag
	}
	if flags.Changed("seed") {
		seed := seedFlag
		cfg.Picker.Seed = &seed
	}
	if flags.Changed("log") {
		cfg.Log.Enabled = logFlag
	}

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	env := &runEnv{cfg: cfg, catalog: cat}
	if cfg.Log.Enabled {
		env.logger, err = log.NewLogger(dir)
		if err != nil {
			return nil, err
		}
	}
	return env, nil
}

// newSession builds a controller over the loaded catalog. Each call gets a
// fresh RNG so a seeded run replays identically after "Try again".
func (e *runEnv) newSession() *session.Controller {
	opts := session.Options{AnimatedOnly: e.cfg.Picker.AnimatedOnly}
	if e.logger != nil {
		opts.Recorder = e.logger
	}
	return session.New(e.catalog.Entries, picker.New(e.cfg.Picker.Seed), opts)
}
