// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/mdhender/aoc23"
	"github.com/mdhender/aoc23/config"
	"github.com/mdhender/aoc23/cubes"
	"github.com/mdhender/aoc23/inputs"
	"github.com/mdhender/aoc23/model"
	"github.com/mdhender/aoc23/pipelines/stages"
	store "github.com/mdhender/aoc23/stores/sqlite"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("config-file", "", "load configuration from file")
		cmd.PersistentFlags().String("data-dir", "", "directory holding the dayNN input folders")
		cmd.PersistentFlags().String("db", "", "path to the run database (default in-memory)")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-db-stats", false, "dump row counts from each table")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "aoc23",
		Short: "Advent of Code 2023 solvers",
		Long:  `Run the calibration and cube game puzzles and record the answers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			// slog writes through the log package so both share the flags above
			quiet, _ := cmd.Flags().GetBool("quiet")
			debug, _ := cmd.Flags().GetBool("debug")
			switch {
			case debug:
				slog.SetLogLoggerLevel(slog.LevelDebug)
			case quiet:
				slog.SetLogLoggerLevel(slog.LevelError)
			default:
				slog.SetLogLoggerLevel(slog.LevelWarn)
			}

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("aoc23: version %q\n", aoc23.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdCalibrate())
	cmdRoot.AddCommand(cmdCubes())
	cmdRoot.AddCommand(cmdLex())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdCompactDB())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdCalibrate() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "calibrate [input-file]",
		Short:        "sum the calibration values in a document",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			quiet, _ := cmd.Flags().GetBool("quiet")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			started := time.Now()
			rr, r, err := a.runner.RunCalibration(ctx, inputArg(args))
			if err != nil {
				return err
			}
			fmt.Printf("Loading file: %s\n", rr.Input.Path)

			if !quiet {
				for _, line := range r.Lines {
					if line.Err1 != nil {
						fmt.Printf("Error: %d: %v\n", line.LineNo, line.Err1)
						continue
					}
					fmt.Printf("1: %s -> %d\n", line.Text, line.Part1)
				}
				for _, line := range r.Lines {
					if line.Err2 != nil {
						fmt.Printf("Error: %d: %v\n", line.LineNo, line.Err2)
						continue
					}
					fmt.Printf("2: %s -> %d\n", line.Text, line.Part2)
				}
			}
			fmt.Printf("1: %d\n", r.Part1)
			fmt.Printf("2: %d\n", r.Part2)

			return a.finish(ctx, rr, started)
		},
	}
	return cmd
}

func cmdCubes() *cobra.Command {
	truncateBadDraws := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&truncateBadDraws, "truncate-bad-draws", truncateBadDraws, "end a game at a malformed draw instead of failing")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "cubes [input-file]",
		Short:        "check cube games against the bag",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if quiet {
				verbose = false
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			if cmd.Flags().Changed("truncate-bad-draws") {
				a.cfg.Cubes.TruncateBadDraws = truncateBadDraws
			}

			started := time.Now()
			rr, r, err := a.runner.RunCubes(ctx, inputArg(args))
			if err != nil {
				var perr *stages.ErrParseSyntax
				if errors.As(err, &perr) {
					printSyntaxError(a.cfg, perr)
				}
				return err
			}
			fmt.Printf("Loading file: %s\n", rr.Input.Path)

			if !quiet {
				for _, diag := range r.Diagnostics {
					cubes.PrintDiagnostic(os.Stderr, diag, rr.Input.Name, rr.Input.Lines)
				}
			}
			if verbose {
				for _, v := range r.Verdicts {
					fmt.Printf("Game %d: possible %v: power %d\n", v.Game.ID, v.Possible, v.Power)
				}
			}
			fmt.Printf("1: %d\n", r.Part1)
			fmt.Printf("2: %d\n", r.Part2)

			return a.finish(ctx, rr, started)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// printSyntaxError shows the offending line with a caret under the token.
func printSyntaxError(cfg *config.Config, perr *stages.ErrParseSyntax) {
	diag, ok := cubes.DiagnosticFromError(perr.Err)
	if !ok {
		return
	}
	input, err := inputs.Load(afero.NewOsFs(), perr.Path,
		inputs.WithAutoEOL(cfg.Inputs.AutoEOL),
		inputs.WithStripCR(cfg.Inputs.StripCR))
	if err != nil {
		cubes.PrintDiagnostic(os.Stderr, diag, perr.Path, nil)
		return
	}
	cubes.PrintDiagnostic(os.Stderr, diag, input.Name, input.Lines)
}

func cmdLex() *cobra.Command {
	unknownOnly := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&unknownOnly, "errors-only", unknownOnly, "only show lines that fail to tokenize")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "lex [input-file]",
		Short:        "dump the tokens of a cube game log",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path := inputArg(args)
			if path == "" {
				path = inputs.DefaultPath(cfg.Inputs.DataDir, model.PuzzleCubes)
			}
			input, err := inputs.Load(afero.NewOsFs(), path,
				inputs.WithAutoEOL(cfg.Inputs.AutoEOL),
				inputs.WithStripCR(cfg.Inputs.StripCR))
			if err != nil {
				return &stages.ErrReadFile{Op: "read", Path: path, Err: err}
			}

			started := time.Now()
			tokens, diags := cubes.TokenizeLines(input.Lines, cubes.WithLogger(slog.Default()))
			if !unknownOnly {
				for n, tok := range tokens {
					fmt.Printf("%-20s %5d %-14s %q\n", fmt.Sprintf("%s:%d:%d:", input.Name, tok.Line, tok.Column), n+1, tok.Kind, tok.Text)
				}
			}
			for _, diag := range diags {
				cubes.PrintDiagnostic(os.Stdout, diag, input.Name, input.Lines)
			}
			log.Printf("%s: %d tokens, %d lines skipped in %v\n", input.Name, len(tokens), len(diags), time.Since(started))
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new run database",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(args[0]); err != nil {
				return &stages.ErrDatabase{Op: "init", Err: err}
			}
			log.Printf("%s: created database\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdCompactDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "compact-db <path>",
		Short:        "vacuum a run database",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.CompactDatabase(args[0]); err != nil {
				return &stages.ErrDatabase{Op: "compact", Err: err}
			}
			log.Printf("%s: compacted database\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(aoc23.Version().String())
				return nil
			}
			fmt.Println(aoc23.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// app holds what the solver commands share.
type app struct {
	cfg    *config.Config
	store  model.Store
	runner *stages.RunnerService

	showDBStats bool
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// loadConfig loads the config file, if one was named, and applies the
// command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile, _ := cmd.Flags().GetString("config-file"); configFile != "" {
		var err error
		if cfg, err = config.Load(afero.NewOsFs(), configFile); err != nil {
			return nil, &stages.ErrConfig{Path: configFile, Err: err}
		}
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.Inputs.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path, _ = cmd.Flags().GetString("db")
	}
	return cfg, nil
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	sqlStore, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: cfg.Database.Path})
	if err != nil {
		return nil, &stages.ErrDatabase{Op: "open", Err: err}
	}
	a := &app{
		cfg:    cfg,
		store:  sqlStore,
		runner: stages.NewRunnerService(sqlStore, cfg, slog.Default()),
	}
	a.showDBStats, _ = cmd.Flags().GetBool("show-db-stats")
	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		log.Printf("error: close store: %v\n", err)
	}
}

// finish reports on the run after the answers have been printed.
func (a *app) finish(ctx context.Context, rr *stages.RunResult, started time.Time) error {
	log.Printf("%s: run %d completed in %v\n", rr.Input.Name, rr.Run.ID, time.Since(started))
	if !rr.Consistent {
		log.Printf("%s: warning: answers differ from %d earlier run(s) on this input\n", rr.Input.Name, len(rr.Previous))
	}

	if a.showDBStats {
		stats, err := a.store.TableStats(ctx)
		if err != nil {
			return &stages.ErrDatabase{Op: "table stats", Err: err}
		}
		log.Println("database stats:")
		tables := make([]string, 0, len(stats))
		for table := range stats {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			if stats[table] > 0 {
				log.Printf("  %-20s %d rows\n", table, stats[table])
			}
		}
	}
	return nil
}
