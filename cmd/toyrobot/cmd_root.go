package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"toyrobot/internal/config"
	"toyrobot/internal/console"
	"toyrobot/internal/logging"
	"toyrobot/internal/robot"
)

const prompt = "Please enter your command: "

func newRootCmd() *cobra.Command {
	var configPath string
	var size int
	var noMap bool
	var noHelpOnError bool
	var noBanner bool
	var noColor bool
	var logFile string
	var verbose int
	var quiet int

	cmd := &cobra.Command{
		Use:   "toyrobot [script]",
		Short: "Drive a toy robot around a square table top",
		Long: `Reads PLACE X,Y,F / MOVE / LEFT / RIGHT / REPORT / HELP / EXIT commands,
one per line, from the script file or from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.Grid.Size = size
			}
			if noMap {
				cfg.Console.ShowMap = false
			}
			if noHelpOnError {
				cfg.Console.HelpOnError = false
			}
			if noBanner {
				cfg.Console.Banner = false
			}
			if noColor {
				cfg.Console.Color = false
			}
			if flags.Changed("log-file") {
				cfg.Log.File = logFile
			}
			cfg.Log.Verbosity += verbose - quiet
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			closeLog := logging.Setup(cfg.Log)
			defer closeLog()

			grid, err := robot.NewGrid(cfg.Grid.Size)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			interactive := false
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			} else {
				interactive = isTerminal(in)
			}

			out := cmd.OutOrStdout()
			opts := []console.Option{
				console.WithHelpOnError(cfg.Console.HelpOnError),
				console.WithBanner(cfg.Console.Banner),
			}
			if cfg.Console.ShowMap {
				opts = append(opts, console.WithBoard(console.NewBoard(out, cfg.Console.Color)))
			}
			if interactive {
				opts = append(opts, console.WithPrompt(prompt))
			}

			commonlog.GetLogger("toyrobot").Debugf("configuration: %+v", *cfg)
			session := console.NewSession(robot.New(grid), out, opts...)
			session.Start()
			return session.Run(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (default $"+config.EnvConfig+")")
	cmd.Flags().IntVarP(&size, "size", "s", robot.DefaultSize, "edge length of the table top")
	cmd.Flags().BoolVar(&noMap, "no-map", false, "do not draw the table after each command")
	cmd.Flags().BoolVar(&noHelpOnError, "no-help-on-error", false, "do not print usage after a rejected command")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "do not log the welcome banner")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "draw the table without colours")
	cmd.Flags().StringVar(&logFile, "log-file", "", "also write the log to this file (rotated)")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "more logging, repeatable")
	cmd.Flags().CountVarP(&quiet, "quiet", "q", "less logging, repeatable")

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
