package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openintro/soltex/internal/config"
	"github.com/openintro/soltex/internal/convert"
)

var (
	convertInput  string
	convertOutput string
	convertLevel  string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the solutions manual to PreTeXt",
	Long: `Convert the LaTeX solutions manual to a PreTeXt appendix.

Paths come from the config file when flags are not given. The output file
is overwritten on every run.

Examples:
  soltex convert
  soltex convert --input eoceSolutions.tex --output appendix-solutions.ptx
  soltex convert --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("input") {
			cfg.Input = convertInput
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = convertOutput
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = convertLevel
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel(cfg.LogLevel),
		}))

		_, err = convert.Run(cmd.Context(), convert.Request{
			InputPath:  cfg.Input,
			OutputPath: cfg.Output,
			ChapterIDs: cfg.Chapters,
			Logger:     logger,
		})
		return err
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", config.DefaultInput, "LaTeX solutions manual to read")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", config.DefaultOutput, "PreTeXt appendix to write")
	convertCmd.Flags().StringVar(&convertLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
