package main

import (
	"ataxx/config"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.New()
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "ataxx",
		Short:         "Play Ataxx on a 7x7 board against a friend or the computer",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(configFile); err != nil {
				return err
			}
			if err := cfg.BindFlags(cmd.Flags()); err != nil {
				return err
			}
			setupLogging(cfg.GetBool(config.ConfigDebug))
			log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	flags.Bool(config.ConfigDebug, false, "debug logging")
	flags.Uint64(config.ConfigSeed, 0, "seed for random play, 0 for unseeded")
	flags.Int(config.ConfigGoroutines, 1, "goroutines for greedy search")
	flags.Bool(config.ConfigCache, true, "memoise greedy search values")
	flags.Bool(config.ConfigMetrics, false, "log search metrics")
	root.Flags().String(config.ConfigHistoryFile, "/tmp/ataxx_history.tmp", "shell history file")

	root.AddCommand(newSelfPlayCmd(cfg))
	return root
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Debug().Msg("Debug logging is on")
}
