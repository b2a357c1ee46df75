// Package cli implements the foldr command line: JSON in, one collection
// operation, JSON out.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// EnvLogLevel overrides the config file's log level when --log-level is not
// given.
const EnvLogLevel = "FOLDR_LOG_LEVEL"

type rootFlags struct {
	config   string
	logLevel string
	pretty   bool
}

// NewRootCommand builds the foldr command tree.
func NewRootCommand() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "foldr",
		Short:         "Run collection operations over JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(flags.config)
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if env := os.Getenv(EnvLogLevel); env != "" {
				level = env
			}
			if cmd.Flags().Changed("log-level") {
				level = flags.logLevel
			}
			if err := setupLogging(cmd, level); err != nil {
				return err
			}

			pretty := cfg.Pretty
			if cmd.Flags().Changed("pretty") {
				pretty = flags.pretty
			}

			log.Debug().Str("command", cmd.Name()).Str("level", level).Bool("pretty", pretty).Msg("starting")
			cmd.SetContext(withState(cmd.Context(), &State{Config: cfg, Pretty: pretty}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/"+ConfigPath+")")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "indent JSON output")

	root.AddCommand(operationCommands()...)
	root.AddCommand(getCommand(), opsCommand())
	return root
}

func setupLogging(cmd *cobra.Command, level string) error {
	lvl := zerolog.WarnLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root command")
	}
}
