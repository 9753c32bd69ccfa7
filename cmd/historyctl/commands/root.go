package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"member-history-backend/internal/config"
	"member-history-backend/internal/cycle"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/models"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
)

// options holds the persistent flags shared by every command.
type options struct {
	verbose bool
	weeks   int
	anchor  string
	format  string

	cfg *config.Config
}

// calendarOverridden reports whether --weeks or --anchor was given.
func (o *options) calendarOverridden() bool {
	return o.weeks != 0 || o.anchor != ""
}

// cycleConfig returns the calendar selected by --weeks/--anchor, falling
// back to the configured default.
func (o *options) cycleConfig() (cycle.Config, error) {
	cc, err := o.cfg.DefaultCycleConfig()
	if err != nil {
		return cycle.Config{}, err
	}
	if o.weeks != 0 {
		cc.WeeksPerCycle = o.weeks
	}
	if o.anchor != "" {
		anchor, err := models.ParseDate(o.anchor)
		if err != nil {
			return cycle.Config{}, fmt.Errorf("--anchor: %w", err)
		}
		cc.WeekADate = anchor
	}
	if err := cc.Validate(); err != nil {
		return cycle.Config{}, err
	}
	return cc, nil
}

// NewRootCmd builds the historyctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "historyctl",
		Short: "historyctl inspects member histories on the cooperative cycle calendar",
		Long: `A command line companion to the member history API. It locates dates on the
cycle calendar and builds member timelines from a saved history file or the live member API.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts.cfg = cfg

			logger.SetupConsole(opts.verbose, cfg.LogFile)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.IntVar(&opts.weeks, "weeks", 0, "weeks per cycle (overrides DEFAULT_WEEKS_PER_CYCLE and the member API calendar)")
	flags.StringVar(&opts.anchor, "anchor", "", "week A date of cycle 1, YYYY-MM-DD (overrides DEFAULT_WEEK_A_DATE and the member API calendar)")
	flags.StringVarP(&opts.format, "format", "o", formatText, "output format: text, json or yaml")

	rootCmd.AddCommand(
		newLocateCmd(opts),
		newRangeCmd(opts),
		newBuildCmd(opts),
		newMemberCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
