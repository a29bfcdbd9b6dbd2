package commands

import (
	"github.com/spf13/cobra"

	"chucknorris/internal/app"
	"chucknorris/internal/domain"
)

const version = "1.0.0"

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd(nil).Execute()
}

// newRootCmd builds the CLI. A nil rng selects the process-wide source.
func newRootCmd(rng domain.RandomSource) *cobra.Command {
	var (
		number   int
		all      bool
		format   string
		logLevel string
	)

	root := &cobra.Command{
		Use:     "chucknorris [name]",
		Short:   "The finest selection of Chuck Norris jokes.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments parsed; later failures are not usage errors.
			cmd.SilenceUsage = true

			overrides := map[string]any{}
			if len(args) == 1 {
				overrides["name"] = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("number") {
				overrides["number"] = number
				overrides["has_index"] = true
			}
			if flags.Changed("all") {
				overrides["all"] = all
			}
			if flags.Changed("output") {
				overrides["format"] = format
			}
			if flags.Changed("log-level") {
				overrides["log_level"] = logLevel
			}

			cfg, err := app.LoadConfig(overrides)
			if err != nil {
				return err
			}
			cfg.Rand = rng
			cfg.LogOut = cmd.ErrOrStderr()

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}

			if cfg.All {
				qs, err := w.Quips.Render(cfg.Name)
				if err != nil {
					return err
				}
				return writeList(cmd.OutOrStdout(), cfg.Format, qs)
			}

			q, err := w.Quips.Pick(cfg.Name, cfg.Index())
			if err != nil {
				return err
			}
			w.Log.Info().Int("index", q.Index).Str("fingerprint", q.Fingerprint.String()).Msg("quip")
			return writeOne(cmd.OutOrStdout(), cfg.Format, q)
		},
	}

	f := root.Flags()
	f.IntVarP(&number, "number", "n", 0, "pick a specific quip (negative counts from the end)")
	f.BoolVarP(&all, "all", "a", false, "print every quip")
	f.StringVarP(&format, "output", "o", app.FormatText, "output format: text, json or yaml")
	f.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	return root
}
