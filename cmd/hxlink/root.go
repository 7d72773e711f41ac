package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pthm/hxlink"
	"github.com/pthm/hxlink/lib/config"
	"github.com/pthm/hxlink/lib/icons"
	"github.com/pthm/hxlink/lib/tokens"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "hxlink",
		Short:         "Render and exercise ods-hyperlink elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "hxlink.yml", "Path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// env bundles what every subcommand needs.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	link *hxlink.Hyperlink
}

func setup(cmd *cobra.Command, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	opts := cfg.LogOptions()
	opts.Writer = cmd.ErrOrStderr()
	if flags.verbose {
		opts.Level = "debug"
	}
	log, err := hxlink.NewLogger(opts)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	link, err := buildHyperlink(cfg, log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, link: link}, nil
}

// buildHyperlink assembles the element definition from the configured icon
// directories and extra styles.
func buildHyperlink(cfg *config.Config, log zerolog.Logger) (*hxlink.Hyperlink, error) {
	lib := icons.Default()
	for _, dir := range cfg.IconDirs {
		n, err := lib.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("loading icons from %s (%d registered): %w", dir, n, err)
		}
		log.Debug().Str("dir", dir).Int("count", n).Msg("icons loaded")
	}

	sheet := tokens.Default()
	if cfg.Styles != "" {
		data, err := os.ReadFile(cfg.Styles)
		if err != nil {
			return nil, fmt.Errorf("reading styles %s: %w", cfg.Styles, err)
		}
		sheet, err = sheet.Extend(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", hxlink.ErrInvalidStyles, cfg.Styles, err)
		}
	}

	return hxlink.NewHyperlink(
		hxlink.WithIcons(lib),
		hxlink.WithStyles(sheet),
		hxlink.WithLogger(log),
	), nil
}
