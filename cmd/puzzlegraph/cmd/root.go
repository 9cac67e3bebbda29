// Package cmd implements the puzzlegraph command line.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/puzzlegraph/internal/config"
	"github.com/katalvlaran/puzzlegraph/internal/report"
)

// ErrPartFailed is returned when at least one puzzle part reported an error.
var ErrPartFailed = errors.New("one or more parts failed")

// app is the state shared by the root command and its subcommands.
type app struct {
	loader  *config.Loader
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// Execute builds the root command and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh command tree with its own viper instance,
// so tests can run it repeatedly.
func NewRootCommand() *cobra.Command {
	a := &app{loader: config.NewLoader(viper.New())}

	root := &cobra.Command{
		Use:   "puzzlegraph",
		Short: "Grid and graph puzzle solvers",
		Long: `puzzlegraph solves three kinds of grid and graph puzzles:

- tiles: the largest rectangle spanned by two outline vertices, with and
  without the constraint that it lies inside the outline
- paths: path counts through a directed acyclic graph, optionally via waypoints
- beams: beam splits and distinct beam timelines through a splitter grid

Answers go to stdout; logs go to stderr.

Examples:
  puzzlegraph tiles input.txt
  puzzlegraph paths input.txt --sequence svr,fft,dac,out
  puzzlegraph beams input.txt --print-map --output json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is puzzlegraph.yaml in . or $XDG_CONFIG_HOME/puzzlegraph)")
	pf.BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.StringP("output", "o", "text", "answer format (text, json, yaml)")

	v := a.loader.Viper()
	_ = v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = v.BindPFlag("log_format", pf.Lookup("log-format"))
	_ = v.BindPFlag("output.format", pf.Lookup("output"))

	root.AddCommand(newTilesCommand(a), newPathsCommand(a), newBeamsCommand(a))

	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	} else if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	} else {
		h = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	}
	a.log = slog.New(h).With(slog.String("command", cmd.Name()))
	slog.SetDefault(a.log)

	a.log.Debug("configuration loaded",
		slog.String("file", a.loader.ConfigFileUsed()),
		slog.String("output", cfg.Output.Format),
	)

	return nil
}

// finish logs failed parts, prints the report and maps failures to ErrPartFailed.
func (a *app) finish(cmd *cobra.Command, r *report.Report) error {
	for _, ans := range r.Answers {
		if ans.Error != "" {
			a.log.Error("part failed", slog.Int("part", ans.Part), slog.String("error", ans.Error))
		} else {
			a.log.Info("part solved", slog.Int("part", ans.Part), slog.Any("value", ans.Value),
				slog.Duration("elapsed", time.Duration(ans.Elapsed)))
		}
	}
	if err := report.Write(cmd.OutOrStdout(), r, a.cfg.Output.Format); err != nil {
		return err
	}
	if r.Failed() {
		return ErrPartFailed
	}

	return nil
}

// wantPart reports whether part should run given the --part flag value.
func wantPart(selected, part int) bool {
	return selected == 0 || selected == part
}

func addPartFlag(cmd *cobra.Command, p *int) {
	cmd.Flags().IntVar(p, "part", 0, "solve only this part (1 or 2); 0 solves both")
}

func checkPart(p int) error {
	if p < 0 || p > 2 {
		return fmt.Errorf("--part must be 0, 1 or 2, got %d", p)
	}

	return nil
}
