package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlegraph/gridgraph"
	"github.com/katalvlaran/puzzlegraph/internal/report"
	"github.com/katalvlaran/puzzlegraph/parse"
	"github.com/katalvlaran/puzzlegraph/pathcount"
)

func newBeamsCommand(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "beams <file>",
		Short: "Trace a beam through a splitter grid",
		Long: `Reads a map of '.', 'S' and '^' cells. Part 1 counts the splitters the
beam reaches; part 2 counts the distinct timelines a single particle can
take from S to the bottom.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPart(part); err != nil {
				return err
			}
			r := report.New("beams", args[0])
			var gg *gridgraph.GridGraph
			if err := r.Read(func() (err error) {
				gg, err = parse.File(args[0], parse.Grid)
				return err
			}); err != nil {
				return err
			}
			a.log.Debug("grid read", slog.Int("width", gg.Width), slog.Int("height", gg.Height))

			if wantPart(part, 1) {
				r.Solve(1, "splits", func() (any, string, error) {
					n, err := gg.CountSplits()
					return n, "", err
				})
			}
			if wantPart(part, 2) {
				r.Solve(2, "timelines", func() (any, string, error) {
					n, err := gg.CountTimelines(
						pathcount.WithContext(cmd.Context()),
						pathcount.WithLogger(a.log),
					)
					return n, "", err
				})
			}
			if a.cfg.Beams.PrintMap {
				trace, err := gg.Trace()
				if err != nil {
					return err
				}
				r.Map = trace.String()
			}

			return a.finish(cmd, r)
		},
	}
	cmd.Flags().Bool("print-map", false, "print the grid with the beam traced")
	_ = a.loader.Viper().BindPFlag("beams.print_map", cmd.Flags().Lookup("print-map"))
	addPartFlag(cmd, &part)

	return cmd
}
