package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlegraph/core"
	"github.com/katalvlaran/puzzlegraph/internal/report"
	"github.com/katalvlaran/puzzlegraph/label"
	"github.com/katalvlaran/puzzlegraph/parse"
	"github.com/katalvlaran/puzzlegraph/pathcount"
)

func newPathsCommand(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "paths <file>",
		Short: "Count paths through a device graph",
		Long: `Reads one "name: successor successor ..." entry per line. Part 1 counts
paths from --from to --to; part 2 counts paths along --sequence, whose
first and last names are the endpoints and whose middle names are
waypoints. Waypoints are visited in the given order unless --any-order
is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPart(part); err != nil {
				return err
			}
			r := report.New("paths", args[0])
			var g *core.Graph
			if err := r.Read(func() (err error) {
				g, err = parse.File(args[0], parse.Graph)
				return err
			}); err != nil {
				return err
			}

			c, err := pathcount.NewCounter(g,
				pathcount.WithContext(cmd.Context()),
				pathcount.WithLogger(a.log),
				pathcount.WithNodeFormatter(label.Format),
			)
			if err != nil {
				return err
			}
			pc := a.cfg.Paths

			if wantPart(part, 1) {
				r.Solve(1, pc.From+"→"+pc.To, func() (any, string, error) {
					from, to, _, err := endpoints([]string{pc.From, pc.To})
					if err != nil {
						return nil, "", err
					}
					n, err := c.Count(from, to)
					return n, "", err
				})
			}
			if wantPart(part, 2) {
				name := strings.Join(pc.Sequence, "→")
				if pc.AnyOrder {
					name += " (any order)"
				}
				r.Solve(2, name, func() (any, string, error) {
					from, to, via, err := endpoints(pc.Sequence)
					if err != nil {
						return nil, "", err
					}
					var res *pathcount.Result
					if pc.AnyOrder {
						res, err = c.CountThroughAll(from, to, via)
					} else {
						res, err = c.CountVia(from, to, via)
					}
					if err != nil {
						return nil, "", err
					}
					return res.Total, stageDetail(res), nil
				})
			}

			return a.finish(cmd, r)
		},
	}

	f := cmd.Flags()
	f.String("from", "you", "start node of part 1")
	f.String("to", "out", "target node of part 1")
	f.StringSlice("sequence", []string{"svr", "fft", "dac", "out"}, "start, waypoints and target of part 2")
	f.Bool("any-order", false, "visit part 2 waypoints in any order")
	v := a.loader.Viper()
	_ = v.BindPFlag("paths.from", f.Lookup("from"))
	_ = v.BindPFlag("paths.to", f.Lookup("to"))
	_ = v.BindPFlag("paths.sequence", f.Lookup("sequence"))
	_ = v.BindPFlag("paths.any_order", f.Lookup("any-order"))
	addPartFlag(cmd, &part)

	return cmd
}

// endpoints encodes names; the first and last are start and target.
func endpoints(names []string) (from, to core.NodeID, via []core.NodeID, err error) {
	if len(names) < 2 {
		return 0, 0, nil, fmt.Errorf("need at least a start and a target, got %v", names)
	}
	ids := make([]core.NodeID, len(names))
	for i, n := range names {
		if ids[i], err = label.Encode(n); err != nil {
			return 0, 0, nil, err
		}
	}

	return ids[0], ids[len(ids)-1], ids[1 : len(ids)-1], nil
}

func stageDetail(res *pathcount.Result) string {
	parts := make([]string, len(res.Stages))
	for i, s := range res.Stages {
		parts[i] = fmt.Sprintf("%s→%s=%d", label.Format(s.From), label.Format(s.To), s.Count)
	}

	return strings.Join(parts, " ")
}
