package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlegraph/internal/config"
	"github.com/katalvlaran/puzzlegraph/internal/report"
	"github.com/katalvlaran/puzzlegraph/parse"
	"github.com/katalvlaran/puzzlegraph/polygon"
)

func newTilesCommand(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "tiles <file>",
		Short: "Largest rectangle between two red tiles of an outline",
		Long: `Reads one "x,y" vertex per line. Part 1 is the largest rectangle with
two vertices as opposite corners; part 2 additionally requires the
rectangle to lie inside the outline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPart(part); err != nil {
				return err
			}
			r := report.New("tiles", args[0])
			var o polygon.Outline
			if err := r.Read(func() (err error) {
				o, err = parse.File(args[0], parse.Outline)
				return err
			}); err != nil {
				return err
			}
			a.log.Debug("outline read", slog.Int("vertices", len(o)), slog.Int64("area2", o.SignedArea2()))

			if wantPart(part, 1) {
				r.Solve(1, "largest rectangle", func() (any, string, error) {
					return rectAnswer(polygon.LargestRect(o))
				})
			}
			if wantPart(part, 2) {
				if a.cfg.Tiles.Orient == config.OrientAuto && o.SignedArea2() < 0 {
					a.log.Info("reversing counter-clockwise outline")
					o = o.Reverse()
				}
				strict := a.cfg.Tiles.Orient == config.OrientStrict
				r.Solve(2, "largest inscribed rectangle", func() (any, string, error) {
					if strict && o.SignedArea2() < 0 {
						return nil, "", fmt.Errorf("%w: outline is counter-clockwise (signed area %d), use --orient auto",
							polygon.ErrInvalidInput, o.SignedArea2())
					}
					return rectAnswer(polygon.LargestInscribedRect(o))
				})
			}

			return a.finish(cmd, r)
		},
	}
	cmd.Flags().String("orient", config.OrientStrict, "counter-clockwise outlines: strict rejects them, auto reverses them")
	_ = a.loader.Viper().BindPFlag("tiles.orient", cmd.Flags().Lookup("orient"))
	addPartFlag(cmd, &part)

	return cmd
}

func rectAnswer(res polygon.Result, err error) (any, string, error) {
	if err != nil {
		return nil, "", err
	}

	return res.Area, fmt.Sprintf("%s %s", res.A, res.B), nil
}
