package cmd

import (
	"github.com/sarchlab/clarus/gnuplot"
	"github.com/sarchlab/clarus/list"
	"github.com/spf13/cobra"
)

func newPlotCmd() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot LIST",
		Short: "Plot a list of numbers against their indices with gnuplot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := list.Parse(args[0], list.ParseFloat)
			if err != nil {
				return err
			}

			program := stringFlag(cmd, "gnuplot", envGnuplot)

			g, err := gnuplot.MakeBuilder().
				WithProgram(program).
				Build(cmd.Context())
			if err != nil {
				return err
			}

			err = plot(g, values, cmd)
			if err != nil {
				g.Close()
				return err
			}

			return g.Close()
		},
	}

	plotCmd.Flags().String("gnuplot", "gnuplot -persist",
		"Command that runs gnuplot ("+envGnuplot+")")
	plotCmd.Flags().String("title", "", "Title of the plot")

	return plotCmd
}

func plot(g *gnuplot.Gnuplot, values *list.List[float64], cmd *cobra.Command) error {
	err := g.SetDefaults()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	if title != "" {
		err = g.Command("set title %q", title)
		if err != nil {
			return err
		}
	}

	return g.PlotList(values)
}
