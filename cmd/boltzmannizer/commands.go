package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/boltzmannizer/internal/config"
	"github.com/san-kum/boltzmannizer/internal/convert"
	"github.com/san-kum/boltzmannizer/internal/export"
	"github.com/san-kum/boltzmannizer/internal/sweep"
	"github.com/san-kum/boltzmannizer/internal/thermo"
	"github.com/san-kum/boltzmannizer/internal/viz"
)

func infoRun(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := loadAll(cfg, log, args)
	if err != nil {
		return err
	}

	fmt.Println(viz.DatasetTable(s.All()))
	for _, ds := range s.All() {
		fmt.Println()
		fmt.Println(viz.HeaderStyle.Render(ds.Name()))
		fmt.Println(viz.LevelTable(ds.Dist))
	}
	return nil
}

func evalRun(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := loadAll(cfg, log, args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tT\tZ\tE\tS\tCV")
	for _, ds := range s.All() {
		d := ds.Dist
		for _, T := range temps {
			fmt.Fprintf(w, "%s\t%g\t%s\t%s\t%s\t%s\n",
				ds.Name(), T,
				format(d.PartitionFunction(T)),
				format(d.InternalEnergy(T)),
				format(d.Entropy(T)),
				format(d.HeatCapacity(T)),
			)
		}
	}
	return w.Flush()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// sweepAll loads the files and samples q for every one of them.
func sweepAll(cmd *cobra.Command, quantity string, files []string) (*config.Config, sweep.Quantity, []sweep.Series, []*thermo.Distribution, error) {
	q, err := sweep.ParseQuantity(quantity)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	cfg, log, err := setup(cmd)
	if err != nil {
		return nil, 0, nil, nil, err
	}
	defer log.Sync()

	s, err := loadAll(cfg, log, files)
	if err != nil {
		return nil, 0, nil, nil, err
	}

	datasets := s.All()
	dists := make([]*thermo.Distribution, len(datasets))
	for i, ds := range datasets {
		dists[i] = ds.Dist
	}

	series, err := sweep.EvaluateAll(cmd.Context(), dists, q, grid(cfg).For(q))
	if err != nil {
		return nil, 0, nil, nil, err
	}
	for i, ds := range datasets {
		series[i].Name = ds.Name()
		series[i].Color = ds.Color
	}
	return cfg, q, series, dists, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, q, series, dists, err := sweepAll(cmd, args[0], args[1:])
	if err != nil {
		return err
	}

	x, y := sweep.Labels(q, dists)
	fmt.Println(viz.HeaderStyle.Render(q.Title()))
	fmt.Println(viz.PlotSeries(series, x, y, plotOptions(cfg)))
	return nil
}

func populationsRun(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := loadAll(cfg, log, args)
	if err != nil {
		return err
	}

	ds := s.All()[0]
	fmt.Println(viz.HeaderStyle.Render(ds.Name() + " populations"))
	fmt.Println(viz.PlotPopulations(ds.Dist, grid(cfg).For(sweep.Energy), plotOptions(cfg)))
	return nil
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	_, _, series, _, err := sweepAll(cmd, args[0], args[1:])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, series)
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	_, q, series, dists, err := sweepAll(cmd, args[0], args[1:])
	if err != nil {
		return err
	}

	x, y := sweep.Labels(q, dists)
	doc, err := export.NewDocument(q, x, y, series)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, doc)
}

func convertRun(cmd *cobra.Command, args []string) error {
	ecol, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("energy column: %w", err)
	}
	dcol, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("degeneracy column: %w", err)
	}

	opts := convert.DefaultOptions(ecol, dcol)
	opts.KB = kB
	opts.Units = thermo.Units{Energy: energyUnit, Temperature: temperatureUnit}
	return convert.Convert(os.Stdin, os.Stdout, opts)
}
