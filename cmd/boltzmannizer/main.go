package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/boltzmannizer/internal/config"
	"github.com/san-kum/boltzmannizer/internal/convert"
	"github.com/san-kum/boltzmannizer/internal/logging"
	"github.com/san-kum/boltzmannizer/internal/session"
	"github.com/san-kum/boltzmannizer/internal/sweep"
	"github.com/san-kum/boltzmannizer/internal/tui"
	"github.com/san-kum/boltzmannizer/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool
	minTemp    float64
	maxTemp    float64
	samples    int
	// eval
	temps []float64
	// convert
	kB              float64
	energyUnit      string
	temperatureUnit string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boltzmannizer [file...]",
		Short: "explore canonical ensembles of discrete energy levels",
		Long: "Load level files and look at the partition function, internal energy,\n" +
			"entropy and heat capacity they imply. With no subcommand the\n" +
			"interactive explorer starts with the given files loaded.",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "temperature sweep preset")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Float64Var(&minTemp, "min-temp", config.DefaultMinTemp, "lowest temperature of the sweep")
	rootCmd.PersistentFlags().Float64Var(&maxTemp, "max-temp", config.DefaultMaxTemp, "highest temperature of the sweep")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", config.DefaultSamples, "number of temperatures sampled")

	infoCmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "show levels and summary of level files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  infoRun,
	}

	evalCmd := &cobra.Command{
		Use:   "eval FILE...",
		Short: "evaluate thermodynamic quantities at given temperatures",
		Args:  cobra.MinimumNArgs(1),
		RunE:  evalRun,
	}
	evalCmd.Flags().Float64SliceVar(&temps, "temp", []float64{300}, "temperatures to evaluate at")

	plotCmd := &cobra.Command{
		Use:   "plot QUANTITY FILE...",
		Short: "plot energy, entropy or heat_capacity against temperature",
		Args:  cobra.MinimumNArgs(2),
		RunE:  plotRun,
	}

	populationsCmd := &cobra.Command{
		Use:   "populations FILE",
		Short: "plot level occupations against temperature",
		Args:  cobra.ExactArgs(1),
		RunE:  populationsRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv QUANTITY FILE...",
		Short: "write a temperature sweep as csv to stdout",
		Args:  cobra.MinimumNArgs(2),
		RunE:  exportCSVRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json QUANTITY FILE...",
		Short: "write a temperature sweep as json to stdout",
		Args:  cobra.MinimumNArgs(2),
		RunE:  exportJSONRun,
	}

	convertCmd := &cobra.Command{
		Use:   "convert ECOL DCOL",
		Short: "convert columns on stdin into a level file on stdout",
		Long: "Reads whitespace separated columns from stdin. ECOL and DCOL are the\n" +
			"one-based energy and degeneracy columns. Adjacent rows with the same\n" +
			"energy are merged.",
		Args: cobra.ExactArgs(2),
		RunE: convertRun,
	}
	convertCmd.Flags().Float64Var(&kB, "kb", convert.DefaultKB, "Boltzmann constant in energy per temperature")
	convertCmd.Flags().StringVar(&energyUnit, "energy-unit", "cm^-1", "energy unit label")
	convertCmd.Flags().StringVar(&temperatureUnit, "temperature-unit", "K", "temperature unit label")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list temperature sweep presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-10s %g .. %g  (%d samples)\n", name, p.MinTemp, p.MaxTemp, p.Samples)
			}
		},
	}

	rootCmd.AddCommand(infoCmd, evalCmd, plotCmd, populationsCmd, exportCSVCmd, exportJSONCmd, convertCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves the configuration, in increasing priority: defaults,
// config file, preset, explicitly set flags.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	log, err := logging.New(verbose)
	if err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		log.Debug("loaded config", zap.String("path", configFile))
	}

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Sweep = p
	}

	flags := cmd.Flags()
	if flags.Changed("min-temp") {
		cfg.Sweep.MinTemp = minTemp
	}
	if flags.Changed("max-temp") {
		cfg.Sweep.MaxTemp = maxTemp
	}
	if flags.Changed("samples") {
		cfg.Sweep.Samples = samples
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func grid(cfg *config.Config) sweep.Grid {
	return sweep.Grid{
		MinTemp:            cfg.Sweep.MinTemp,
		MaxTemp:            cfg.Sweep.MaxTemp,
		Samples:            cfg.Sweep.Samples,
		HeatCapacityOffset: cfg.Sweep.HeatCapacityOffset,
	}
}

func plotOptions(cfg *config.Config) viz.PlotOptions {
	return viz.PlotOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height}
}

func newSession(cfg *config.Config, log *zap.Logger) *session.Session {
	return session.New(cfg.Palette, cfg.OverflowColor, log)
}

// loadAll loads every file, stopping at the first failure.
func loadAll(cfg *config.Config, log *zap.Logger, files []string) (*session.Session, error) {
	s := newSession(cfg, log)
	for _, f := range files {
		if _, err := s.Add(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// runInteractive starts the explorer. Files that fail to load are reported
// and skipped.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	s := newSession(cfg, log)
	for _, f := range args {
		if _, err := s.Add(f); err != nil {
			log.Error("skipping file", zap.Error(err))
		}
	}
	return tui.Run(s, grid(cfg), plotOptions(cfg))
}
