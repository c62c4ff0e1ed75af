package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/analysis"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/session"
	"github.com/san-kum/sortlab/internal/step"
	"github.com/san-kum/sortlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	size       int
	minVal     int
	maxVal     int
	seed       int64
	shape      string
	speedName  string
	inputStr   string
	configFile string
	preset     string
	trace      bool
	format     string
	outPath    string
	stepIdx    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortlab",
		Short: "sorting algorithm visualization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBaseConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("speed") {
				cfg.Speed = speedName
			}
			return tui.Run(session.NewRegistry(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&speedName, "speed", config.DefaultSpeed, "initial playback speed: "+strings.Join(playback.SpeedNames(), ", "))

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "record a run and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  runAlgorithm,
	}
	addInputFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every recorded step")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE:  listAlgorithms,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot disorder over the run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	addInputFlags(plotCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2] ...",
		Short: "compare algorithms on the same input",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareAlgorithms,
	}
	addInputFlags(compareCmd)

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format: json, csv, svg")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (stdout for json/csv when empty)")
	exportCmd.Flags().IntVar(&stepIdx, "step", -1, "step to render for svg (-1 for final)")

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, algorithmsCmd, plotCmd, compareCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "array size")
	cmd.Flags().IntVar(&minVal, "min", config.DefaultMin, "minimum value")
	cmd.Flags().IntVar(&maxVal, "max", config.DefaultMax, "maximum value")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 for time-based)")
	cmd.Flags().StringVar(&shape, "shape", config.DefaultShape, "input shape: "+strings.Join(dataset.Shapes(), ", "))
	cmd.Flags().StringVar(&inputStr, "input", "", "explicit input values, comma or space separated")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func loadBaseConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveInput builds the array to sort. Precedence: explicit --input,
// then preset, then config file, then the generation flags.
func resolveInput(cmd *cobra.Command, algorithm string) ([]int, error) {
	if inputStr != "" {
		return dataset.Parse(inputStr)
	}

	if preset != "" {
		cfg := config.GetPreset(algorithm, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(algorithm))
		}
		size = cfg.Size
		minVal = cfg.Min
		maxVal = cfg.Max
		shape = cfg.Shape
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(cfg.Values) > 0 {
			return append([]int(nil), cfg.Values...), nil
		}
		if !cmd.Flags().Changed("size") {
			size = cfg.Size
		}
		if !cmd.Flags().Changed("min") {
			minVal = cfg.Min
		}
		if !cmd.Flags().Changed("max") {
			maxVal = cfg.Max
		}
		if !cmd.Flags().Changed("shape") {
			shape = cfg.Shape
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return dataset.Generate(shape, size, minVal, maxVal, seed)
}

func record(cmd *cobra.Command, algorithm string) (algo.Adapter, *step.Log, []int, error) {
	values, err := resolveInput(cmd, algorithm)
	if err != nil {
		return nil, nil, nil, err
	}
	a, err := session.NewRegistry().Get(algorithm)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := a.Run(values)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, log, values, nil
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	values, err := resolveInput(cmd, args[0])
	if err != nil {
		return err
	}
	a, err := session.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	log, err := a.Run(values)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("algorithm: %s\n", a.Meta().Name)
	fmt.Printf("input: %v\n\n", values)

	if trace {
		for i := 0; i < log.Len(); i++ {
			s := log.At(i)
			fmt.Printf("%4d  %v  %s\n", s.Seq, s.Values, s.Description)
		}
		fmt.Println()
	}

	stats := step.Summarize(log)
	fmt.Printf("sorted: %v\n", log.Final().Values)
	fmt.Printf("recorded in %v\n", elapsed)
	fmt.Printf("steps: %d\n", stats.Steps)
	fmt.Printf("comparisons: %d\n", stats.Comparisons)
	fmt.Printf("swaps: %d\n", stats.Swaps)

	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := session.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBEST\tAVERAGE\tWORST\tSPACE\tSTABLE\tDESCRIPTION")

	for _, name := range reg.List() {
		a, err := reg.Get(name)
		if err != nil {
			return err
		}
		m := a.Meta()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\t%s\n",
			m.Name, m.Best, m.Average, m.Worst, m.Space, m.Stable, m.Description)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	a, log, values, err := record(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", a.Meta().Name)
	fmt.Printf("input: %v\n", values)
	fmt.Printf("steps: %d\n\n", log.Len())

	series := analysis.InversionSeries(log)
	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("inversions per step"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("initial sortedness: %.2f\n", analysis.Sortedness(log.Initial().Values))
	fmt.Printf("initial runs: %d\n", analysis.Runs(log.Initial().Values))

	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	values, err := resolveInput(cmd, args[0])
	if err != nil {
		return err
	}
	reg := session.NewRegistry()

	fmt.Printf("input: %v\n\n", values)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS")

	for _, name := range args {
		a, err := reg.Get(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		log, err := a.Run(values)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		stats := step.Summarize(log)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", name, stats.Steps, stats.Comparisons, stats.Swaps)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	a, log, _, err := record(cmd, args[0])
	if err != nil {
		return err
	}

	switch format {
	case "json":
		if outPath == "" {
			return export.WriteJSON(os.Stdout, a.Meta(), log)
		}
		return export.SaveJSON(outPath, a.Meta(), log)
	case "csv":
		if outPath == "" {
			return export.WriteCSV(os.Stdout, log)
		}
		return export.SaveCSV(outPath, log)
	case "svg":
		idx := stepIdx
		if idx < 0 || idx >= log.Len() {
			idx = log.Len() - 1
		}
		path := outPath
		if path == "" {
			path = fmt.Sprintf("sortlab_%s_step_%03d.svg", args[0], idx)
		}
		if err := export.SaveStepSVG(path, log.At(idx), 800, 500); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}
	return fmt.Errorf("unknown format: %s (json, csv, svg)", format)
}
