package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/config"
	"github.com/numlab/bvplab/internal/fdm"
	"github.com/numlab/bvplab/internal/optim"
	"github.com/numlab/bvplab/internal/report"
	"github.com/numlab/bvplab/internal/shooting"
	"github.com/numlab/bvplab/internal/storage"
	"github.com/numlab/bvplab/internal/tui"
	"github.com/numlab/bvplab/internal/variational"
)

var (
	dataDir     string
	step        float64
	tol         float64
	bracketLo   float64
	bracketHi   float64
	boundaryTol float64
	methods     []string
	configFile  string
	preset      string
	showPlot    bool
	svgPath     string
	saveRun     bool
	sweepSteps  []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bvplab",
		Short: "compare shooting, finite-difference, and variational BVP solvers",
		RunE:  runSolve,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "run all three methods and print the comparison table",
		RunE:  runSolve,
	}

	for _, cmd := range []*cobra.Command{rootCmd, solveCmd} {
		cmd.Flags().Float64Var(&step, "h", config.DefaultStep, "grid step size")
		cmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "integration and root-finding tolerance")
		cmd.Flags().Float64Var(&bracketLo, "bracket-lo", config.DefaultBracketLo, "lower bound of the initial-slope bracket")
		cmd.Flags().Float64Var(&bracketHi, "bracket-hi", config.DefaultBracketHi, "upper bound of the initial-slope bracket")
		cmd.Flags().Float64Var(&boundaryTol, "boundary-tol", config.DefaultBoundaryTol, "accepted variational boundary defect")
		cmd.Flags().StringSliceVar(&methods, "methods", nil, "subset of methods to run")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().BoolVar(&showPlot, "plot", false, "render a terminal plot")
		cmd.Flags().StringVar(&svgPath, "svg", "", "export the comparison figure to this SVG file")
		cmd.Flags().BoolVar(&saveRun, "save", false, "persist the run in the data directory")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s h=%g tol=%g\n", name, p.Step, p.Tol)
			}
		},
	}

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "re-solve over a sequence of step sizes and report method agreement",
		RunE:  runConvergence,
	}
	convergenceCmd.Flags().Float64SliceVar(&sweepSteps, "steps", []float64{0.2, 0.1, 0.05, 0.025}, "step sizes to sweep")
	convergenceCmd.Flags().StringSliceVar(&methods, "methods", nil, "subset of methods to run")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "solve and browse the comparison interactively",
		RunE:  runTUI,
	}
	tuiCmd.Flags().Float64Var(&step, "h", config.DefaultStep, "grid step size")
	tuiCmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "integration and root-finding tolerance")
	tuiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, convergenceCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags, with flags
// winning over the file and the file over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if f := cmd.Flags(); f != nil {
		if f.Changed("h") {
			cfg.Step = step
		}
		if f.Changed("tol") {
			cfg.Tol = tol
		}
		if f.Changed("bracket-lo") {
			cfg.BracketLo = bracketLo
		}
		if f.Changed("bracket-hi") {
			cfg.BracketHi = bracketHi
		}
		if f.Changed("boundary-tol") {
			cfg.BoundaryTol = boundaryTol
		}
		if f.Changed("methods") {
			cfg.Methods = methods
		}
		if f.Changed("data") {
			cfg.DataDir = dataDir
		}
	}

	return cfg, nil
}

func buildSolvers(cfg *config.Config) ([]bvp.Solver, error) {
	solvers := make([]bvp.Solver, 0, len(cfg.Methods))
	for _, name := range cfg.Methods {
		switch name {
		case "shooting":
			s := shooting.New()
			s.Bracket = [2]float64{cfg.BracketLo, cfg.BracketHi}
			s.Tol = cfg.Tol
			solvers = append(solvers, s)
		case "finite-diff":
			solvers = append(solvers, fdm.New())
		case "variational":
			v := variational.New()
			v.BoundaryTol = cfg.BoundaryTol
			solvers = append(solvers, v)
		default:
			return nil, fmt.Errorf("unknown method: %s", name)
		}
	}
	if len(solvers) == 0 {
		return nil, fmt.Errorf("no methods selected")
	}
	return solvers, nil
}

// solveAll runs every selected solver sequentially. Any failure aborts
// the comparison; there is no partial-results mode.
func solveAll(cfg *config.Config) (bvp.Grid, []bvp.Solution, error) {
	g, err := bvp.NewGrid(cfg.Step)
	if err != nil {
		return bvp.Grid{}, nil, err
	}

	solvers, err := buildSolvers(cfg)
	if err != nil {
		return bvp.Grid{}, nil, err
	}

	sols := make([]bvp.Solution, 0, len(solvers))
	for _, s := range solvers {
		sol, err := s.Solve(g)
		if err != nil {
			return bvp.Grid{}, nil, fmt.Errorf("%s method failed: %w", s.Name(), err)
		}
		sols = append(sols, sol)
	}
	return g, sols, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, sols, err := solveAll(cfg)
	if err != nil {
		return err
	}

	report.Summary(os.Stdout, g, sols...)
	if err := report.Table(os.Stdout, g, sols...); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Println(report.AsciiPlot(sols...))
	}

	if svgPath != "" {
		if err := report.WriteSVG(svgPath, g, sols...); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
		fmt.Printf("\nfigure written to %s\n", svgPath)
	}

	if saveRun {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Step, cfg.Tol, g, sols)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	solvers, err := buildSolvers(cfg)
	if err != nil {
		return err
	}

	results, err := optim.StepSweep(sweepSteps, solvers)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tPOINTS\tPAIR\tMAX DIFF")
	for _, res := range results {
		pairs := make([]string, 0, len(res.MaxDiff))
		for pair := range res.MaxDiff {
			pairs = append(pairs, pair)
		}
		sort.Strings(pairs)
		for _, pair := range pairs {
			fmt.Fprintf(w, "%g\t%d\t%s\t%.3e\n", res.Step, res.Points, pair, res.MaxDiff[pair])
		}
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, sols, err := solveAll(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(g, sols))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%-24s %s  h=%-6g methods=%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Step,
			len(run.Methods),
		)
	}
	return nil
}

func loadRun(runID string) (bvp.Grid, []bvp.Solution, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return bvp.Grid{}, nil, err
	}

	g, err := bvp.NewGrid(meta.Step)
	if err != nil {
		return bvp.Grid{}, nil, err
	}

	_, sols, err := st.LoadSolutions(runID)
	if err != nil {
		return bvp.Grid{}, nil, err
	}
	return g, sols, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	g, sols, err := loadRun(args[0])
	if err != nil {
		return err
	}

	report.Summary(os.Stdout, g, sols...)
	fmt.Println(report.AsciiPlot(sols...))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	g, sols, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return report.WriteCSV(os.Stdout, g, sols...)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	g, sols, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return report.WriteJSON(os.Stdout, g, sols...)
}
