package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/dispatch-sim/sim"
	"github.com/inference-sim/dispatch-sim/sim/report"
	"github.com/inference-sim/dispatch-sim/sim/trace"
	"github.com/inference-sim/dispatch-sim/sim/workload"
)

var (
	// Process sources (exactly one)
	processesPath string // CSV process set
	workloadPath  string // YAML workload spec
	scenarioName  string // built-in generator preset
	presetName    string // workload preset from defaults.yaml
	interactive   bool   // prompt on stdin
	scenarioCount int    // processes generated for --scenario
	seed          int64  // overrides the workload seed when set

	// Run configuration
	algorithmsFlag   string // "all" or comma-separated policy names
	quantum          int64  // RR time slice
	traceLevel       string // dispatch trace verbosity
	parallel         bool   // run policies concurrently
	verify           bool   // check timeline invariants after each run
	defaultsFilePath string // path to defaults.yaml
	logLevel         string // log verbosity level

	// Outputs
	csvPath         string
	plotPath        string
	metricsPlotPath string
	showGantt       bool
	showTicks       bool
	showTable       bool
	showSummary     bool
	showCompare     bool
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "dispatch-sim",
	Short: "Discrete-event simulator for single-CPU dispatch policies",
}

// runCmd simulates the selected policies over one process set
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dispatch simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		cfg, err := loadRunDefaults(defaultsFilePath, cmd.Flags().Changed("defaults-filepath"))
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		// Flags win over defaults.yaml only when the user set them.
		if !cmd.Flags().Changed("quantum") && cfg.Defaults.Quantum > 0 {
			quantum = cfg.Defaults.Quantum
		}
		if !cmd.Flags().Changed("algorithms") && cfg.Defaults.Algorithms != "" {
			algorithmsFlag = cfg.Defaults.Algorithms
		}
		if !cmd.Flags().Changed("trace-level") && cfg.Defaults.TraceLevel != "" {
			traceLevel = cfg.Defaults.TraceLevel
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q; valid: none, decisions", traceLevel)
		}

		algs, err := sim.ParseAlgorithms(algorithmsFlag)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		var procs []sim.Process
		if interactive {
			var typed int64
			askQuantum := containsRR(algs) && !cmd.Flags().Changed("quantum")
			procs, typed, err = readInteractive(os.Stdin, os.Stdout, askQuantum)
			if err != nil {
				logrus.Fatalf("Interactive input failed: %v", err)
			}
			if askQuantum {
				quantum = typed
			}
		} else {
			src := processSource{
				processesPath: processesPath,
				workloadPath:  workloadPath,
				scenario:      scenarioName,
				preset:        presetName,
				count:         scenarioCount,
				seed:          seed,
				seedChanged:   cmd.Flags().Changed("seed"),
			}
			procs, err = src.load(cfg)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		ps, err := sim.NewProcessSet(procs)
		if err != nil {
			logrus.Fatalf("Invalid process set: %v", err)
		}

		logrus.Infof("Starting simulation: %d processes, algorithms=%v, quantum=%d", ps.Len(), algs, quantum)
		startTime := time.Now()

		results, err := sim.RunAll(cmd.Context(), ps, algs, sim.RunConfig{
			Quantum:    quantum,
			TraceLevel: trace.TraceLevel(traceLevel),
			Parallel:   parallel,
		})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if verify {
			if err := verifyResults(results); err != nil {
				logrus.Fatalf("Verification failed: %v", err)
			}
			logrus.Infof("Verified %d timeline(s)", len(results))
		}

		opts := reportOptions{
			summary: showSummary,
			gantt:   showGantt,
			ticks:   showTicks,
			table:   showTable,
			compare: showCompare,
			trace:   trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions,
		}
		if err := writeReports(os.Stdout, results, opts); err != nil {
			logrus.Fatalf("Writing reports failed: %v", err)
		}
		if err := writeArtifacts(results, csvPath, plotPath, metricsPlotPath); err != nil {
			logrus.Fatalf("%v", err)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// setLogLevel configures logrus from a level name.
func setLogLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", name)
	}
	logrus.SetLevel(level)
}

// loadRunDefaults reads defaults.yaml. A missing file at the default path
// yields an empty Config; an explicitly given path must exist.
func loadRunDefaults(path string, explicit bool) (*Config, error) {
	cfg, err := loadDefaultsConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("No defaults file at %s; using built-in defaults", path)
		return &Config{}, nil
	}
	return nil, err
}

func containsRR(algs []sim.Algorithm) bool {
	for _, a := range algs {
		if a == sim.RR {
			return true
		}
	}
	return false
}

// processSource names where the process set comes from. Exactly one of
// processesPath, workloadPath, scenario, preset must be set.
type processSource struct {
	processesPath string
	workloadPath  string
	scenario      string
	preset        string
	count         int
	seed          int64
	seedChanged   bool
}

func (s processSource) load(cfg *Config) ([]sim.Process, error) {
	set := 0
	for _, v := range []string{s.processesPath, s.workloadPath, s.scenario, s.preset} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of --processes, --workload, --scenario, --preset or --interactive is required (got %d)", set)
	}

	if s.processesPath != "" {
		procs, err := workload.LoadProcessesCSVFile(s.processesPath)
		if err != nil {
			return nil, fmt.Errorf("loading processes: %w", err)
		}
		logrus.Infof("Loaded %d processes from %s", len(procs), s.processesPath)
		return procs, nil
	}

	var spec *workload.WorkloadSpec
	var err error
	switch {
	case s.workloadPath != "":
		spec, err = workload.LoadWorkloadSpec(s.workloadPath)
	case s.scenario != "":
		spec, err = workload.NewScenario(s.scenario, s.seed, s.count)
	default:
		spec, err = cfg.Preset(s.preset)
	}
	if err != nil {
		return nil, err
	}
	if s.seedChanged {
		spec.Seed = s.seed
	}
	return workload.GenerateProcesses(spec)
}

// reportOptions selects the text reports written per result.
type reportOptions struct {
	summary bool
	gantt   bool
	ticks   bool
	table   bool
	compare bool
	trace   bool
}

// writeReports renders the selected text reports for every result, then
// the side-by-side comparison when more than one policy ran.
func writeReports(w io.Writer, results []*sim.Result, opts reportOptions) error {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if opts.summary {
			if err := report.Summary(w, res); err != nil {
				return err
			}
		}
		if opts.gantt {
			if err := report.Gantt(w, res.Timeline); err != nil {
				return err
			}
		}
		if opts.ticks {
			if err := report.Ticks(w, res.Timeline); err != nil {
				return err
			}
		}
		if opts.table {
			report.Table(w, res)
		}
		if opts.trace {
			s := trace.Summarize(res.Trace)
			fmt.Fprintf(w, "Trace: %d dispatches, %d preemptions, %d completions, %d idle periods (%d ticks)\n",
				s.Dispatches, s.Preemptions, s.Completions, s.IdlePeriods, s.IdleTicks)
		}
	}
	if opts.compare && len(results) > 1 {
		fmt.Fprintln(w)
		report.Compare(w, results)
	}
	return nil
}

// writeArtifacts writes the optional CSV and chart files. Empty paths are skipped.
func writeArtifacts(results []*sim.Result, csvPath, plotPath, metricsPlotPath string) error {
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("creating CSV output: %w", err)
		}
		if err := report.WriteCSV(f, results); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing CSV output: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing CSV output: %w", err)
		}
		logrus.Infof("Wrote results to %s", csvPath)
	}
	if plotPath != "" {
		if err := report.PlotGantt(plotPath, results); err != nil {
			return err
		}
	}
	if metricsPlotPath != "" {
		if err := report.PlotMetrics(metricsPlotPath, results); err != nil {
			return err
		}
	}
	return nil
}

// verifyResults checks every timeline for overlap, ordering and gaps.
func verifyResults(results []*sim.Result) error {
	for _, res := range results {
		if err := res.Timeline.Validate(); err != nil {
			return fmt.Errorf("%s: %w", res.Algorithm, err)
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&processesPath, "processes", "", "CSV file of id,arrival,burst rows")
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "YAML workload spec to generate processes from")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", fmt.Sprintf("Built-in workload scenario %v", workload.ScenarioNames()))
	runCmd.Flags().StringVar(&presetName, "preset", "", "Workload preset named in the defaults file")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Read processes from stdin")
	runCmd.Flags().IntVar(&scenarioCount, "count", 10, "Number of processes generated for --scenario")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation (overrides the spec's seed when set)")

	runCmd.Flags().StringVar(&algorithmsFlag, "algorithms", "all", "Comma-separated policies (fcfs, sjf, srtf, rr) or all")
	runCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round Robin time quantum in ticks")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Dispatch trace level (none, decisions)")
	runCmd.Flags().BoolVar(&parallel, "parallel", false, "Run policies concurrently")
	runCmd.Flags().BoolVar(&verify, "verify", false, "Validate every timeline after the run")
	runCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to default config")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write per-process results to this CSV file")
	runCmd.Flags().StringVar(&plotPath, "plot", "", "Write a timeline chart (.png, .svg, .pdf)")
	runCmd.Flags().StringVar(&metricsPlotPath, "metrics-plot", "", "Write an averages bar chart (.png, .svg, .pdf)")
	runCmd.Flags().BoolVar(&showSummary, "summary", true, "Print the per-policy summary")
	runCmd.Flags().BoolVar(&showGantt, "gantt", true, "Print a text Gantt chart")
	runCmd.Flags().BoolVar(&showTicks, "ticks", false, "Print the occupant of every tick")
	runCmd.Flags().BoolVar(&showTable, "table", false, "Print the per-process table")
	runCmd.Flags().BoolVar(&showCompare, "compare", true, "Print a comparison table when several policies run")

	rootCmd.AddCommand(runCmd)
}
