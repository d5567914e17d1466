package cmd

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/sarchlab/cpusched/config"
	"github.com/sarchlab/cpusched/datarecording"
	"github.com/sarchlab/cpusched/monitoring"
	"github.com/sarchlab/cpusched/report"
	"github.com/sarchlab/cpusched/scheduling"
	"github.com/sarchlab/cpusched/sim"
	"github.com/sarchlab/cpusched/tracing"
	"github.com/sarchlab/cpusched/workload"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

const filenamePrompt = "Input filename (w/ file extension): "

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Schedule the processes of a workload file.",
	Long: "Schedule the processes of a workload file and print the execution " +
		"intervals and waiting time of each process. The file name is asked " +
		"for on the standard input when it is not given.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			atexit.Fatalf("Error loading configuration: %v", err)
		}

		opts, err := optionsFromFlags(cmd, args, cfg)
		if err != nil {
			atexit.Fatalf("Error: %v", err)
		}

		if opts.parallelIDs {
			sim.UseParallelIDGenerator()
		}

		err = execute(cmd.Context(), opts,
			cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			atexit.Fatalf("Error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	defineRunFlags(runCmd)
}

func defineRunFlags(c *cobra.Command) {
	defaults := config.Default()

	c.Flags().StringP("algorithm", "a", "",
		"Override the algorithm of the workload (fcfs, sjf, srtf, rr or 0-3)")
	c.Flags().IntP("quantum", "q", 0,
		"Override the Round-Robin time quantum of the workload")
	c.Flags().StringP("format", "f", defaults.Format,
		"Output format (text, table, gantt or json)")
	c.Flags().Int("precision", defaults.Precision,
		"Decimal digits of the averages")
	c.Flags().String("record", "",
		"Record the execution segments into the given SQLite file")
	c.Flags().String("trace-json", "",
		"Write the execution segments into the given JSON file")
	c.Flags().Bool("monitor", false,
		"Serve the result over HTTP until interrupted")
	c.Flags().Int("monitor-port", 0,
		"Port of the monitoring server, random if 0")
	c.Flags().Bool("open", false,
		"Open the monitoring page in a browser, implies --monitor")
	c.Flags().Bool("no-color", false, "Disable colored output")
	c.Flags().String("url", "", "Fetch the workload over HTTP")
	c.Flags().BoolP("verbose", "v", false,
		"Log every scheduling decision to the standard error")
	c.Flags().Bool("parallel-ids", false,
		"Use globally unique segment IDs instead of sequential ones")
}

type runOptions struct {
	file string
	url  string

	algorithm string
	quantum   int
	// quantumSet tells if the quantum overrides the workload.
	quantumSet bool

	format      report.Format
	precision   int
	record      string
	traceJSON   string
	monitor     bool
	monitorPort int
	open        bool
	noColor     bool
	verbose     bool
	parallelIDs bool
}

// optionsFromFlags merges the flags over the configuration. A flag only
// overrides the configuration if it is given explicitly.
func optionsFromFlags(
	cmd *cobra.Command,
	args []string,
	cfg config.Config,
) (runOptions, error) {
	flags := cmd.Flags()

	opts := runOptions{
		format:      report.Format(cfg.Format),
		precision:   cfg.Precision,
		record:      cfg.Record,
		monitorPort: cfg.MonitorPort,
		noColor:     cfg.NoColor,
	}

	if len(args) > 0 {
		opts.file = args[0]
	}

	opts.url, _ = flags.GetString("url")
	opts.algorithm, _ = flags.GetString("algorithm")
	opts.quantum, _ = flags.GetInt("quantum")
	opts.quantumSet = flags.Changed("quantum")
	opts.traceJSON, _ = flags.GetString("trace-json")
	opts.monitor, _ = flags.GetBool("monitor")
	opts.open, _ = flags.GetBool("open")
	opts.verbose, _ = flags.GetBool("verbose")
	opts.parallelIDs, _ = flags.GetBool("parallel-ids")

	if flags.Changed("format") {
		f, _ := flags.GetString("format")
		opts.format = report.Format(f)
	}

	if flags.Changed("precision") {
		opts.precision, _ = flags.GetInt("precision")
	}

	if flags.Changed("record") {
		opts.record, _ = flags.GetString("record")
	}

	if flags.Changed("monitor-port") {
		opts.monitorPort, _ = flags.GetInt("monitor-port")
	}

	if flags.Changed("no-color") {
		opts.noColor, _ = flags.GetBool("no-color")
	}

	if opts.file != "" && opts.url != "" {
		return opts, errors.New("give either a file or --url, not both")
	}

	format, err := report.ParseFormat(string(opts.format))
	if err != nil {
		return opts, err
	}
	opts.format = format

	if opts.precision < 0 {
		return opts, fmt.Errorf(
			"precision must not be negative, got %d", opts.precision)
	}

	return opts, nil
}

// loadWorkload reads the workload from the URL, the file, or the file named
// on the input, in this order.
func loadWorkload(
	ctx context.Context,
	opts runOptions,
	in io.Reader,
	out io.Writer,
) (*workload.Workload, string, error) {
	if opts.url != "" {
		w, err := workload.Fetch(ctx, nil, opts.url)
		return w, opts.url, err
	}

	file := opts.file
	if file == "" {
		fmt.Fprint(out, filenamePrompt)

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, "", err
		}

		file = strings.TrimSpace(line)
		if file == "" {
			return nil, "", errors.New("no input file given")
		}
	}

	if _, err := os.Stat(file); err != nil {
		return nil, file, fmt.Errorf("%s not found", file)
	}

	w, err := workload.Load(file)

	return w, file, err
}

func applyOverrides(w *workload.Workload, opts runOptions) error {
	if opts.algorithm != "" {
		a, err := scheduling.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return err
		}
		w.Algorithm = a
	}

	if opts.quantumSet {
		w.Quantum = sim.VTime(opts.quantum)
	}

	return nil
}

// execute runs one workload end to end and keeps the monitor up afterwards if
// asked to.
func execute(
	ctx context.Context,
	opts runOptions,
	in io.Reader,
	out, errOut io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var monitor *monitoring.Monitor
	if opts.monitor || opts.open {
		monitor = monitoring.NewMonitor().WithPortNumber(opts.monitorPort)
		monitor.StartServer()
	}

	_, err := simulate(ctx, opts, in, out, errOut, monitor)
	if err != nil {
		return err
	}

	if monitor == nil {
		return nil
	}

	if opts.open {
		if err := monitor.OpenInBrowser(); err != nil {
			fmt.Fprintf(errOut, "Cannot open browser: %v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(errOut, "Serving %s, press Ctrl+C to quit\n", monitor.URL())
	<-ctx.Done()

	return nil
}

// simulate loads the workload, schedules it and writes the report. The
// report is only written if the whole run succeeds, and the recording and
// trace files of a failed run are removed.
func simulate(
	ctx context.Context,
	opts runOptions,
	in io.Reader,
	out, errOut io.Writer,
	monitor *monitoring.Monitor,
) (result *scheduling.Result, err error) {
	w, source, err := loadWorkload(ctx, opts, in, out)
	if err != nil {
		return nil, err
	}

	if err := applyOverrides(w, opts); err != nil {
		return nil, err
	}

	runID := sim.NewRunID()
	clock := sim.NewClock()
	cfg := scheduling.Config{
		RunID:     runID,
		Algorithm: w.Algorithm,
		Quantum:   w.Quantum,
		Clock:     clock,
	}

	if err := cfg.Validate(w.Processes); err != nil {
		return nil, err
	}

	var cleanups []func()
	defer func() {
		if err == nil {
			return
		}

		for _, c := range cleanups {
			c()
		}
	}()

	if opts.verbose {
		logger := log.New(errOut, "", 0)
		clock.AcceptHook(sim.NewClockLogger(logger))
		cfg.Hooks = append(cfg.Hooks, scheduling.NewLogger(logger))
	}

	var bar *monitoring.ProgressBar
	if monitor != nil {
		bar = monitor.CreateProgressBar(source, uint64(len(w.Processes)))
		cfg.Hooks = append(cfg.Hooks, monitoring.NewProgressHook(bar))
	}

	var (
		recorder *datarecording.SQLiteWriter
		tracer   *tracing.DBTracer
	)
	if opts.record != "" {
		recorder, err = datarecording.New(opts.record)
		if err != nil {
			return nil, err
		}

		cleanups = append(cleanups, func() {
			recorder.Close()
			os.Remove(recorder.Filename)
		})

		tracer = tracing.NewDBTracer(clock, recorder, runID)
		cfg.Tracers = append(cfg.Tracers, tracer)
	}

	var jsonTracer *tracing.JSONTracer
	if opts.traceJSON != "" {
		f, err := os.Create(opts.traceJSON)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cleanups = append(cleanups, func() {
			f.Close()
			os.Remove(opts.traceJSON)
		})

		jsonTracer = tracing.NewJSONTracer(clock, f)
		cfg.Tracers = append(cfg.Tracers, jsonTracer)
	}

	result, err = scheduling.Run(cfg, w.Processes)
	if err != nil {
		return nil, err
	}

	if jsonTracer != nil {
		if err := jsonTracer.Finish(); err != nil {
			return nil, err
		}
	}

	if recorder != nil {
		scheduling.RecordResult(recorder, result)
		tracer.Terminate()

		if err := recorder.Close(); err != nil {
			return nil, err
		}

		fmt.Fprintf(errOut, "Recorded run %s into %s\n", runID, recorder.Filename)
	}

	if monitor != nil {
		monitor.RegisterResult(result)
		monitor.CompleteProgressBar(bar)
	}

	if opts.noColor {
		color.NoColor = true
	}

	var buf bytes.Buffer
	err = report.Write(&buf, result, opts.format, report.Options{
		Precision: opts.precision,
		Color:     !opts.noColor,
	})
	if err != nil {
		return nil, err
	}

	_, err = buf.WriteTo(out)

	return result, err
}
