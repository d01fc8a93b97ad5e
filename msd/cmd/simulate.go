package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/massstorage/massstorage"
	"github.com/sarchlab/massstorage/savegame"
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/simulation"
)

type simulateOptions struct {
	scenario    string
	ticks       uint64
	monitor     bool
	monitorPort int
	openMonitor bool
	record      bool
	output      string
	saveFile    string
	saveName    string
	loadName    string
	devMode     bool
	debug       []string
	tickLog     uint64
	hold        bool
	parallelIDs bool
}

var simOpts simulateOptions

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scenario for a number of ticks.",
	Long: "`simulate --scenario colony.yaml --ticks 60000` builds the world " +
		"described by the scenario, runs it and prints what the devices hold.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := simOpts
		opts.applyEnv(cmd)

		return runSimulation(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	f := simulateCmd.Flags()
	f.StringVar(&simOpts.scenario, "scenario", "", "Scenario file to run.")
	f.Uint64Var(&simOpts.ticks, "ticks", uint64(sim.TicksPerDay),
		"Number of game ticks to run.")
	f.BoolVar(&simOpts.monitor, "monitor", false,
		"Serve the monitoring API while the game runs.")
	f.IntVar(&simOpts.monitorPort, "monitor-port", 0,
		"Port of the monitoring server. Defaults to "+EnvMonitorPort+
			" or a random port.")
	f.BoolVar(&simOpts.openMonitor, "open-monitor", false,
		"Open the monitoring server in a browser. Implies --monitor.")
	f.BoolVar(&simOpts.record, "record", false,
		"Record the device events into a SQLite database.")
	f.StringVar(&simOpts.output, "output", "",
		"Name of the recording database, without the .sqlite3 suffix.")
	f.StringVar(&simOpts.saveFile, "save-file", "",
		"Savegame database to load from and save to.")
	f.StringVar(&simOpts.saveName, "save", "",
		"Name of the save written after the run.")
	f.StringVar(&simOpts.loadName, "load", "",
		"Name of the save the devices are restored from before the run.")
	f.BoolVar(&simOpts.devMode, "dev", false,
		"Enable the debug commands. Defaults to "+EnvDevMode+".")
	f.StringArrayVar(&simOpts.debug, "debug", nil,
		"Run a debug command before the game starts, as DEVICE:NUMBER. "+
			"Use the commands subcommand to list the numbers.")
	f.Uint64Var(&simOpts.tickLog, "tick-log", 0,
		"Log the tick counters every given number of ticks.")
	f.BoolVar(&simOpts.hold, "hold", false,
		"Keep the process alive after the run so the monitor can be used.")
	f.BoolVar(&simOpts.parallelIDs, "parallel-ids", false,
		"Give items globally unique IDs instead of sequential ones. Runs "+
			"of the same scenario no longer produce the same IDs.")

	_ = simulateCmd.MarkFlagRequired("scenario")
}

func (o *simulateOptions) applyEnv(cmd *cobra.Command) {
	if !cmd.Flags().Changed("dev") {
		o.devMode = envBool(EnvDevMode)
	}

	if !cmd.Flags().Changed("monitor-port") {
		o.monitorPort = envInt(EnvMonitorPort, 0)
	}

	if o.openMonitor || o.hold {
		o.monitor = true
	}
}

func (o simulateOptions) builder(logger *log.Logger) simulation.Builder {
	b := simulation.MakeBuilder().
		WithLogger(logger).
		WithTickLogInterval(sim.Interval(o.tickLog))

	if !o.monitor {
		b = b.WithoutMonitoring()
	} else if o.monitorPort > 0 {
		b = b.WithMonitorPort(o.monitorPort)
	}

	if !o.record {
		b = b.WithoutRecording()
	} else if o.output != "" {
		b = b.WithOutputFileName(o.output)
	}

	return b
}

func buildScenario(
	path string,
	b simulation.Builder,
) (*simulation.Simulation, error) {
	sc, err := simulation.LoadScenario(path)
	if err != nil {
		return nil, err
	}

	return simulation.BuildFromScenario(b, sc)
}

func runSimulation(
	ctx context.Context,
	out io.Writer,
	opts simulateOptions,
) error {
	if (opts.saveName != "" || opts.loadName != "") && opts.saveFile == "" {
		return fmt.Errorf("--save and --load need --save-file")
	}

	if len(opts.debug) > 0 && !opts.devMode {
		return fmt.Errorf("debug commands need dev mode")
	}

	if opts.parallelIDs {
		sim.UseParallelIDGenerator()
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	s, err := buildScenario(opts.scenario, opts.builder(logger))
	if err != nil {
		return err
	}
	defer s.Terminate()

	var store *savegame.Store
	if opts.saveFile != "" {
		store, err = savegame.Open(opts.saveFile)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	if opts.loadName != "" {
		if err := s.Load(ctx, store, opts.loadName); err != nil {
			return err
		}
	}

	for _, d := range opts.debug {
		if err := runDebugCommand(s, d); err != nil {
			return err
		}
	}

	if opts.openMonitor {
		if err := browser.OpenURL(s.Monitor().URL()); err != nil {
			logger.Printf("cannot open the monitor: %v", err)
		}
	}

	from := s.Engine().TicksGame()

	if err := s.Run(opts.ticks); err != nil {
		return err
	}

	printReport(out, s, from, opts.ticks)

	if opts.saveName != "" {
		if err := s.Save(ctx, store, opts.saveName); err != nil {
			return err
		}

		fmt.Fprintf(out, "Saved %s at tick %d\n",
			opts.saveName, s.Engine().TicksGame())
	}

	if opts.hold {
		fmt.Fprintf(out, "Monitor running at %s, press Ctrl+C to quit\n",
			s.Monitor().URL())
		<-ctx.Done()
	}

	return nil
}

func parseDebugFlag(v string) (device string, number int, err error) {
	i := strings.LastIndex(v, ":")
	if i <= 0 || i == len(v)-1 {
		return "", 0, fmt.Errorf("debug command %q is not DEVICE:NUMBER", v)
	}

	number, err = strconv.Atoi(v[i+1:])
	if err != nil || number < 1 {
		return "", 0, fmt.Errorf("debug command %q has a bad number", v)
	}

	return v[:i], number, nil
}

func runDebugCommand(s *simulation.Simulation, v string) error {
	name, number, err := parseDebugFlag(v)
	if err != nil {
		return err
	}

	d, found := s.Device(name)
	if !found {
		return fmt.Errorf("no device named %s", name)
	}

	commands := d.Commands(true)
	if number > len(commands) {
		return fmt.Errorf("device %s has %d commands", name, len(commands))
	}

	commands[number-1].Action()

	return nil
}

func printReport(
	out io.Writer,
	s *simulation.Simulation,
	from, ticks uint64,
) {
	now := s.Engine().TicksGame()

	fmt.Fprintf(out, "Ran to tick %d (absolute %d)\n", now, s.Engine().TicksAbs())

	for _, d := range s.Devices() {
		printDevice(out, d)

		if d.Spawned() {
			printCycles(out, d, from, ticks, now)
		}
	}

	fmt.Fprintln(out, "Resources:")
	for _, e := range s.ResourceCounter().Entries() {
		fmt.Fprintf(out, "  %-20s %d\n", e.Kind, e.Count)
	}

	fmt.Fprintln(out, "Device events:")
	for _, e := range s.CountTracer().Summaries() {
		fmt.Fprintf(out, "  %-8s %-20s %d\n", e.What, e.Kind, e.Items)
	}

	for _, m := range s.Feedback().Messages() {
		fmt.Fprintf(out, "Message: %s\n", m.Text)
	}
}

func printDevice(out io.Writer, d *massstorage.Comp) {
	state := "on the map"
	power := d.PowerOutput()

	if !d.Spawned() {
		state = "removed"
		power = 0
	}

	fmt.Fprintf(out, "%s at %s, %s, power %.0f W\n",
		d.Name(), d.Position(), state, power)

	for _, line := range strings.Split(d.InspectString(), "\n") {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func printCycles(
	out io.Writer,
	d *massstorage.Comp,
	from, ticks, now uint64,
) {
	cycle := d.Spec.CycleInterval

	next := now
	if !cycle.Due(now) {
		next = cycle.NextDue(now)
	}

	fmt.Fprintf(out, "  Storage cycles in this run: %d, next at tick %d\n",
		cycle.RunsIn(from, ticks), next)
}
