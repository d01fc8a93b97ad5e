package simulation

import (
	"log"
	"os"

	"github.com/rs/xid"
	"github.com/sarchlab/massstorage/datarecording"
	"github.com/sarchlab/massstorage/massstorage"
	"github.com/sarchlab/massstorage/monitoring"
	"github.com/sarchlab/massstorage/resourcecount"
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/tracing"
	"github.com/sarchlab/massstorage/world"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	logger         *log.Logger
	catalog        *thing.Catalog
	mapWidth       int
	mapHeight      int
	startAbsTick   uint64
	powerCapacity  float64
	tickLogEvery   sim.Interval
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:     true,
		recordingOn:   true,
		mapWidth:      50,
		mapHeight:     50,
		powerCapacity: 1e6,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutRecording disables the SQLite event recording.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithLogger sets the logger shared by the map, the hooks and the devices.
func (b Builder) WithLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithCatalog sets the kinds known to the world.
func (b Builder) WithCatalog(c *thing.Catalog) Builder {
	b.catalog = c
	return b
}

// WithMapSize sets the size of the map.
func (b Builder) WithMapSize(width, height int) Builder {
	b.mapWidth = width
	b.mapHeight = height

	return b
}

// WithStartAbsTick sets the absolute tick at which the game starts.
func (b Builder) WithStartAbsTick(tick uint64) Builder {
	b.startAbsTick = tick
	return b
}

// WithPowerCapacity sets the power the map's power net can supply.
func (b Builder) WithPowerCapacity(w float64) Builder {
	b.powerCapacity = w
	return b
}

// WithTickLogInterval logs the tick counters every given number of ticks. 0
// disables the log.
func (b Builder) WithTickLogInterval(every sim.Interval) Builder {
	b.tickLogEvery = every
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file cannot be set when recording is disabled")
	}

	if b.powerCapacity < 0 {
		panic("power capacity must be >= 0")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		compNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	s.logger = b.logger
	if s.logger == nil {
		s.logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	s.catalog = b.catalog
	if s.catalog == nil {
		s.catalog, _ = thing.NewCatalog()
	}

	s.engine = sim.NewSerialEngine().WithStartAbsTick(b.startAbsTick)
	s.world = world.NewMap(b.mapWidth, b.mapHeight, s.logger)
	s.feedback = world.NewFeedback(s.logger)

	s.powerNet = world.NewPowerNet(b.powerCapacity)

	s.counter = resourcecount.NewCounter(
		"ResourceCounter", s.world, s.catalog, s.engine)
	s.counter.AcceptHook(massstorage.NewResourceCountHook(s.logger))

	if b.tickLogEvery > 0 {
		s.engine.AcceptHook(sim.NewTickLogger(s.logger, b.tickLogEvery))
	}

	s.countTracer = tracing.NewCountTracer()

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "msd_sim_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.dbTracer = tracing.NewDBTracer(s.dataRecorder)
		s.engine.RegisterSimulationEndHandler(s.dbTracer)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterTally(s.counter)
		s.monitor.RegisterEventSummarizer(s.countTracer)
		s.monitor.StartServer()

		s.progress = monitoring.NewProgressHook()
		s.engine.AcceptHook(s.progress)
	}

	s.RegisterComponent(s.counter)
	s.engine.RegisterTicker(s)

	return s
}
