// Package simulation puts a game world together: the tick engine, the map,
// the mass storage devices, the resource tally and the instruments that
// observe them.
package simulation

import (
	"context"
	"fmt"
	"log"

	"github.com/sarchlab/massstorage/datarecording"
	"github.com/sarchlab/massstorage/massstorage"
	"github.com/sarchlab/massstorage/monitoring"
	"github.com/sarchlab/massstorage/resourcecount"
	"github.com/sarchlab/massstorage/savegame"
	"github.com/sarchlab/massstorage/sim"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/tracing"
	"github.com/sarchlab/massstorage/world"
)

// A Simulation provides the services required to run a game world.
type Simulation struct {
	id     string
	logger *log.Logger

	engine   *sim.SerialEngine
	world    *world.Map
	feedback *world.Feedback
	powerNet *world.PowerNet
	catalog  *thing.Catalog
	counter  *resourcecount.Counter

	dataRecorder datarecording.DataRecorder
	dbTracer     *tracing.DBTracer
	countTracer  *tracing.CountTracer
	monitor      *monitoring.Monitor
	progress     *monitoring.ProgressHook

	components    []sim.Component
	compNameIndex map[string]int
	devices       []*massstorage.Comp
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Engine returns the engine that drives the game.
func (s *Simulation) Engine() *sim.SerialEngine {
	return s.engine
}

// Map returns the map of the game.
func (s *Simulation) Map() *world.Map {
	return s.world
}

// Feedback returns the sink of player messages and sounds.
func (s *Simulation) Feedback() *world.Feedback {
	return s.feedback
}

// PowerNet returns the power net the devices are connected to.
func (s *Simulation) PowerNet() *world.PowerNet {
	return s.powerNet
}

// Catalog returns the kinds known to the world.
func (s *Simulation) Catalog() *thing.Catalog {
	return s.catalog
}

// ResourceCounter returns the colony-wide resource tally.
func (s *Simulation) ResourceCounter() *resourcecount.Counter {
	return s.counter
}

// DataRecorder returns the data recorder, or nil if recording is disabled.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// DBTracer returns the tracer that records device events, or nil if
// recording is disabled.
func (s *Simulation) DBTracer() *tracing.DBTracer {
	return s.dbTracer
}

// CountTracer returns the tracer that sums up device events.
func (s *Simulation) CountTracer() *tracing.CountTracer {
	return s.countTracer
}

// Monitor returns the monitor, or nil if monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// GetComponentByName returns the component with the given name, or nil if
// there is no such component.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// Devices returns the mass storage devices, in the order they were added.
func (s *Simulation) Devices() []*massstorage.Comp {
	return s.devices
}

// Device returns the device with the given name.
func (s *Simulation) Device(name string) (*massstorage.Comp, bool) {
	for _, d := range s.devices {
		if d.Name() == name {
			return d, true
		}
	}

	return nil, false
}

// AddDevice builds a mass storage device, spawns it on the map and lets the
// engine tick it.
func (s *Simulation) AddDevice(
	name string,
	position world.Cell,
	spec massstorage.Spec,
	colonist bool,
) (*massstorage.Comp, error) {
	if _, found := s.compNameIndex[name]; found {
		return nil, fmt.Errorf("component %s already registered", name)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("device %s: %w", name, err)
	}

	d := massstorage.MakeBuilder().
		WithSpec(spec).
		WithWorld(s.world).
		WithPower(s.powerNet.Connect()).
		WithClock(s.engine).
		WithNotifier(s.feedback).
		WithSoundPlayer(s.feedback).
		WithCatalog(s.catalog).
		WithPosition(position).
		WithColonist(colonist).
		Build(name)

	if err := d.SpawnSetup(s.world); err != nil {
		return nil, fmt.Errorf("device %s: %w", name, err)
	}

	tracing.CollectTrace(d, s.engine, s.countTracer)
	if s.dbTracer != nil {
		tracing.CollectTrace(d, s.engine, s.dbTracer)
	}

	s.RegisterComponent(d)
	s.devices = append(s.devices, d)

	return d, nil
}

// RemoveDevice ejects the contents of a device around it and takes the device
// off the map. The device is kept but no longer ticks.
func (s *Simulation) RemoveDevice(name string) error {
	d, found := s.Device(name)
	if !found {
		return fmt.Errorf("no device named %s", name)
	}

	if !d.Spawned() {
		return fmt.Errorf("device %s is not on the map", name)
	}

	d.DeSpawn(s.world)

	return nil
}

// Tick runs one game tick of the world. The power net settles first, then
// the devices run, then the tally is refreshed.
func (s *Simulation) Tick() bool {
	progress := s.powerNet.Tick()

	for _, d := range s.devices {
		if d.Spawned() {
			progress = d.Tick() || progress
		}
	}

	progress = s.counter.Tick() || progress

	return progress
}

// Run advances the game by the given number of ticks.
func (s *Simulation) Run(ticks uint64) error {
	if s.monitor != nil {
		bar := s.monitor.CreateProgressBar(
			fmt.Sprintf("Run %d ticks", ticks), ticks)
		defer s.monitor.CompleteProgressBar(bar)

		s.progress.Track(bar)
		defer s.progress.Track(nil)
	}

	return s.engine.Run(ticks)
}

func (s *Simulation) persistables() []savegame.Persistable {
	out := make([]savegame.Persistable, 0, len(s.devices))
	for _, d := range s.devices {
		out = append(out, d)
	}

	return out
}

// Save writes the state of every device into the store.
func (s *Simulation) Save(
	ctx context.Context,
	store *savegame.Store,
	name string,
) error {
	return store.Save(ctx, name, s.engine.TicksGame(), s.persistables())
}

// Load restores the state of every device from the store.
func (s *Simulation) Load(
	ctx context.Context,
	store *savegame.Store,
	name string,
) error {
	return store.Load(ctx, name, s.persistables())
}

// Terminate ends the game, which flushes the recorded data, and closes the
// recorder.
func (s *Simulation) Terminate() {
	s.engine.Finished()

	if s.dataRecorder != nil {
		err := s.dataRecorder.Close()
		if err != nil {
			s.logger.Printf("close data recorder: %v", err)
		}
	}
}
