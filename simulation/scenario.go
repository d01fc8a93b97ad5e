package simulation

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/massstorage/massstorage"
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

// A Scenario describes the starting state of a game world.
type Scenario struct {
	Name string    `yaml:"name"`
	Map  MapConfig `yaml:"map"`

	// CatalogFile is a YAML catalog, relative to the scenario file. Defs are
	// added after the file is loaded.
	CatalogFile string       `yaml:"catalog_file"`
	Defs        []*thing.Def `yaml:"defs"`

	Zones        []ZoneConfig        `yaml:"zones"`
	Temperatures []TemperatureConfig `yaml:"temperatures"`
	Devices      []DeviceConfig      `yaml:"devices"`
	Items        []ItemConfig        `yaml:"items"`

	dir string
}

// MapConfig sets up the map.
type MapConfig struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	Temperature   *float64 `yaml:"temperature"`
	PowerCapacity *float64 `yaml:"power_capacity"`
	StartAbsTick  uint64   `yaml:"start_abs_tick"`
}

// ZoneConfig is a rectangular stockpile. An empty Allow list allows every
// kind of the catalog.
type ZoneConfig struct {
	Name     string     `yaml:"name"`
	From     world.Cell `yaml:"from"`
	To       world.Cell `yaml:"to"`
	Allow    []string   `yaml:"allow"`
	Priority int        `yaml:"priority"`
}

// TemperatureConfig overrides the temperature of one cell.
type TemperatureConfig struct {
	At    world.Cell `yaml:"at"`
	Value float64    `yaml:"value"`
}

// DeviceConfig places a mass storage device. Spec holds the fields that
// differ from the stock device.
type DeviceConfig struct {
	Name        string          `yaml:"name"`
	Position    world.Cell      `yaml:"position"`
	NonColonist bool            `yaml:"non_colonist"`
	Spec        yaml.Node       `yaml:"spec"`
	Contents    *ContentsConfig `yaml:"contents"`
}

// ContentsConfig is what a device holds at the start of the game.
type ContentsConfig struct {
	Kind        string  `yaml:"kind"`
	Count       int64   `yaml:"count"`
	RotProgress float64 `yaml:"rot_progress"`
}

// ItemConfig is a stack lying on the map at the start of the game.
type ItemConfig struct {
	Kind  string     `yaml:"kind"`
	Count int        `yaml:"count"`
	At    world.Cell `yaml:"at"`
}

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	sc.dir = filepath.Dir(path)

	return sc, nil
}

// ParseScenario parses a YAML scenario document. A catalog file is resolved
// against the working directory.
func ParseScenario(raw []byte) (*Scenario, error) {
	sc := &Scenario{}

	if err := yaml.Unmarshal(raw, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// Catalog builds the kinds the scenario refers to.
func (sc *Scenario) Catalog() (*thing.Catalog, error) {
	c, err := thing.NewCatalog()
	if err != nil {
		return nil, err
	}

	if sc.CatalogFile != "" {
		path := sc.CatalogFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(sc.dir, path)
		}

		c, err = thing.LoadCatalog(path)
		if err != nil {
			return nil, fmt.Errorf("scenario catalog: %w", err)
		}
	}

	for _, d := range sc.Defs {
		if err := c.Add(d); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// DeviceSpec returns the spec of a device: the stock values overridden by
// what the scenario sets.
func (d DeviceConfig) DeviceSpec() (massstorage.Spec, error) {
	spec := massstorage.Defaults()

	if d.Spec.Kind != 0 {
		if err := d.Spec.Decode(&spec); err != nil {
			return spec, fmt.Errorf("device %s spec: %w", d.Name, err)
		}
	}

	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("device %s spec: %w", d.Name, err)
	}

	return spec, nil
}

// Configure applies the map settings of the scenario to a builder.
func (sc *Scenario) Configure(b Builder) (Builder, error) {
	catalog, err := sc.Catalog()
	if err != nil {
		return b, err
	}

	b = b.WithCatalog(catalog).WithStartAbsTick(sc.Map.StartAbsTick)

	if sc.Map.Width != 0 || sc.Map.Height != 0 {
		if sc.Map.Width <= 0 || sc.Map.Height <= 0 {
			return b, fmt.Errorf("map size %dx%d is invalid",
				sc.Map.Width, sc.Map.Height)
		}

		b = b.WithMapSize(sc.Map.Width, sc.Map.Height)
	}

	if sc.Map.PowerCapacity != nil {
		b = b.WithPowerCapacity(*sc.Map.PowerCapacity)
	}

	return b, nil
}

// Populate puts the zones, devices and items of the scenario into a freshly
// built simulation.
func (sc *Scenario) Populate(s *Simulation) error {
	if sc.Map.Temperature != nil {
		s.world.SetBaseTemperature(*sc.Map.Temperature)
	}

	for _, t := range sc.Temperatures {
		s.world.SetTemperature(t.At, t.Value)
	}

	for _, z := range sc.Zones {
		if err := sc.addZone(s, z); err != nil {
			return err
		}
	}

	for _, d := range sc.Devices {
		if err := sc.addDevice(s, d); err != nil {
			return err
		}
	}

	for _, it := range sc.Items {
		if err := sc.addItem(s, it); err != nil {
			return err
		}
	}

	return nil
}

func (sc *Scenario) addZone(s *Simulation, z ZoneConfig) error {
	rect := world.CellRect{
		MinX: min(z.From.X, z.To.X),
		MinZ: min(z.From.Z, z.To.Z),
		MaxX: max(z.From.X, z.To.X),
		MaxZ: max(z.From.Z, z.To.Z),
	}

	zone := world.NewStockpile(z.Name, rect.Cells()...)

	if len(z.Allow) == 0 {
		zone.Settings.Filter.SetAllowAll(s.catalog.All())
	}

	for _, name := range z.Allow {
		def, found := s.catalog.Named(name)
		if !found {
			return fmt.Errorf("zone %s: unknown kind %s", z.Name, name)
		}

		zone.Settings.Filter.SetAllow(def, true)
	}

	if z.Priority != 0 {
		zone.Settings.Priority = thing.StoragePriority(z.Priority)
	}

	return s.world.AddZone(zone)
}

func (sc *Scenario) addDevice(s *Simulation, cfg DeviceConfig) error {
	spec, err := cfg.DeviceSpec()
	if err != nil {
		return err
	}

	d, err := s.AddDevice(cfg.Name, cfg.Position, spec, !cfg.NonColonist)
	if err != nil {
		return err
	}

	if cfg.Contents == nil || cfg.Contents.Count <= 0 {
		return nil
	}

	def, found := s.catalog.Named(cfg.Contents.Kind)
	if !found {
		return fmt.Errorf("device %s: unknown kind %s",
			cfg.Name, cfg.Contents.Kind)
	}

	d.State.StoredDef = def
	d.State.Count.Set(cfg.Contents.Count)
	d.State.RotProgress = cfg.Contents.RotProgress

	return nil
}

func (sc *Scenario) addItem(s *Simulation, it ItemConfig) error {
	def, found := s.catalog.Named(it.Kind)
	if !found {
		return fmt.Errorf("item at %s: unknown kind %s", it.At, it.Kind)
	}

	if it.Count <= 0 {
		return fmt.Errorf("item at %s: count must be > 0", it.At)
	}

	if !s.world.SpawnDirect(thing.MakeStack(def, it.Count), it.At) {
		return fmt.Errorf("item at %s: cannot spawn %s", it.At, it.Kind)
	}

	return nil
}

// BuildFromScenario builds a simulation and populates it with the scenario.
func BuildFromScenario(b Builder, sc *Scenario) (*Simulation, error) {
	b, err := sc.Configure(b)
	if err != nil {
		return nil, err
	}

	s := b.Build()

	if err := sc.Populate(s); err != nil {
		s.Terminate()
		return nil, err
	}

	return s, nil
}
