package massstorage

import (
	"encoding/json"
	"fmt"

	"github.com/sarchlab/massstorage/thing"
)

// Keys of the persisted record of a device.
const (
	KeyThingCount  = "thingCount"
	KeyRotProgress = "rotProgress"
	KeyStoredDef   = "storedDef"
	KeySettings    = "settings"
)

// Serialize returns the persisted record of the device.
func (c *Comp) Serialize() (map[string]any, error) {
	s := &c.State

	storedDef := ""
	if s.StoredDef != nil {
		storedDef = s.StoredDef.Name
	}

	rec := map[string]any{
		KeyThingCount:  s.Count.Raw(),
		KeyRotProgress: s.RotProgress,
		KeyStoredDef:   storedDef,
	}

	if s.Settings != nil {
		q := s.Settings.Filter.AllowedQualities()
		rec[KeySettings] = map[string]any{
			"priority":   int(s.Settings.Priority),
			"allowed":    s.Settings.Filter.AllowedDefNames(),
			"qualityMin": int(q.Min),
			"qualityMax": int(q.Max),
		}
	}

	return rec, nil
}

// Deserialize restores the device from a persisted record. Kind names are
// resolved through the catalog of the device. Missing keys keep the current
// values.
func (c *Comp) Deserialize(rec map[string]any) error {
	s := &c.State

	if v, ok := rec[KeyThingCount]; ok {
		n, err := toInt64(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyThingCount, err)
		}

		s.Count.Set(n)
	}

	if v, ok := rec[KeyRotProgress]; ok {
		f, err := toFloat64(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyRotProgress, err)
		}

		s.RotProgress = f
	}

	if v, ok := rec[KeyStoredDef]; ok {
		def, err := c.resolveDef(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyStoredDef, err)
		}

		s.StoredDef = def
	}

	if v, ok := rec[KeySettings]; ok {
		if err := c.restoreSettings(v); err != nil {
			return fmt.Errorf("%s: %w", KeySettings, err)
		}
	}

	if s.StoredDef == nil {
		s.Count.Set(0)
	}

	return nil
}

func (c *Comp) resolveDef(v any) (*thing.Def, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected a kind name, got %T", v)
	}

	if name == "" {
		return nil, nil
	}

	if c.Catalog == nil {
		return nil, fmt.Errorf("no catalog to resolve %q", name)
	}

	def, ok := c.Catalog.Named(name)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", name)
	}

	return def, nil
}

func (c *Comp) restoreSettings(v any) error {
	rec, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a record, got %T", v)
	}

	settings := thing.NewStorageSettings()
	if c.State.Settings != nil {
		settings.Parent = c.State.Settings.Parent
	}

	if p, ok := rec["priority"]; ok {
		n, err := toInt64(p)
		if err != nil {
			return err
		}

		settings.Priority = thing.StoragePriority(n)
	}

	q := thing.AllQualities
	if v, ok := rec["qualityMin"]; ok {
		n, err := toInt64(v)
		if err != nil {
			return err
		}

		q.Min = thing.Quality(n)
	}

	if v, ok := rec["qualityMax"]; ok {
		n, err := toInt64(v)
		if err != nil {
			return err
		}

		q.Max = thing.Quality(n)
	}

	settings.Filter.SetAllowedQualities(q)

	names, err := toStrings(rec["allowed"])
	if err != nil {
		return err
	}

	for _, n := range names {
		def, err := c.resolveDef(n)
		if err != nil {
			return err
		}

		settings.Filter.SetAllow(def, true)
	}

	c.State.Settings = settings

	return nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toStrings(v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected a kind name, got %T", e)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
}
