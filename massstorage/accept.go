package massstorage

import (
	"github.com/sarchlab/massstorage/thing"
)

// Accept absorbs an item into the device. The item is destroyed and its drop
// sound played. Items of a kind other than the held kind are left alone, in
// which case Accept returns false.
func (c *Comp) Accept(t *thing.Thing) bool {
	if t == nil || t.Destroyed() {
		return false
	}

	s := &c.State
	n := t.StackCount

	switch {
	case s.StoredDef == nil:
		s.StoredDef = t.Def
		if t.Def.IsRottable() {
			s.RotProgress = blendRot(s.RotProgress, t.RotProgress, 0, n)
		} else {
			s.RotProgress = 0
		}

		s.Count.Set(int64(n))
	case s.StoredDef == t.Def:
		if t.Def.IsRottable() {
			s.RotProgress = blendRot(s.RotProgress, t.RotProgress, s.Count.Get(), n)
		}

		s.Count.Add(int64(n))
	default:
		return false
	}

	c.World.Destroy(t)
	c.Sounds.PlayOneShot(t.Def.SoundDrop, c.position)
	c.invokeDeviceHook(HookPosItemAccepted, t.Def, n)

	return true
}

// blendRot mixes the rot progress of incoming items into the held rot
// progress, weighted by the share of the incoming items. held is the count
// before the items are added.
func blendRot(current, incoming float64, held, n int) float64 {
	total := held + n
	if total <= 0 {
		return current
	}

	ratio := float64(n) / float64(total)

	return current + (incoming-current)*ratio
}
