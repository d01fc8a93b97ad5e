package massstorage

// DropAll ejects the contents of the device as stacks placed near it. When
// disableAfter is set, the held kind is disallowed afterwards so that the
// device does not collect the dropped items again. Stacks the map cannot
// place are lost.
func (c *Comp) DropAll(disableAfter bool) {
	s := &c.State
	if s.StoredDef == nil {
		s.Count.Set(0)
		return
	}

	def := s.StoredDef
	limit := stackLimit(def)
	dropped := 0

	for s.Count.Get() > 0 {
		n := min(limit, s.Count.Get())

		t := makeStack(def, n, s.RotProgress)
		s.Count.Sub(int64(n))
		dropped += n

		c.World.PlaceNear(t, c.position)
	}

	if disableAfter {
		s.Settings.Filter.SetAllow(def, false)
	}

	c.invokeDeviceHook(HookPosContentsDropped, def, dropped)

	s.clear()
}
