package world

import (
	"sync"
)

// PowerComp connects a building to a power net.
type PowerComp struct {
	lock   sync.RWMutex
	on     bool
	output float64
}

// PowerOn returns true if the building currently receives power.
func (p *PowerComp) PowerOn() bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.on
}

// SetPowerOutput sets the power the building produces. Consumers use
// negative values.
func (p *PowerComp) SetPowerOutput(w float64) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.output = w
}

// PowerOutput returns the current power output.
func (p *PowerComp) PowerOutput() float64 {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.output
}

// SetPowerOn switches the power of the building.
func (p *PowerComp) SetPowerOn(on bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.on = on
}

// PowerNet is a set of connected power comps fed by a fixed generation
// capacity. When the consumers demand more than the capacity, the whole net
// browns out until the demand drops.
type PowerNet struct {
	Capacity float64

	comps []*PowerComp
}

// NewPowerNet creates a net with the given generation capacity in watts.
func NewPowerNet(capacity float64) *PowerNet {
	return &PowerNet{Capacity: capacity}
}

// Connect adds a new comp to the net and returns it. The comp starts powered.
func (n *PowerNet) Connect() *PowerComp {
	c := &PowerComp{on: true}
	n.comps = append(n.comps, c)

	return c
}

// Demand returns the total power drawn by consumers on the net.
func (n *PowerNet) Demand() float64 {
	demand := 0.0

	for _, c := range n.comps {
		if out := c.PowerOutput(); out < 0 {
			demand -= out
		}
	}

	return demand
}

// Tick updates the power state of every connected comp.
func (n *PowerNet) Tick() bool {
	on := n.Demand() <= n.Capacity
	changed := false

	for _, c := range n.comps {
		if c.PowerOn() != on {
			c.SetPowerOn(on)
			changed = true
		}
	}

	return changed
}
