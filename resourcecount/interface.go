package resourcecount

import (
	"github.com/sarchlab/massstorage/thing"
	"github.com/sarchlab/massstorage/world"
)

//go:generate mockgen -destination "mock_resourcecount_test.go" -package $GOPACKAGE -write_package_comment=false -source interface.go

// Map is the part of the host map the counter reads. It is implemented by
// world.Map.
type Map interface {
	Zones() []*world.Zone
	ItemsAt(c world.Cell) []*thing.Thing
	ColonistBuildings() []world.Building
}
