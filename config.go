package depot

import "github.com/TheBitDrifter/table"

// Config holds global configuration for table-backed stores
var Config config = config{}

type config struct {
	tableEvents table.TableEvents
}

// SetTableEvents configures the event callbacks wired into tables built for
// TableStore backends. Takes effect for stores created afterwards.
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}
