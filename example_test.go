package depot_test

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Example shows basic depot usage with entity creation and a map pass
func Example_basic() {
	// Compose a world; the store list is fixed for its lifetime
	world, _ := depot.Factory.NewWorld(
		depot.FactoryNewDenseStore[Position](),
		depot.FactoryNewSparseStore[Velocity](),
	)

	// Five stationary entities
	for i := 0; i < 5; i++ {
		id := world.NewEntity()
		depot.AddComponent(world, id, Position{X: float64(i)})
	}

	// One moving entity
	mover := world.NewEntity()
	depot.AddComponent(world, mover, Position{X: 10, Y: 20})
	depot.AddComponent(world, mover, Velocity{X: 1, Y: 2})

	// Count entities holding both components
	moving := 0
	depot.Each2(world, func(Position, Velocity) { moving++ })
	fmt.Printf("Found %d entities with position and velocity\n", moving)

	// Apply one movement step; the returned value overwrites Position
	depot.Map2(world, func(p Position, v Velocity) depot.Result {
		return depot.Value(Position{X: p.X + v.X, Y: p.Y + v.Y})
	})

	depot.Each2(world, func(p Position, v Velocity) {
		fmt.Printf("Moved to (%.1f, %.1f)\n", p.X, p.Y)
	})

	// Output:
	// Found 1 entities with position and velocity
	// Moved to (11.0, 22.0)
}

// Example_resultShapes shows shape-directed write-back: one map function
// that overwrites, conditionally assigns, or deletes per entity
func Example_resultShapes() {
	world, _ := depot.Factory.NewWorld(
		depot.FactoryNewDenseStore[int](),
		depot.FactoryNewDenseStore[float64](),
	)

	for i := 0; i < 6; i++ {
		depot.AddComponent(world, world.NewEntity(), i)
	}

	// Even counters gain a float component (the int stays untouched),
	// multiples of three are bumped, everything else loses its counter
	depot.Map1(world, func(i int) depot.Result {
		switch {
		case i%2 == 0:
			return depot.OneOf(depot.Value(float64(i)))
		case i%3 == 0:
			return depot.OneOf(depot.Some(i + 10))
		default:
			return depot.OneOf(depot.None[int]())
		}
	})

	// Optional arguments match every entity, present or not
	depot.Each2(world, func(i depot.Option[int], f depot.Option[float64]) {
		is, fs := "-", "-"
		if v, ok := i.Get(); ok {
			is = fmt.Sprintf("%d", v)
		}
		if v, ok := f.Get(); ok {
			fs = fmt.Sprintf("%.1f", v)
		}
		fmt.Printf("int=%s float=%s\n", is, fs)
	})

	// Output:
	// int=0 float=0.0
	// int=- float=-
	// int=2 float=2.0
	// int=13 float=-
	// int=4 float=4.0
	// int=- float=-
}
