/*
Package depot provides an in-memory entity-component store with a functional
update model.

Instead of mutating component values through pointers, callers supply a
transformation function whose return value declares how components change.
The engine interprets the shape of that return value to decide whether to
overwrite, delete, multi-assign, or conditionally assign components.

Core Concepts:

  - EntityID: A permanent integer handle identifying an entity across all stores.
  - Store: A per-component-type container mapping EntityID to an optional value.
  - World: A fixed composition of stores plus entity-id allocation.
  - Result: The interpreted shape of a map function's return value.

Basic Usage:

	// Compose a world from per-type stores
	world, _ := depot.Factory.NewWorld(
		depot.FactoryNewDenseStore[Position](),
		depot.FactoryNewSparseStore[Velocity](),
	)

	// Create entities and attach components
	id := world.NewEntity()
	depot.AddComponent(world, id, Position{X: 1, Y: 2})
	depot.AddComponent(world, id, Velocity{X: 3, Y: 4})

	// Transform every entity holding both components
	depot.Map2(world, func(p Position, v Velocity) depot.Result {
		return depot.Value(Position{X: p.X + v.X, Y: p.Y + v.Y})
	})

Result shapes compose: depot.Value overwrites a component, an Option deletes
when empty, depot.All applies several results left to right, and depot.OneOf
applies a single selected branch. Shapes nest arbitrarily as long as every
leaf resolves to a component type the world tracks.

Depot works as a standalone library; it has no scheduler and no persistence.
A Map pass is a single synchronous sweep over entity ids.
*/
package depot
