// Profiling:
// go build ./profile/map
// go tool pprof -http=":8000" -nodefraction=0.001 ./map mem.pprof

package main

import (
	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
)

type position struct {
	X float64
	Y float64
}

type velocity struct {
	X float64
	Y float64
}

func main() {
	count := 50
	iters := 1000
	entities := 100000

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w, err := depot.Factory.NewWorld(
			depot.FactoryNewDenseStore[position](),
			depot.FactoryNewDenseStore[velocity](),
		)
		if err != nil {
			panic(err)
		}
		for i := 0; i < numEntities; i++ {
			id := w.NewEntity()
			depot.AddComponent(w, id, position{X: float64(i)})
			depot.AddComponent(w, id, velocity{X: 1, Y: 1})
		}

		for range iters {
			depot.Map2(w, func(p position, v velocity) depot.Result {
				return depot.Value(position{X: p.X + v.X, Y: p.Y + v.Y})
			})
		}
	}
}
