package impulse

import (
	"github.com/akmonengine/impulse/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// World owns the set of simulated objects and drives them once per tick.
// Objects share no mutable state, so the simulation fans out over Workers
// goroutines; everything else runs on the calling goroutine
type World struct {
	Objects []*actor.PhysicalObject
	Workers int
	// Optional point-query acceleration; nil falls back to a linear scan
	Grid *SpatialGrid

	Events Events
}

// NewWorld creates a world with initialized event tracking
func NewWorld(workers int) *World {
	return &World{
		Workers: workers,
		Events:  NewEvents(),
	}
}

// AddObject adds a physical object to the world
func (w *World) AddObject(object *actor.PhysicalObject) {
	w.Objects = append(w.Objects, object)
}

// RemoveObject removes a physical object from the world
func (w *World) RemoveObject(object *actor.PhysicalObject) {
	k := -1
	for i, o := range w.Objects {
		if o == object {
			k = i
			break
		}
	}

	if k != -1 {
		w.Objects = append(w.Objects[:k], w.Objects[k+1:]...)
	}

	delete(w.Events.restStates, object)
}

// Step simulates all objects by dt milliseconds, rebuilds the spatial
// grid and flushes buffered events
func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	task(w.Workers, w.Objects, func(object *actor.PhysicalObject) {
		object.Simulate(dt)
	})

	if w.Grid != nil {
		w.Grid.Rebuild(w.Objects)
	}

	w.Events.processRestEvents(w.Objects)
	w.Events.flush()
}

// QueryPoint returns every object hit by a world-space point, emitting an
// OBJECT_HIT event per match. Events buffer until the next Step flush
func (w *World) QueryPoint(point mgl64.Vec3) []*actor.PhysicalObject {
	var hits []*actor.PhysicalObject

	if w.Grid != nil {
		for _, idx := range w.Grid.CandidatesAt(point) {
			if w.Objects[idx].CheckHit(point) {
				hits = append(hits, w.Objects[idx])
			}
		}
	} else {
		for _, object := range w.Objects {
			if object.CheckHit(point) {
				hits = append(hits, object)
			}
		}
	}

	for _, object := range hits {
		w.Events.emitHit(object, point)
	}

	return hits
}
