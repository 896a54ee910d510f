package main

import (
	"fmt"

	"github.com/akmonengine/impulse"
	"github.com/akmonengine/impulse/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates the test scene: a probe under thrust and a drifting
// station to fly past
func SetupScene() (*impulse.World, *actor.PhysicalObject, *actor.PhysicalObject) {
	world := impulse.NewWorld(4)
	world.Grid = impulse.NewSpatialGrid(8.0, 256)

	// Probe: 2m cube, 10kg, starts at rest at the origin
	probe := actor.NewPhysicalObject(
		10.0,
		mgl64.Ident4(),
		mgl64.Ident4(),
		mgl64.Ident4(),
		mgl64.Ident4(),
		[]*actor.Body{actor.NewBody(mgl64.Ident4(), mgl64.Ident4(), 2, 2, 2)},
	)

	// Station: elongated 8x4x4 box, drifting slowly along -X
	station := actor.NewPhysicalObject(
		500.0,
		actor.Translation(mgl64.Vec3{60, 0, 0}),
		mgl64.HomogRotate3D(0.3, mgl64.Vec3{0, 1, 0}),
		mgl64.Ident4(),
		actor.Translation(mgl64.Vec3{-0.5, 0, 0}),
		[]*actor.Body{actor.NewBody(mgl64.Ident4(), mgl64.Ident4(), 8, 4, 4)},
	)

	world.AddObject(probe)
	world.AddObject(station)

	return world, probe, station
}

func main() {
	fmt.Println("🚀 Thruster scene: probe burn towards a drifting station")
	fmt.Println("========================================================")

	world, probe, station := SetupScene()

	world.Events.Subscribe(impulse.OBJECT_HIT, func(event impulse.Event) {
		hit := event.(impulse.HitEvent)
		fmt.Printf("  💥 Hit at %v\n", hit.Point)
	})
	world.Events.Subscribe(impulse.OBJECT_MOTION, func(event impulse.Event) {
		fmt.Println("  ▶️  An object started moving")
	})
	world.Events.Subscribe(impulse.OBJECT_REST, func(event impulse.Event) {
		fmt.Println("  ⏸️  An object came to rest")
	})

	const dt float64 = 1000.0 / 60.0
	const maxSteps int = 600

	// One-off burst to set the probe tumbling
	probe.AddTorque(actor.NewTorque("spin-up", 40.0, mgl64.Vec3{0, 0, 1}, 250))

	for step := 0; step < maxSteps; step++ {
		// The main thruster burns for the first 5 seconds; renewing it every
		// tick keeps a single force alive instead of stacking duplicates
		if step < 300 {
			probe.AddOrRenewForce("main-thruster", 25.0, mgl64.Vec3{1, 0, 0}, dt*2)
		}

		world.Step(dt)

		if step%60 == 0 {
			position := actor.TranslationVector(probe.GetPositionMatrix())
			velocity := actor.TranslationVector(probe.GetVelocityMatrix())
			fmt.Printf("--- t=%.1fs ---\n", float64(step)*dt/1000.0)
			fmt.Printf("  Probe:   position %v, velocity %v (%.2f m/s)\n", position, velocity, velocity.Len())
			fmt.Printf("  Station: position %v\n", actor.TranslationVector(station.GetPositionMatrix()))

			// Probe a point just ahead of the probe's nose
			if velocity.Len() > 0 {
				ahead := position.Add(velocity.Normalize().Mul(probe.GetScaledSize() + 0.1))
				if hits := world.QueryPoint(ahead); len(hits) > 0 {
					fmt.Printf("  ⚠️  %d object(s) directly ahead\n", len(hits))
				}
			}
		}

		// Drop spent forces and torques once in a while
		if step%120 == 0 {
			probe.PruneExpired()
		}
	}

	fmt.Println("Scene finished!")
	fmt.Printf("Final probe position: %v\n", actor.TranslationVector(probe.GetPositionMatrix()))
	fmt.Printf("Final station position: %v\n", actor.TranslationVector(station.GetPositionMatrix()))
}
