package engine

import (
	"time"

	"gridcaster/internal/entity"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/player"
	"gridcaster/internal/projection"
	"gridcaster/internal/raycast"
	"gridcaster/internal/threading/monitoring"
)

// Tick advances the world by dt with the given input and rebuilds the frame.
// Once the session is won or lost Tick does nothing.
//
// Order within a tick:
//  1. player movement and firing
//  2. ray cast
//  3. occupancy snapshot, before any NPC moves
//  4. decorations
//  5. NPCs, in order, all reading the same snapshot
//  6. weapon (clears an unconsumed shot)
//  7. render list
func (w *World) Tick(dt time.Duration, in player.Intent) Status {
	if w.status != Playing {
		return w.status
	}
	timer := w.monitor.StartFrame()
	defer timer.EndFrame()

	w.Player.Move(in, float64(dt)/float64(time.Millisecond))
	if in.Fire {
		w.Weapon.Fire(w.Player)
	}

	var rays []raycast.RayResult
	w.monitor.ProfiledFunction(monitoring.StageRaycast, func() {
		rays = w.caster.CastRays(w.Player.State)
	})

	w.occupancy = w.snapshotOccupancy()

	env := &entity.Env{
		Player:       w.Player,
		WeaponDamage: w.Weapon.Damage,
		Grid:         w.Grid,
		Projection:   w.proj,
		Projector:    w.projector,
		Sizer:        w.assets,
		Sight:        w.caster,
		Router:       w.router,
		Occupancy:    w.occupancy,
		Rand:         w.rng,
	}
	for _, s := range w.Sprites {
		s.Update(dt, env)
	}
	w.router.calls = 0
	w.monitor.ProfiledFunction(monitoring.StageNPCUpdate, func() {
		for _, npc := range w.NPCs {
			npc.Update(dt, env)
		}
	})
	w.monitor.AddPathQueries(w.router.calls)

	w.Weapon.Update(w.Player, dt)

	var items []projection.Renderable
	var visible, slices int
	w.monitor.ProfiledFunction(monitoring.StageProjection, func() {
		items, visible, slices = w.buildRenderList(rays)
	})
	w.frame = Frame{Rays: rays, Items: items, WeaponFrame: w.Weapon.Frame()}

	alive := w.NPCsAlive()
	w.monitor.UpdateWorldMetrics(alive, visible, slices)

	switch {
	case !w.Player.Alive():
		w.status = Lost
	case len(w.NPCs) > 0 && alive == 0:
		w.status = Won
	}
	return w.status
}

// snapshotOccupancy collects the tiles of living NPCs.
func (w *World) snapshotOccupancy() pathfinding.Occupancy {
	occ := make(pathfinding.Occupancy, len(w.NPCs))
	for _, npc := range w.NPCs {
		if npc.Alive() {
			occ.Add(npc.Tile())
		}
	}
	return occ
}

// buildRenderList projects walls and every entity and sorts the result back
// to front.
func (w *World) buildRenderList(rays []raycast.RayResult) ([]projection.Renderable, int, int) {
	walls := projection.WallSlices(rays, w.proj, w.cfg.Textures.Size)

	sprites := make([]projection.Renderable, 0, len(w.Sprites)+len(w.NPCs))
	for _, group := range [][]*entity.Entity{w.Sprites, w.NPCs} {
		for _, e := range group {
			if _, r, ok := w.projector.Project(e.Billboard(w.assets), w.Player.State); ok {
				sprites = append(sprites, r)
			}
		}
	}
	return projection.Merge(walls, sprites), len(sprites), len(walls)
}
