package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gridcaster/internal/config"
	"gridcaster/internal/entity"
	"gridcaster/internal/pathfinding"
	"gridcaster/internal/player"
	"gridcaster/internal/projection"
	"gridcaster/internal/raycast"
	"gridcaster/internal/threading/core"
	"gridcaster/internal/threading/monitoring"
	"gridcaster/internal/world"
)

// Status is the outcome of the session so far.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Assets supplies sprite sizes and frame counts.
type Assets interface {
	projection.TextureSizer
	entity.FrameCounter
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Rays        []raycast.RayResult
	Items       []projection.Renderable // back to front
	WeaponFrame int
}

// World owns the session state and runs the frame-synchronous tick.
type World struct {
	Grid    *world.GridMap
	Player  *player.Player
	Weapon  *player.Weapon
	Sprites []*entity.Entity // static and animated decorations
	NPCs    []*entity.Entity

	cfg       *config.Config
	proj      config.Projection
	caster    *raycast.Caster
	projector *projection.Projector
	graph     *pathfinding.Graph
	router    *countingRouter
	occupancy pathfinding.Occupancy
	assets    Assets
	rng       *rand.Rand
	pool      *core.WorkerPool
	monitor   *monitoring.PerformanceMonitor

	status Status
	frame  Frame
}

// Load reads the map, placements and NPC archetypes named in cfg and
// builds a world.
func Load(cfg *config.Config, assets Assets, rng *rand.Rand) (*World, error) {
	md, err := world.NewMapLoader(cfg.Textures.MaxTextureID).LoadMap(cfg.World.MapFile)
	if err != nil {
		return nil, err
	}
	placements, err := world.LoadPlacements(cfg.World.EntitiesFile, md.Grid)
	if err != nil {
		return nil, err
	}
	npcTypes, err := config.LoadNPCTypes(cfg.World.NPCTypesFile)
	if err != nil {
		return nil, err
	}
	return New(cfg, md, placements, npcTypes, assets, rng)
}

// New builds a world from already loaded data.
func New(cfg *config.Config, md *world.MapData, placements *world.Placements, npcTypes *config.NPCTypesConfig, assets Assets, rng *rand.Rand) (*World, error) {
	proj := cfg.Projection()
	grid := md.Grid

	playerCfg := cfg.Player
	if md.StartX >= 0 {
		playerCfg.StartX, playerCfg.StartY = md.StartX, md.StartY
	}
	if grid.IsWallAt(playerCfg.StartX, playerCfg.StartY) {
		return nil, fmt.Errorf("%w: player start (%.2f, %.2f)", world.ErrBadPlacement, playerCfg.StartX, playerCfg.StartY)
	}

	w := &World{
		Grid:      grid,
		Player:    player.NewPlayer(playerCfg, grid),
		Weapon:    player.NewWeapon(cfg.Weapon),
		cfg:       cfg,
		proj:      proj,
		caster:    raycast.NewCaster(grid, proj, cfg.Raycasting),
		projector: projection.NewProjector(proj, cfg.Sprites.MinDistance),
		graph:     pathfinding.NewGraph(grid),
		assets:    assets,
		rng:       rng,
		monitor:   monitoring.NewPerformanceMonitor(),
	}
	w.router = &countingRouter{graph: w.graph}
	w.monitor.SetMinFPS(cfg.Debug.PerfLowFPS)

	if cfg.Raycasting.Workers > 1 {
		w.pool = core.CreateWorkerPool(cfg.Raycasting.Workers)
		w.caster.UseWorkerPool(w.pool)
	}

	if placements != nil {
		w.Sprites = buildSprites(cfg.Sprites, placements.Sprites, assets)
		npcs, err := buildNPCs(placements.NPCs, npcTypes, assets, rng)
		if err != nil {
			w.Close()
			return nil, err
		}
		w.NPCs = npcs
	}

	log.Printf("World ready: %dx%d map, %d walls, %d walkable tiles, %d sprites, %d NPCs",
		grid.Width(), grid.Height(), len(grid.Walls()), w.graph.NodeCount(), len(w.Sprites), len(w.NPCs))
	return w, nil
}

func buildSprites(defaults config.SpriteConfig, placements []world.SpritePlacement, assets Assets) []*entity.Entity {
	sprites := make([]*entity.Entity, 0, len(placements))
	for _, sp := range placements {
		scale := sp.Scale
		if scale == 0 {
			scale = defaults.DefaultScale
		}
		shift := sp.HeightShift
		if shift == 0 {
			shift = defaults.DefaultShift
		}
		if !sp.Animated {
			sprites = append(sprites, entity.NewStatic(sp.Sprite, sp.Pos[0], sp.Pos[1], scale, shift))
			continue
		}
		animMs := sp.AnimationTimeMs
		if animMs == 0 {
			animMs = defaults.AnimationTimeMs
		}
		frames := assets.FrameCount(sp.Sprite)
		if frames < 1 {
			frames = 1
		}
		sprites = append(sprites, entity.NewAnimated(sp.Sprite, sp.Pos[0], sp.Pos[1], scale, shift,
			time.Duration(animMs)*time.Millisecond, frames))
	}
	return sprites
}

func buildNPCs(placements []world.NPCPlacement, types *config.NPCTypesConfig, assets Assets, rng *rand.Rand) ([]*entity.Entity, error) {
	npcs := make([]*entity.Entity, 0, len(placements))
	for i, np := range placements {
		t, ok := types.Get(np.Type)
		if !ok {
			return nil, fmt.Errorf("npc %d: %w: unknown type %q", i, config.ErrInvalidConfig, np.Type)
		}
		npcs = append(npcs, entity.NewNPC(np.Type, t, np.Pos[0], np.Pos[1], assets, rng))
	}
	return npcs, nil
}

// Close releases the ray worker pool, if any.
func (w *World) Close() {
	if w.pool != nil {
		w.pool.Stop()
		w.pool = nil
	}
}

// Status returns the current outcome.
func (w *World) Status() Status { return w.status }

// Frame returns the output of the latest tick.
func (w *World) Frame() Frame { return w.frame }

// Occupancy returns the snapshot used by the latest tick.
func (w *World) Occupancy() pathfinding.Occupancy { return w.occupancy }

// Monitor returns the performance monitor fed by Tick.
func (w *World) Monitor() *monitoring.PerformanceMonitor { return w.monitor }

// Graph exposes the navigation graph for debug overlays.
func (w *World) Graph() *pathfinding.Graph { return w.graph }

// NPCsAlive counts living NPCs.
func (w *World) NPCsAlive() int {
	n := 0
	for _, npc := range w.NPCs {
		if npc.Alive() {
			n++
		}
	}
	return n
}

// countingRouter counts queries for the performance monitor.
type countingRouter struct {
	graph *pathfinding.Graph
	calls int
}

func (r *countingRouter) NextStep(start, goal world.Tile, occ pathfinding.Occupancy) world.Tile {
	r.calls++
	return r.graph.NextStep(start, goal, occ)
}
