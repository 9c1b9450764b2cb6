package raycast

import (
	"math"
	"testing"

	"gridcaster/internal/config"
	"gridcaster/internal/player"
	"gridcaster/internal/threading/core"
	"gridcaster/internal/world"
)

const (
	texNorth = 1
	texSouth = 2
	texWest  = 3
	texEast  = 4
)

// roomGrid returns an n x n open interior bordered by walls, each side with
// its own texture. Corners belong to the north/south rows.
func roomGrid(n int) *world.GridMap {
	size := n + 2
	rows := make([][]int, size)
	for y := range rows {
		rows[y] = make([]int, size)
		for x := range rows[y] {
			switch {
			case y == 0:
				rows[y][x] = texNorth
			case y == size-1:
				rows[y][x] = texSouth
			case x == 0:
				rows[y][x] = texWest
			case x == size-1:
				rows[y][x] = texEast
			}
		}
	}
	return world.NewGridMap(rows)
}

func newTestCaster(grid *world.GridMap, fov float64, numRays int, angleEps float64) *Caster {
	rc := config.RaycastingConfig{
		NumRays:      numRays,
		MaxDepth:     20,
		AngleEpsilon: angleEps,
		DepthEpsilon: 0.0001,
	}
	return NewCaster(grid, config.NewProjection(1280, 720, fov, numRays), rc)
}

func TestCastRays_EnclosedRoom(t *testing.T) {
	grid := roomGrid(4) // interior spans [1, 5) on both axes
	caster := newTestCaster(grid, math.Pi/3, 64, 0.0001)
	maxDiagonal := math.Hypot(4, 4)

	positions := []player.State{
		{X: 2.5, Y: 2.5, Angle: 0.3},
		{X: 1.2, Y: 4.7, Angle: 2.0},
		{X: 4.9, Y: 1.1, Angle: 4.0},
		{X: 3.3, Y: 3.9, Angle: 5.5},
	}

	for _, s := range positions {
		results := caster.CastRays(s)
		if len(results) != 64 {
			t.Fatalf("expected 64 results, got %d", len(results))
		}

		for i, r := range results {
			a := caster.RayAngle(s.Angle, i)
			sinA, cosA := math.Sincos(a)

			xFace, xTex := 1.0, texWest
			if cosA > 0 {
				xFace, xTex = 5.0, texEast
			}
			yFace, yTex := 1.0, texNorth
			if sinA > 0 {
				yFace, yTex = 5.0, texSouth
			}
			tx := (xFace - s.X) / cosA
			ty := (yFace - s.Y) / sinA
			if math.Abs(tx-ty) < 1e-6 {
				continue // ray runs into a corner
			}
			wantRaw, wantTex := tx, xTex
			if ty < tx {
				wantRaw, wantTex = ty, yTex
			}

			if !r.Hit() || r.RawDepth > maxDiagonal {
				t.Fatalf("pos %+v ray %d: depth %.4f not finite within room", s, i, r.RawDepth)
			}
			if r.TextureID != wantTex {
				t.Errorf("pos %+v ray %d: texture %d, want %d", s, i, r.TextureID, wantTex)
			}
			if math.Abs(r.RawDepth-wantRaw) > 1e-6 {
				t.Errorf("pos %+v ray %d: raw depth %.6f, want %.6f", s, i, r.RawDepth, wantRaw)
			}
			wantPerp := wantRaw * math.Cos(s.Angle-a)
			if math.Abs(r.Depth-wantPerp) > 1e-6 {
				t.Errorf("pos %+v ray %d: perpendicular depth %.6f, want %.6f", s, i, r.Depth, wantPerp)
			}
			if r.Offset < 0 || r.Offset >= 1 {
				t.Errorf("pos %+v ray %d: offset %v outside [0, 1)", s, i, r.Offset)
			}
		}
	}
}

func TestCastRays_StraightAheadIsUncorrected(t *testing.T) {
	caster := newTestCaster(roomGrid(4), math.Pi/3, 8, 0)
	s := player.State{X: 2.2, Y: 3.1, Angle: 0.3}

	// with no nudge, ray N/2 points exactly along the view axis
	r := caster.CastRays(s)[4]
	if math.Abs(r.Depth-r.RawDepth) > 1e-9 {
		t.Errorf("straight-ahead ray: perpendicular %.12f != raw %.12f", r.Depth, r.RawDepth)
	}
}

func TestCastRays_ProjectedHeight(t *testing.T) {
	caster := newTestCaster(roomGrid(4), math.Pi/3, 4, 0.0001)
	proj := caster.Projection()

	for _, r := range caster.CastRays(player.State{X: 2.5, Y: 2.5, Angle: 1}) {
		want := proj.ScreenDist / (r.Depth + 0.0001)
		if math.Abs(r.ProjHeight-want) > 1e-9 {
			t.Errorf("ProjHeight %.6f, want %.6f", r.ProjHeight, want)
		}
	}
}

func TestCastRays_NoWallWithinDepth(t *testing.T) {
	grid := world.NewGridMap([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	caster := newTestCaster(grid, math.Pi/3, 16, 0.0001)

	for i, r := range caster.CastRays(player.State{X: 1.5, Y: 1.5, Angle: 2}) {
		if r.Hit() {
			t.Errorf("ray %d: unexpected hit on texture %d", i, r.TextureID)
		}
		if r.Depth != NoHitDepth {
			t.Errorf("ray %d: depth %v, want sentinel %v", i, r.Depth, NoHitDepth)
		}
		if math.IsInf(r.ProjHeight, 0) || math.IsNaN(r.ProjHeight) {
			t.Errorf("ray %d: projected height must stay finite", i)
		}
	}
}

func TestCastRays_TextureOffsetOrientation(t *testing.T) {
	grid := roomGrid(4)
	testCases := []struct {
		name  string
		state player.State
		want  float64
	}{
		{"east face keeps y", player.State{X: 2.5, Y: 2.25, Angle: 0}, 0.25},
		{"west face mirrors y", player.State{X: 2.5, Y: 2.25, Angle: math.Pi}, 0.75},
		{"north face keeps x", player.State{X: 2.25, Y: 2.5, Angle: 3 * math.Pi / 2}, 0.25},
		{"south face mirrors x", player.State{X: 2.25, Y: 2.5, Angle: math.Pi / 2}, 0.75},
	}

	// two rays, no nudge: ray 1 looks straight ahead
	caster := newTestCaster(grid, math.Pi/3, 2, 0)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := caster.CastRays(tc.state)[1]
			if math.Abs(r.Offset-tc.want) > 1e-6 {
				t.Errorf("offset %.6f, want %.6f", r.Offset, tc.want)
			}
		})
	}
}

func TestCastRays_FourByFourRoomEndToEnd(t *testing.T) {
	grid := roomGrid(4)
	center := player.State{X: 3, Y: 3, Angle: 0}

	// 60° fan: every ray lands on the east wall at the same perpendicular depth
	narrow := newTestCaster(grid, math.Pi/3, 4, 0.0001).CastRays(center)
	for i, r := range narrow {
		if r.TextureID != texEast {
			t.Errorf("60° fan ray %d: texture %d, want east wall", i, r.TextureID)
		}
		if math.Abs(r.Depth-2) > 1e-6 {
			t.Errorf("60° fan ray %d: perpendicular depth %.6f, want 2", i, r.Depth)
		}
	}

	// 150° fan: the leftmost ray swings far enough to meet the north wall
	wide := newTestCaster(grid, 5*math.Pi/6, 4, 0.0001).CastRays(center)
	if wide[0].TextureID != texNorth {
		t.Errorf("wide fan ray 0: texture %d, want north wall", wide[0].TextureID)
	}
	for _, i := range []int{1, 2} {
		if wide[i].TextureID != texEast {
			t.Errorf("wide fan middle ray %d: texture %d, want east wall", i, wide[i].TextureID)
		}
	}
	for i, r := range wide {
		if i != 2 && r.RawDepth <= wide[2].RawDepth {
			t.Errorf("ray %d raw depth %.4f should exceed the straight-ahead %.4f", i, r.RawDepth, wide[2].RawDepth)
		}
	}
}

func TestCastRays_WorkerPoolMatchesSequential(t *testing.T) {
	grid := roomGrid(6)
	s := player.State{X: 2.7, Y: 4.1, Angle: 1.1}

	sequential := newTestCaster(grid, math.Pi/3, 320, 0.0001)
	parallel := newTestCaster(grid, math.Pi/3, 320, 0.0001)
	pool := core.CreateWorkerPool(4)
	defer pool.Stop()
	parallel.UseWorkerPool(pool)

	want := sequential.CastRays(s)
	got := parallel.CastRays(s)
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("ray %d: parallel %+v != sequential %+v", i, got[i], want[i])
		}
	}
}

func TestCastRay_DepthMeasuredToTheFaceInEveryDirection(t *testing.T) {
	caster := newTestCaster(roomGrid(4), math.Pi/3, 4, 0)
	from := player.State{X: 2.5, Y: 2.5}

	tests := []struct {
		name  string
		angle float64
		depth float64
		tex   int
	}{
		{"east", 0, 2.5, texEast},
		{"south", math.Pi / 2, 2.5, texSouth},
		{"west", math.Pi, 1.5, texWest},
		{"north", 3 * math.Pi / 2, 1.5, texNorth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := caster.castRay(from, tt.angle)
			if r.TextureID != tt.tex {
				t.Errorf("texture = %d, want %d", r.TextureID, tt.tex)
			}
			if math.Abs(r.RawDepth-tt.depth) > 1e-12 {
				t.Errorf("raw depth = %.12f, want %.12f", r.RawDepth, tt.depth)
			}
		})
	}
}

func TestCastRay_SteepRayJustOffWestFace(t *testing.T) {
	caster := newTestCaster(roomGrid(4), math.Pi/3, 4, 0)
	gap := 5e-7
	from := player.State{X: 1 + gap, Y: 2.5}
	angle := math.Pi/2 + 0.05 // nearly due south, drifting west

	r := caster.castRay(from, angle)
	want := gap / math.Abs(math.Cos(angle))
	if r.TextureID != texWest {
		t.Fatalf("texture = %d, want west wall", r.TextureID)
	}
	if math.Abs(r.RawDepth-want)/want > 1e-6 {
		t.Errorf("raw depth = %.12f, want %.12f", r.RawDepth, want)
	}
}
