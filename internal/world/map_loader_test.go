package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMapLoader_LoadMap(t *testing.T) {
	mapDir := t.TempDir()
	mapPath := filepath.Join(mapDir, "test.map")
	content := `# small test room
1111
1+.2
1..2
1331
`
	if err := os.WriteFile(mapPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}

	mapData, err := NewMapLoader(5).LoadMap(mapPath)
	if err != nil {
		t.Fatalf("load map: %v", err)
	}

	grid := mapData.Grid
	if grid.Width() != 4 || grid.Height() != 4 {
		t.Fatalf("expected 4x4 grid, got %dx%d", grid.Width(), grid.Height())
	}
	if mapData.StartX != 1.5 || mapData.StartY != 1.5 {
		t.Errorf("expected start (1.5, 1.5), got (%v, %v)", mapData.StartX, mapData.StartY)
	}
	if id, wall := grid.Texture(Tile{X: 3, Y: 1}); !wall || id != 2 {
		t.Errorf("expected texture 2 at (3,1), got %d wall=%v", id, wall)
	}
	if id, wall := grid.Texture(Tile{X: 1, Y: 3}); !wall || id != 3 {
		t.Errorf("expected texture 3 at (1,3), got %d wall=%v", id, wall)
	}
	if grid.IsWall(Tile{X: 1, Y: 1}) {
		t.Errorf("start tile must be open")
	}
	if got := len(grid.Walls()); got != 12 {
		t.Errorf("expected 12 wall tiles, got %d", got)
	}
}

func TestMapLoader_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "# only a comment\n\n", ErrEmptyMap},
		{"ragged rows", "111\n1.\n111\n", ErrRaggedMap},
		{"texture id above max", "111\n1.7\n111\n", ErrTextureRange},
		{"zero is not a wall id", "111\n1.0\n111\n", ErrTextureRange},
		{"unknown char", "111\n1x1\n111\n", ErrBadTile},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMapLoader(5).Parse(strings.NewReader(tc.content))
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMapLoader_MissingFile(t *testing.T) {
	if _, err := NewMapLoader(5).LoadMap(filepath.Join(t.TempDir(), "nope.map")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
