package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrEmptyMap is returned when a map file has no tile rows.
	ErrEmptyMap = errors.New("map contains no rows")
	// ErrRaggedMap is returned when rows differ in width.
	ErrRaggedMap = errors.New("map rows are not rectangular")
	// ErrTextureRange is returned for a wall id outside [1, maxTextureID].
	ErrTextureRange = errors.New("texture id out of range")
	// ErrBadTile is returned for a character the loader does not know.
	ErrBadTile = errors.New("unknown map character")
)

// MapData contains the loaded map information
type MapData struct {
	Grid   *GridMap
	StartX float64 // player start, tile centre; -1 when the map has no '+'
	StartY float64
}

// MapLoader reads text maps: '.' is open floor, '1'-'9' a wall with that
// texture id, '+' open floor marking the player start. Lines starting with
// '#' and blank lines are skipped.
type MapLoader struct {
	maxTextureID int
}

// NewMapLoader creates a loader accepting texture ids up to maxTextureID.
func NewMapLoader(maxTextureID int) *MapLoader {
	return &MapLoader{maxTextureID: maxTextureID}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ml.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapPath, err)
	}
	return data, nil
}

// Parse reads and validates a map. Validation happens here so the geometry
// code never sees a malformed grid.
func (ml *MapLoader) Parse(r io.Reader) (*MapData, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedMap, i+1, len(line), width)
		}
	}

	data := &MapData{StartX: -1, StartY: -1}
	rows := make([][]int, len(lines))
	for y, line := range lines {
		rows[y] = make([]int, width)
		for x, char := range line {
			id, isStart, err := ml.parseMapCharacter(char)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			rows[y][x] = id
			if isStart {
				data.StartX, data.StartY = Tile{X: x, Y: y}.Center()
			}
		}
	}
	data.Grid = NewGridMap(rows)
	return data, nil
}

// parseMapCharacter converts a map character to a texture id (0 = open).
func (ml *MapLoader) parseMapCharacter(char rune) (int, bool, error) {
	switch {
	case char == '.':
		return 0, false, nil
	case char == '+':
		return 0, true, nil
	case char >= '0' && char <= '9':
		id := int(char - '0')
		if id < 1 || id > ml.maxTextureID {
			return 0, false, fmt.Errorf("%w: %d not in [1, %d]", ErrTextureRange, id, ml.maxTextureID)
		}
		return id, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %q", ErrBadTile, char)
	}
}
