package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gridcaster/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

const placeholderSpriteSize = 64

// wallPalette colours placeholder wall textures by id.
var wallPalette = []color.RGBA{
	{128, 128, 128, 255},
	{150, 60, 50, 255},
	{60, 110, 150, 255},
	{90, 140, 70, 255},
	{160, 140, 60, 255},
	{110, 70, 140, 255},
}

// SpriteManager loads wall textures and sprite frames from disk, falling
// back to flat placeholders. Decoded images are cached; ebiten images are
// created on first draw.
//
// Layout:
//
//	<wall_dir>/<id>.png
//	<sprite_dir>/<key>/<n>.png   animated sprites and NPC clips ("soldier/walk")
//	<sprite_dir>/<key>.png       single-frame sprites
type SpriteManager struct {
	wallDir   string
	spriteDir string
	texSize   int

	wallSrc  map[int]image.Image
	frameSrc map[string][]image.Image
	walls    map[int]*ebiten.Image
	frames   map[string][]*ebiten.Image
}

func NewSpriteManager(cfg config.TextureConfig) *SpriteManager {
	return &SpriteManager{
		wallDir:   cfg.WallDir,
		spriteDir: cfg.SpriteDir,
		texSize:   cfg.Size,
		wallSrc:   make(map[int]image.Image),
		frameSrc:  make(map[string][]image.Image),
		walls:     make(map[int]*ebiten.Image),
		frames:    make(map[string][]*ebiten.Image),
	}
}

// SpriteSize returns the pixel size of the first frame of key.
func (sm *SpriteManager) SpriteSize(key string) (int, int) {
	b := sm.frameSources(key)[0].Bounds()
	return b.Dx(), b.Dy()
}

// FrameCount returns how many frames key has; at least 1.
func (sm *SpriteManager) FrameCount(key string) int {
	return len(sm.frameSources(key))
}

// Wall returns the texture for wall id.
func (sm *SpriteManager) Wall(id int) *ebiten.Image {
	if img, ok := sm.walls[id]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sm.wallSource(id))
	sm.walls[id] = img
	return img
}

// Frame returns frame i of key, wrapping out-of-range indices.
func (sm *SpriteManager) Frame(key string, i int) *ebiten.Image {
	imgs, ok := sm.frames[key]
	if !ok {
		src := sm.frameSources(key)
		imgs = make([]*ebiten.Image, len(src))
		for j, s := range src {
			imgs[j] = ebiten.NewImageFromImage(s)
		}
		sm.frames[key] = imgs
	}
	if i < 0 {
		i = 0
	}
	return imgs[i%len(imgs)]
}

// TextureScale converts texture-space source coordinates (TextureConfig.Size)
// into pixels of the loaded wall image.
func (sm *SpriteManager) TextureScale(id int) float64 {
	return float64(sm.wallSource(id).Bounds().Dx()) / float64(sm.texSize)
}

func (sm *SpriteManager) wallSource(id int) image.Image {
	if img, ok := sm.wallSrc[id]; ok {
		return img
	}
	path := filepath.Join(sm.wallDir, strconv.Itoa(id)+".png")
	img, err := decodeFile(path)
	if err != nil {
		log.Printf("Warning: wall texture %d: %v, using placeholder", id, err)
		img = placeholder(sm.texSize, sm.texSize, wallPalette[id%len(wallPalette)])
	}
	sm.wallSrc[id] = img
	return img
}

func (sm *SpriteManager) frameSources(key string) []image.Image {
	if src, ok := sm.frameSrc[key]; ok {
		return src
	}

	var src []image.Image
	dir := filepath.Join(sm.spriteDir, filepath.FromSlash(key))
	for i := 0; ; i++ {
		img, err := decodeFile(filepath.Join(dir, strconv.Itoa(i)+".png"))
		if err != nil {
			break
		}
		src = append(src, img)
	}
	if len(src) == 0 {
		if img, err := decodeFile(dir + ".png"); err == nil {
			src = append(src, img)
		}
	}
	if len(src) == 0 {
		log.Printf("Warning: no frames for sprite %q under %s, using placeholder", key, sm.spriteDir)
		src = append(src, placeholder(placeholderSpriteSize, placeholderSpriteSize, color.RGBA{200, 0, 200, 255}))
	}

	sm.frameSrc[key] = src
	return src
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func placeholder(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
