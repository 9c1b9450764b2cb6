package projection

import "sort"

// ImageKind tells the renderer which image store an item draws from.
type ImageKind int

const (
	KindWall ImageKind = iota
	KindSprite
)

// Rect is a source rectangle in image pixels.
type Rect struct {
	X, Y, W, H float64
}

// Image identifies what to draw. Walls reference a texture id plus the
// column to cut from it; sprites reference a frame of a named sprite and
// always use the whole frame.
type Image struct {
	Kind      ImageKind
	TextureID int
	Sprite    string
	Frame     int
	Src       Rect
}

// Renderable is one item of the per-frame draw list. X/Y is the top-left
// screen position, W/H the destination size in screen pixels.
type Renderable struct {
	Depth float64
	Image Image
	X, Y  float64
	W, H  float64
}

// TextureSizer reports native pixel dimensions of sprite frames.
type TextureSizer interface {
	SpriteSize(key string) (w, h int)
}

// SortBackToFront orders items by descending depth so a painter's pass
// draws near items last. Equal depths keep their input order.
func SortBackToFront(items []Renderable) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
}

// Merge concatenates wall slices and sprites into one sorted draw list.
func Merge(walls, sprites []Renderable) []Renderable {
	items := make([]Renderable, 0, len(walls)+len(sprites))
	items = append(items, walls...)
	items = append(items, sprites...)
	SortBackToFront(items)
	return items
}
