package tileimg

import (
	"image"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tileset/tileset"
)

var placeholderColors = [2]color.RGBA{
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// Cache turns tile ids of one tileset into ebiten images, decoding each
// image the first time it is asked for. Images are fitted to the tileset's
// grid cell.
type Cache struct {
	tiles *tileset.Descriptor
	fsys  fs.FS
	dir   string

	mu          sync.Mutex
	images      map[int]*ebiten.Image
	failed      map[int]struct{}
	placeholder *ebiten.Image

	upload func(image.Image) *ebiten.Image
}

// NewCache reads tile images from dir inside fsys, usually the directory
// holding the tileset file.
func NewCache(tiles *tileset.Descriptor, fsys fs.FS, dir string) *Cache {
	return &Cache{
		tiles:  tiles,
		fsys:   fsys,
		dir:    dir,
		images: make(map[int]*ebiten.Image),
		failed: make(map[int]struct{}),
		upload: ebiten.NewImageFromImage,
	}
}

// Image returns the image for id, or the resolve/decode error.
func (c *Cache) Image(id int) (*ebiten.Image, error) {
	def, err := c.tiles.Resolve(id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[id]; ok {
		return img, nil
	}

	src, err := Decode(c.fsys, c.dir, def)
	if err != nil {
		return nil, err
	}
	img := c.upload(Fit(src, c.tiles.TileWidth(), c.tiles.TileHeight()))
	c.images[id] = img
	return img, nil
}

// ImageOrPlaceholder is Image with a checkerboard substitute for unknown ids
// and unreadable images. A failing id is logged and tried only once; Image
// still retries it.
func (c *Cache) ImageOrPlaceholder(id int) *ebiten.Image {
	c.mu.Lock()
	if _, ok := c.failed[id]; ok {
		defer c.mu.Unlock()
		return c.placeholderLocked()
	}
	c.mu.Unlock()

	img, err := c.Image(id)
	if err == nil {
		return img
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.failed[id]; !ok {
		c.failed[id] = struct{}{}
		log.Printf("tileimg: using placeholder: %v", err)
	}
	return c.placeholderLocked()
}

func (c *Cache) placeholderLocked() *ebiten.Image {
	if c.placeholder == nil {
		c.placeholder = c.upload(Placeholder(c.tiles.TileWidth(), c.tiles.TileHeight()))
	}
	return c.placeholder
}

// Len reports how many tile images have been decoded.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Placeholder builds the missing-tile checkerboard at w x h.
func Placeholder(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cw, ch := max(w/4, 1), max(h/4, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, placeholderColors[(x/cw+y/ch)%2])
		}
	}
	return img
}
