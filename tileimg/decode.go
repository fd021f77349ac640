package tileimg

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/milk9111/tileset/tileset"
)

// Decode reads and decodes the image for def from dir inside fsys. A size
// that disagrees with the declared one is logged, not rejected.
func Decode(fsys fs.FS, dir string, def tileset.TileDefinition) (image.Image, error) {
	p := imagePath(dir, def.ImagePath)
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("tileimg: read tile %d: %w", def.ID, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("tileimg: decode %s: %w", p, err)
	}

	size := img.Bounds().Size()
	if (def.Width > 0 && size.X != def.Width) || (def.Height > 0 && size.Y != def.Height) {
		log.Printf("tileimg: tile %d: %s is %dx%d, declared %dx%d", def.ID, p, size.X, size.Y, def.Width, def.Height)
	}
	return img, nil
}

// Fit scales img to a w x h grid cell with nearest-neighbour sampling so
// pixel art stays sharp. Images already at that size are returned as is.
func Fit(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// imagePath joins a tile image reference onto the tileset's directory.
// Tiled writes paths relative to the tileset file.
func imagePath(dir, ref string) string {
	ref = filepath.ToSlash(ref)
	if dir == "" || dir == "." {
		return path.Clean(ref)
	}
	return path.Join(filepath.ToSlash(dir), ref)
}
