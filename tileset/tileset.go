package tileset

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// TileDefinition is the resolved entry for one tile id.
type TileDefinition struct {
	ID        int
	ImagePath string
	// Width and Height are the source image size in pixels, 0 when the
	// description did not state them.
	Width  int
	Height int
	// Type is an open-ended tag such as a door marker. Empty for plain tiles.
	Type string

	props map[string]string
}

// Property returns a custom tile property.
func (t TileDefinition) Property(name string) (string, bool) {
	v, ok := t.props[name]
	return v, ok
}

// Properties returns a copy of the custom tile properties.
func (t TileDefinition) Properties() map[string]string {
	return maps.Clone(t.props)
}

// IsInteractive reports whether the tile carries a type tag. What a given
// tag means is up to the gameplay code.
func IsInteractive(def TileDefinition) bool {
	return def.Type != ""
}

// Descriptor is an immutable, loaded tileset. It is safe for concurrent use.
type Descriptor struct {
	name       string
	tileWidth  int
	tileHeight int
	tiles      map[int]TileDefinition
	order      []int
	props      map[string]string
}

func (d *Descriptor) Name() string { return d.name }
func (d *Descriptor) TileWidth() int { return d.tileWidth }
func (d *Descriptor) TileHeight() int { return d.tileHeight }
func (d *Descriptor) Len() int { return len(d.order) }

// IDs returns the tile ids in the order they were described.
func (d *Descriptor) IDs() []int {
	return slices.Clone(d.order)
}

// All returns every definition in description order.
func (d *Descriptor) All() []TileDefinition {
	out := make([]TileDefinition, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.tiles[id])
	}
	return out
}

// Property returns a tileset-level custom property.
func (d *Descriptor) Property(name string) (string, bool) {
	v, ok := d.props[name]
	return v, ok
}

// Resolve returns the definition for id. A nil descriptor has no tiles.
func (d *Descriptor) Resolve(id int) (TileDefinition, error) {
	if d == nil {
		return TileDefinition{}, fmt.Errorf("tileset: nil descriptor: tile %d: %w", id, ErrUnknownTileID)
	}
	def, ok := d.tiles[id]
	if !ok {
		return TileDefinition{}, fmt.Errorf("tileset %q: tile %d: %w", d.name, id, ErrUnknownTileID)
	}
	return def, nil
}

// Resolve is the function form of Descriptor.Resolve.
func Resolve(d *Descriptor, id int) (TileDefinition, error) {
	return d.Resolve(id)
}

// Require checks that every id is present and reports all missing ones.
func (d *Descriptor) Require(ids ...int) error {
	var errs []error
	seen := make(map[int]struct{})
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, err := d.Resolve(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load validates src and builds a Descriptor from it. Nothing is returned
// on failure. Load does no file or image I/O.
func Load(src Source) (*Descriptor, error) {
	if src.TileWidth <= 0 || src.TileHeight <= 0 {
		return nil, fmt.Errorf("tileset %q: grid %dx%d: %w", src.Name, src.TileWidth, src.TileHeight, ErrInvalidDimension)
	}

	d := &Descriptor{
		name:       src.Name,
		tileWidth:  src.TileWidth,
		tileHeight: src.TileHeight,
		tiles:      make(map[int]TileDefinition, len(src.Tiles)),
		order:      make([]int, 0, len(src.Tiles)),
		props:      maps.Clone(src.Properties),
	}

	for _, t := range src.Tiles {
		if t.ID < 0 {
			return nil, fmt.Errorf("tileset %q: tile %d: %w", src.Name, t.ID, ErrInvalidTileID)
		}
		if _, ok := d.tiles[t.ID]; ok {
			return nil, fmt.Errorf("tileset %q: tile %d: %w", src.Name, t.ID, ErrDuplicateTileID)
		}
		def, err := definitionFromSource(t)
		if err != nil {
			return nil, fmt.Errorf("tileset %q: tile %d: %w", src.Name, t.ID, err)
		}
		d.tiles[def.ID] = def
		d.order = append(d.order, def.ID)
	}

	return d, nil
}

func definitionFromSource(t TileSource) (TileDefinition, error) {
	if strings.TrimSpace(t.Image.Path) == "" {
		return TileDefinition{}, ErrMissingImagePath
	}

	w, err := dimension("width", t.Image.Width)
	if err != nil {
		return TileDefinition{}, err
	}
	h, err := dimension("height", t.Image.Height)
	if err != nil {
		return TileDefinition{}, err
	}

	return TileDefinition{
		ID:        t.ID,
		ImagePath: t.Image.Path,
		Width:     w,
		Height:    h,
		Type:      t.Type,
		props:     maps.Clone(t.Properties),
	}, nil
}

func dimension(name string, v *int) (int, error) {
	if v == nil {
		return 0, nil
	}
	if *v <= 0 {
		return 0, fmt.Errorf("%s %d: %w", name, *v, ErrInvalidDimension)
	}
	return *v, nil
}
