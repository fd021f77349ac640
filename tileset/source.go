package tileset

// Source is a decoded tileset description before validation. The Parse*
// functions produce it; Load turns it into a Descriptor.
type Source struct {
	Name       string
	TileWidth  int
	TileHeight int
	Tiles      []TileSource
	Properties map[string]string
}

type TileSource struct {
	ID         int
	Image      ImageSource
	Type       string
	Properties map[string]string
}

// ImageSource references a tile image. Width and Height are nil when the
// description leaves them out.
type ImageSource struct {
	Path   string
	Width  *int
	Height *int
}
