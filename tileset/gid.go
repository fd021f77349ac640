package tileset

import "fmt"

// Flip holds the transform bits Tiled stores in the top of a layer gid.
type Flip uint32

const (
	FlipHorizontal Flip = 0x80000000
	FlipVertical   Flip = 0x40000000
	FlipDiagonal   Flip = 0x20000000
	// RotateHex120 is only meaningful on hexagonal maps.
	RotateHex120 Flip = 0x10000000

	flipMask = uint32(FlipHorizontal | FlipVertical | FlipDiagonal | RotateHex120)
)

func (f Flip) Horizontal() bool { return f&FlipHorizontal != 0 }
func (f Flip) Vertical() bool { return f&FlipVertical != 0 }
func (f Flip) Diagonal() bool { return f&FlipDiagonal != 0 }

// DecodeGID splits a raw layer value into its gid and flip bits.
func DecodeGID(raw uint32) (uint32, Flip) {
	return raw &^ flipMask, Flip(raw & flipMask)
}

// ResolveGID resolves a raw layer value for a tileset that starts at
// firstGID in the map.
func (d *Descriptor) ResolveGID(raw, firstGID uint32) (TileDefinition, Flip, error) {
	gid, flip := DecodeGID(raw)
	if gid == 0 {
		return TileDefinition{}, flip, ErrEmptyCell
	}
	if d == nil {
		_, err := d.Resolve(int(gid))
		return TileDefinition{}, flip, err
	}
	if gid < firstGID {
		return TileDefinition{}, flip, fmt.Errorf("tileset %q: gid %d below first gid %d: %w", d.name, gid, firstGID, ErrUnknownTileID)
	}
	def, err := d.Resolve(int(gid - firstGID))
	return def, flip, err
}
