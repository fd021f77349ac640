package tileset

import "errors"

var (
	ErrDuplicateTileID  = errors.New("duplicate tile id")
	ErrMissingImagePath = errors.New("missing image path")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidTileID    = errors.New("invalid tile id")
	ErrUnknownTileID    = errors.New("unknown tile id")

	// ErrEmptyCell is returned by ResolveGID for the zero gid, which Tiled
	// writes for cells with no tile.
	ErrEmptyCell = errors.New("empty cell")

	ErrUnknownFormat = errors.New("unknown tileset format")
)
