package tilesets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/milk9111/tileset/tileset"
)

//go:embed *.tsx *.tsj *.yaml
var TilesetsFS embed.FS

// Catalog reads tileset descriptions from Dir on disk first and from FS
// when the file is not there. Either may be empty.
type Catalog struct {
	Dir string
	FS  fs.FS
}

// Default returns a catalog over the local tilesets directory backed by the
// embedded files.
func Default() Catalog {
	return Catalog{Dir: "tilesets", FS: TilesetsFS}
}

// Read returns the raw file. Only a missing disk file falls back to FS;
// names outside the catalog root are rejected.
func (c Catalog) Read(name string) ([]byte, error) {
	clean := cleanTilesetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("tilesets: empty name")
	}
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("tilesets: %s: %w", name, fs.ErrInvalid)
	}
	if c.Dir != "" {
		data, err := os.ReadFile(c.diskPath(clean))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("tilesets: %w", err)
		}
	}
	if c.FS == nil {
		return nil, fmt.Errorf("tilesets: %s: %w", clean, fs.ErrNotExist)
	}
	return fs.ReadFile(c.FS, clean)
}

// Load reads and loads a tileset. Every call returns a new descriptor.
func (c Catalog) Load(name string) (*tileset.Descriptor, error) {
	data, err := c.Read(name)
	if err != nil {
		return nil, fmt.Errorf("tilesets: load %s: %w", name, err)
	}
	return tileset.LoadBytes(cleanTilesetPath(name), data)
}

func (c Catalog) ModTime(name string) (time.Time, bool) {
	if c.Dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(c.diskPath(cleanTilesetPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Names lists the tileset files available from FS and Dir, sorted.
func (c Catalog) Names() ([]string, error) {
	seen := map[string]struct{}{}
	if c.FS != nil {
		entries, err := fs.ReadDir(c.FS, ".")
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && isTilesetFile(e.Name()) {
				seen[e.Name()] = struct{}{}
			}
		}
	}
	if c.Dir != "" {
		entries, err := os.ReadDir(c.Dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && isTilesetFile(e.Name()) {
				seen[e.Name()] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (c Catalog) diskPath(clean string) string {
	return filepath.Join(c.Dir, filepath.FromSlash(clean))
}

func cleanTilesetPath(p string) string {
	if p == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(p))
	if after, ok := strings.CutPrefix(s, "tilesets/"); ok {
		s = after
	}
	if s == "." {
		return ""
	}
	return s
}

func isTilesetFile(name string) bool {
	_, err := tileset.FormatOf(name)
	return err == nil
}
