package tileset

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func intPtr(i int) *int {
	return &i
}

func tile(id int, path string, size int, typ string) TileSource {
	return TileSource{
		ID:    id,
		Image: ImageSource{Path: path, Width: intPtr(size), Height: intPtr(size)},
		Type:  typ,
	}
}

func mapTileset() Source {
	return Source{
		Name:       "map_tileset",
		TileWidth:  64,
		TileHeight: 64,
		Tiles: []TileSource{
			tile(0, "ceil_dirt.png", 16, ""),
			tile(1, "dirt.png", 16, ""),
			tile(2, "floor_tile.png", 64, ""),
			tile(3, "wall_ice.png", 64, ""),
			tile(4, "magic_wood.png", 16, ""),
			tile(5, "door.png", 64, "1"),
			tile(6, "floor_tile_damaged.png", 64, ""),
			tile(7, "wall_dungeon.png", 64, ""),
			tile(8, "wall_wood.png", 64, ""),
		},
	}
}

func TestLoadResolvesEveryTile(t *testing.T) {
	src := mapTileset()
	d, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != len(src.Tiles) {
		t.Fatalf("expected %d tiles, got %d", len(src.Tiles), d.Len())
	}
	if d.Name() != "map_tileset" || d.TileWidth() != 64 || d.TileHeight() != 64 {
		t.Fatalf("unexpected header %q %dx%d", d.Name(), d.TileWidth(), d.TileHeight())
	}

	for _, ts := range src.Tiles {
		def, err := d.Resolve(ts.ID)
		if err != nil {
			t.Fatalf("Resolve(%d): %v", ts.ID, err)
		}
		if def.ID != ts.ID || def.ImagePath != ts.Image.Path || def.Width != *ts.Image.Width || def.Height != *ts.Image.Height || def.Type != ts.Type {
			t.Fatalf("Resolve(%d) = %+v, want %+v", ts.ID, def, ts)
		}
	}
}

func TestDoorScenario(t *testing.T) {
	d, err := Load(mapTileset())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	door, err := Resolve(d, 5)
	if err != nil {
		t.Fatalf("Resolve(5): %v", err)
	}
	if door.Type != "1" {
		t.Fatalf("expected door type %q, got %q", "1", door.Type)
	}
	if !IsInteractive(door) {
		t.Fatalf("door should be interactive")
	}

	floor, err := Resolve(d, 2)
	if err != nil {
		t.Fatalf("Resolve(2): %v", err)
	}
	if IsInteractive(floor) {
		t.Fatalf("floor tile should not be interactive")
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Source)
		want   error
	}{
		{"duplicate_id", func(s *Source) {
			s.Tiles = append(s.Tiles, tile(5, "door_open.png", 64, ""))
		}, ErrDuplicateTileID},
		{"empty_path", func(s *Source) {
			s.Tiles[3].Image.Path = ""
		}, ErrMissingImagePath},
		{"blank_path", func(s *Source) {
			s.Tiles[3].Image.Path = "   "
		}, ErrMissingImagePath},
		{"zero_width", func(s *Source) {
			s.Tiles[1].Image.Width = intPtr(0)
		}, ErrInvalidDimension},
		{"negative_height", func(s *Source) {
			s.Tiles[7].Image.Height = intPtr(-16)
		}, ErrInvalidDimension},
		{"zero_grid", func(s *Source) {
			s.TileWidth = 0
		}, ErrInvalidDimension},
		{"duplicate_before_missing_path", func(s *Source) {
			s.Tiles = append(s.Tiles, TileSource{ID: 5})
		}, ErrDuplicateTileID},
		{"duplicate_before_bad_dimension", func(s *Source) {
			s.Tiles = append(s.Tiles, TileSource{ID: 2, Image: ImageSource{Path: "x.png", Width: intPtr(0)}})
		}, ErrDuplicateTileID},
		{"negative_id_before_missing_path", func(s *Source) {
			s.Tiles[4] = TileSource{ID: -3}
		}, ErrInvalidTileID},
		{"negative_id", func(s *Source) {
			s.Tiles[0].ID = -1
		}, ErrInvalidTileID},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := mapTileset()
			c.mutate(&src)
			d, err := Load(src)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if d != nil {
				t.Fatalf("expected no descriptor on failure")
			}
		})
	}
}

func TestLoadOptionalFields(t *testing.T) {
	src := Source{
		Name:       "sparse",
		TileWidth:  32,
		TileHeight: 32,
		Tiles: []TileSource{
			{ID: 10, Image: ImageSource{Path: "a.png"}},
			{ID: 3, Image: ImageSource{Path: "a.png"}, Type: "spike"},
		},
	}
	d, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.IDs(); !reflect.DeepEqual(got, []int{10, 3}) {
		t.Fatalf("expected description order [10 3], got %v", got)
	}
	def, err := d.Resolve(10)
	if err != nil {
		t.Fatalf("Resolve(10): %v", err)
	}
	if def.Width != 0 || def.Height != 0 {
		t.Fatalf("expected unknown size, got %dx%d", def.Width, def.Height)
	}
	spike, _ := d.Resolve(3)
	if !IsInteractive(spike) {
		t.Fatalf("any non-empty tag should be interactive")
	}
}

func TestResolveUnknown(t *testing.T) {
	d, err := Load(mapTileset())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, id := range []int{99, 9, -1} {
		if _, err := d.Resolve(id); !errors.Is(err, ErrUnknownTileID) {
			t.Fatalf("Resolve(%d): expected ErrUnknownTileID, got %v", id, err)
		}
	}
}

func TestResolveNilDescriptor(t *testing.T) {
	var d *Descriptor
	if _, err := Resolve(d, 0); !errors.Is(err, ErrUnknownTileID) {
		t.Fatalf("expected ErrUnknownTileID, got %v", err)
	}
	if _, _, err := d.ResolveGID(1, 1); !errors.Is(err, ErrUnknownTileID) {
		t.Fatalf("expected ErrUnknownTileID from ResolveGID, got %v", err)
	}
}

func TestConcurrentReads(t *testing.T) {
	src := mapTileset()
	src.Properties = map[string]string{"biome": "dungeon"}
	d, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := d.All()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := (g + i) % 10
				def, err := d.Resolve(id)
				if id == 9 {
					if !errors.Is(err, ErrUnknownTileID) {
						errs <- fmt.Errorf("Resolve(9): %v", err)
						return
					}
					continue
				}
				if err != nil || !reflect.DeepEqual(def, want[id]) {
					errs <- fmt.Errorf("Resolve(%d) = %+v, %v", id, def, err)
					return
				}
				if v, ok := d.Property("biome"); !ok || v != "dungeon" {
					errs <- fmt.Errorf("Property(biome) = %q, %v", v, ok)
					return
				}
				if len(d.IDs()) != 9 || len(d.All()) != 9 {
					errs <- fmt.Errorf("unexpected tile count")
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestRequire(t *testing.T) {
	d, err := Load(mapTileset())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := d.Require(0, 5, 8, 5); err != nil {
		t.Fatalf("Require known ids: %v", err)
	}

	err = d.Require(1, 42, 99, 42)
	if !errors.Is(err, ErrUnknownTileID) {
		t.Fatalf("expected ErrUnknownTileID, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Fatalf("expected 2 missing ids, got %d", n)
	}
}

func TestIsInteractive(t *testing.T) {
	cases := []struct {
		name string
		def  TileDefinition
		want bool
	}{
		{"untagged", TileDefinition{ID: 1, ImagePath: "dirt.png"}, false},
		{"door", TileDefinition{ID: 5, ImagePath: "door.png", Type: "1"}, true},
		{"new_tag", TileDefinition{ID: 9, ImagePath: "lever.png", Type: "lever"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsInteractive(c.def); got != c.want {
				t.Fatalf("IsInteractive = %v, want %v", got, c.want)
			}
		})
	}
}

func TestLoadIsDeterministic(t *testing.T) {
	a, err := Load(mapTileset())
	if err != nil {
		t.Fatalf("Load a: %v", err)
	}
	b, err := Load(mapTileset())
	if err != nil {
		t.Fatalf("Load b: %v", err)
	}
	if a == b {
		t.Fatalf("expected independent descriptors")
	}
	if !reflect.DeepEqual(a.All(), b.All()) {
		t.Fatalf("descriptors differ:\n%+v\n%+v", a.All(), b.All())
	}
}

func TestDescriptorIsImmutable(t *testing.T) {
	src := mapTileset()
	src.Tiles[5].Properties = map[string]string{"locked": "true"}
	d, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	src.Tiles[5].Properties["locked"] = "false"
	src.Tiles[5].Type = "2"
	*src.Tiles[5].Image.Width = 1

	door, _ := d.Resolve(5)
	if v, _ := door.Property("locked"); v != "true" {
		t.Fatalf("source mutation leaked into descriptor: locked=%q", v)
	}
	if door.Type != "1" || door.Width != 64 {
		t.Fatalf("source mutation leaked into descriptor: %+v", door)
	}

	door.Properties()["locked"] = "false"
	ids := d.IDs()
	ids[0] = 100

	again, _ := d.Resolve(5)
	if v, _ := again.Property("locked"); v != "true" {
		t.Fatalf("Properties copy leaked: locked=%q", v)
	}
	if d.IDs()[0] != 0 {
		t.Fatalf("IDs copy leaked")
	}
}
