package tileset

import "gopkg.in/yaml.v3"

type yamlTileset struct {
	Name       string            `yaml:"name"`
	TileWidth  int               `yaml:"tile_width"`
	TileHeight int               `yaml:"tile_height"`
	Properties map[string]string `yaml:"properties"`
	Tiles      []yamlTile        `yaml:"tiles"`
}

type yamlTile struct {
	ID         int               `yaml:"id"`
	Image      yamlImage         `yaml:"image"`
	Type       string            `yaml:"type"`
	Properties map[string]string `yaml:"properties"`
}

type yamlImage struct {
	Path   string `yaml:"path"`
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
}

// UnmarshalYAML accepts either a bare path or a {path, width, height} map.
func (i *yamlImage) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.Path = value.Value
		return nil
	}
	type plain yamlImage
	return value.Decode((*plain)(i))
}

// ParseYAML decodes the project YAML tileset format:
//
//	name: map_tileset
//	tile_width: 64
//	tile_height: 64
//	tiles:
//	  - id: 5
//	    image: {path: door.png, width: 64, height: 64}
//	    type: "1"
func ParseYAML(data []byte) (Source, error) {
	var doc yamlTileset
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Source{}, err
	}

	src := Source{
		Name:       doc.Name,
		TileWidth:  doc.TileWidth,
		TileHeight: doc.TileHeight,
		Tiles:      make([]TileSource, 0, len(doc.Tiles)),
		Properties: nonEmpty(doc.Properties),
	}
	for _, t := range doc.Tiles {
		src.Tiles = append(src.Tiles, TileSource{
			ID:         t.ID,
			Image:      ImageSource{Path: t.Image.Path, Width: t.Image.Width, Height: t.Image.Height},
			Type:       t.Type,
			Properties: nonEmpty(t.Properties),
		})
	}
	return src, nil
}

func nonEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
