package tileset

import (
	"encoding/json"
	"strings"
)

// tsjTileset is the subset of the Tiled JSON tileset format that ParseJSON
// reads.
type tsjTileset struct {
	Name       string        `json:"name" jsonschema:"required"`
	TileWidth  int           `json:"tilewidth" jsonschema:"required,minimum=1"`
	TileHeight int           `json:"tileheight" jsonschema:"required,minimum=1"`
	TileCount  int           `json:"tilecount,omitempty"`
	Columns    int           `json:"columns,omitempty"`
	Type       string        `json:"type,omitempty"`
	Version    string        `json:"version,omitempty"`
	Properties []tsjProperty `json:"properties,omitempty"`
	Tiles      []tsjTile     `json:"tiles" jsonschema:"required"`
}

type tsjTile struct {
	ID          int           `json:"id" jsonschema:"required,minimum=0"`
	Image       string        `json:"image" jsonschema:"required,minLength=1"`
	ImageWidth  *int          `json:"imagewidth,omitempty" jsonschema:"minimum=1"`
	ImageHeight *int          `json:"imageheight,omitempty" jsonschema:"minimum=1"`
	Type        string        `json:"type,omitempty"`
	Class       string        `json:"class,omitempty"`
	Properties  []tsjProperty `json:"properties,omitempty"`
}

type tsjProperty struct {
	Name  string          `json:"name" jsonschema:"required"`
	Type  string          `json:"type,omitempty"`
	Value json.RawMessage `json:"value"`
}

// ParseJSON decodes a Tiled JSON tileset (.tsj).
func ParseJSON(data []byte) (Source, error) {
	var doc tsjTileset
	if err := json.Unmarshal(data, &doc); err != nil {
		return Source{}, err
	}

	src := Source{
		Name:       doc.Name,
		TileWidth:  doc.TileWidth,
		TileHeight: doc.TileHeight,
		Tiles:      make([]TileSource, 0, len(doc.Tiles)),
		Properties: tsjProperties(doc.Properties),
	}
	for _, t := range doc.Tiles {
		src.Tiles = append(src.Tiles, TileSource{
			ID:         t.ID,
			Image:      ImageSource{Path: t.Image, Width: t.ImageWidth, Height: t.ImageHeight},
			Type:       tiledType(t.Type, t.Class),
			Properties: tsjProperties(t.Properties),
		})
	}
	return src, nil
}

func tsjProperties(props []tsjProperty) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for _, p := range props {
		out[p.Name] = rawString(p.Value)
	}
	return out
}

// rawString keeps strings unquoted and every other scalar as written.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
