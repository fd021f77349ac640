package tileset

import (
	"bytes"
	"encoding/xml"
)

type tsxTileset struct {
	XMLName    xml.Name      `xml:"tileset"`
	Name       string        `xml:"name,attr"`
	TileWidth  int           `xml:"tilewidth,attr"`
	TileHeight int           `xml:"tileheight,attr"`
	TileCount  int           `xml:"tilecount,attr"`
	Columns    int           `xml:"columns,attr"`
	Properties []tsxProperty `xml:"properties>property"`
	Tiles      []tsxTile     `xml:"tile"`
}

type tsxTile struct {
	ID         int           `xml:"id,attr"`
	Type       string        `xml:"type,attr"`
	Class      string        `xml:"class,attr"`
	Image      *tsxImage     `xml:"image"`
	Properties []tsxProperty `xml:"properties>property"`
}

type tsxImage struct {
	Source string `xml:"source,attr"`
	Width  *int   `xml:"width,attr"`
	Height *int   `xml:"height,attr"`
}

type tsxProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
	// multiline string properties carry their value as element text
	Text string `xml:",chardata"`
}

// ParseTSX decodes a Tiled XML tileset (.tsx) made of individual tile images.
func ParseTSX(data []byte) (Source, error) {
	var doc tsxTileset
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return Source{}, err
	}

	src := Source{
		Name:       doc.Name,
		TileWidth:  doc.TileWidth,
		TileHeight: doc.TileHeight,
		Tiles:      make([]TileSource, 0, len(doc.Tiles)),
		Properties: tsxProperties(doc.Properties),
	}
	for _, t := range doc.Tiles {
		ts := TileSource{
			ID:         t.ID,
			Type:       tiledType(t.Type, t.Class),
			Properties: tsxProperties(t.Properties),
		}
		if t.Image != nil {
			ts.Image = ImageSource{Path: t.Image.Source, Width: t.Image.Width, Height: t.Image.Height}
		}
		src.Tiles = append(src.Tiles, ts)
	}
	return src, nil
}

func tsxProperties(props []tsxProperty) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for _, p := range props {
		v := p.Value
		if v == "" {
			v = p.Text
		}
		out[p.Name] = v
	}
	return out
}

// Tiled 1.9 renamed the tile "type" attribute to "class".
func tiledType(typ, class string) string {
	if typ != "" {
		return typ
	}
	return class
}
