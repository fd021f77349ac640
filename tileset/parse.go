package tileset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a tileset serialisation.
type Format string

const (
	FormatTSX  Format = "tsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file name's extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tsx", ".xml":
		return FormatTSX, nil
	case ".tsj", ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", name, ErrUnknownFormat)
}

// Parse decodes data in the format implied by name.
func Parse(name string, data []byte) (Source, error) {
	format, err := FormatOf(name)
	if err != nil {
		return Source{}, err
	}

	var src Source
	switch format {
	case FormatTSX:
		src, err = ParseTSX(data)
	case FormatJSON:
		src, err = ParseJSON(data)
	case FormatYAML:
		src, err = ParseYAML(data)
	}
	if err != nil {
		return Source{}, fmt.Errorf("tileset: parse %s %s: %w", format, name, err)
	}
	return src, nil
}

// LoadBytes parses and loads a tileset file's contents.
func LoadBytes(name string, data []byte) (*Descriptor, error) {
	src, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	return Load(src)
}
