package main

import (
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"text/tabwriter"

	"github.com/milk9111/tileset/tileimg"
	"github.com/milk9111/tileset/tileset"
)

// lint loads one tileset and prints its tile table. When images is set,
// every tile image is decoded from it and fitted to the grid as well.
func lint(w io.Writer, name string, data []byte, images fs.FS) error {
	d, err := tileset.LoadBytes(name, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %q %d tiles, grid %dx%d\n", name, d.Name(), d.Len(), d.TileWidth(), d.TileHeight())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\timage\tsize\ttype\tinteractive")
	var failed, scaled int
	for _, def := range d.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n", def.ID, def.ImagePath, size(def), def.Type, tileset.IsInteractive(def))
		if images == nil {
			continue
		}
		img, err := tileimg.Decode(images, ".", def)
		if err != nil {
			fmt.Fprintf(tw, "\t! %v\t\t\t\n", err)
			failed++
			continue
		}
		if fitted := tileimg.Fit(img, d.TileWidth(), d.TileHeight()); fitted != img {
			scaled++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if scaled > 0 {
		fmt.Fprintf(w, "%d tile images scaled to the %dx%d grid\n", scaled, d.TileWidth(), d.TileHeight())
	}

	if failed > 0 {
		return fmt.Errorf("%s: %d tile images failed to load", name, failed)
	}
	return nil
}

func size(def tileset.TileDefinition) string {
	if def.Width == 0 && def.Height == 0 {
		return "-"
	}
	return strconv.Itoa(def.Width) + "x" + strconv.Itoa(def.Height)
}
