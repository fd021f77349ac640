package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/milk9111/tileset/tileset"
	"github.com/milk9111/tileset/tilesets"
)

func main() {
	schema := flag.Bool("schema", false, "print the JSON schema of the Tiled JSON tileset format and exit")
	watch := flag.Bool("watch", false, "re-lint files whenever they change")
	dir := flag.String("dir", "tilesets", "directory that overrides the embedded tilesets")
	images := flag.Bool("images", false, "also decode every tile image next to its tileset")
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tilesetlint: ")

	if *schema {
		b, err := json.MarshalIndent(tileset.JSONSchema(), "", "  ")
		if err != nil {
			log.Fatalf("marshal schema: %v", err)
		}
		fmt.Println(string(b))
		return
	}

	files := flag.Args()
	catalog := tilesets.Catalog{Dir: *dir, FS: tilesets.TilesetsFS}

	ok := true
	if len(files) == 0 {
		names, err := catalog.Names()
		if err != nil {
			log.Fatalf("list tilesets: %v", err)
		}
		for _, name := range names {
			ok = lintCatalog(catalog, name, *images) && ok
		}
	} else {
		for _, f := range files {
			ok = lintPath(f, *images) && ok
		}
	}

	if *watch {
		watchFiles(files, catalog, *images)
		return
	}
	if !ok {
		os.Exit(1)
	}
}

func lintCatalog(c tilesets.Catalog, name string, images bool) bool {
	data, err := c.Read(name)
	if err != nil {
		log.Printf("%s: %v", name, err)
		return false
	}
	var imgFS fs.FS
	if images {
		imgFS = os.DirFS(c.Dir)
	}
	if err := lint(os.Stdout, name, data, imgFS); err != nil {
		log.Print(err)
		return false
	}
	return true
}

func lintPath(path string, images bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Print(err)
		return false
	}
	var imgFS fs.FS
	if images {
		imgFS = os.DirFS(filepath.Dir(path))
	}
	if err := lint(os.Stdout, path, data, imgFS); err != nil {
		log.Print(err)
		return false
	}
	return true
}

func watchFiles(files []string, c tilesets.Catalog, images bool) {
	dirs := map[string]struct{}{}
	for _, f := range files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	if len(files) == 0 {
		dirs[c.Dir] = struct{}{}
	}
	list := make([]string, 0, len(dirs))
	for d := range dirs {
		list = append(list, d)
	}

	w, err := tilesets.NewWatcher(list...)
	if err != nil {
		log.Fatalf("watch: %v", err)
	}
	defer w.Close()

	wanted := map[string]struct{}{}
	for _, f := range files {
		wanted[filepath.Clean(f)] = struct{}{}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	log.Printf("watching %v", list)
	for {
		select {
		case name := <-w.Events:
			if _, ok := wanted[filepath.Clean(name)]; len(wanted) > 0 && !ok {
				continue
			}
			if _, err := os.Stat(name); err != nil {
				log.Printf("%s removed", name)
				continue
			}
			lintPath(name, images)
		case err := <-w.Errors:
			log.Printf("watch: %v", err)
		case <-interrupt:
			return
		}
	}
}
