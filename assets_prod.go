//go:build release

package main

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed all:templates
var embedTemplatesFS embed.FS

//go:embed all:static
var embedStaticFS embed.FS

// Release builds ship every asset inside the binary.
func init() {
	log.Println("release assets: serving embedded templates/ and static/")
	var err error
	templatesFS, err = fs.Sub(embedTemplatesFS, "templates")
	if err != nil {
		log.Fatal("failed to mount embedded templates: ", err)
	}
	staticFS, err = fs.Sub(embedStaticFS, "static")
	if err != nil {
		log.Fatal("failed to mount embedded static files: ", err)
	}
}
