//go:build !release

package main

import (
	"log"
	"os"
)

// Dev builds read templates and static assets live from disk so edits show
// up on refresh.
func init() {
	log.Println("dev assets: serving templates/ and static/ from disk")
	templatesFS = os.DirFS("templates")
	staticFS = os.DirFS("static")
}
