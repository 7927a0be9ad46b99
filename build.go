//go:build ignore

// Asset pipeline: minifies CSS/JS for release builds and rewrites the
// references in base.html. Run with `go run build.go -release` before a
// release build, and `go run build.go -clean` to restore the originals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

var (
	m                 = minify.New()
	assetReplacements = map[string]string{
		"style.css":   "style.min.css",
		"insights.js": "insights.min.js",
		"editor.js":   "editor.min.js",
	}
)

func init() {
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/javascript", js.Minify)
}

func main() {
	release := flag.Bool("release", false, "Process assets for release")
	clean := flag.Bool("clean", false, "Clean processed assets and restore original files")
	flag.Parse()

	if *release && *clean {
		log.Fatal("Cannot use -release and -clean flags simultaneously.")
	}

	switch {
	case *release:
		fmt.Println("Processing assets for release...")
		if err := processAssets(); err != nil {
			log.Fatalf("Failed to process assets for release: %v", err)
		}
		fmt.Println("Assets processed successfully.")
	case *clean:
		fmt.Println("Cleaning up processed assets...")
		if err := cleanupAssets(); err != nil {
			log.Fatalf("Failed to clean up assets: %v", err)
		}
		fmt.Println("Cleanup complete.")
	default:
		fmt.Println("No action specified. Use -release to process assets or -clean to clean up.")
	}
}

func processAssets() error {
	for src, dst := range assetReplacements {
		if err := minifyFile(src, dst); err != nil {
			return err
		}
	}
	return updateHTMLReferences(assetReplacements)
}

func cleanupAssets() error {
	reversed := make(map[string]string, len(assetReplacements))
	for src, dst := range assetReplacements {
		reversed[dst] = src
		if err := os.Remove(assetPath(dst)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return updateHTMLReferences(reversed)
}

func minifyFile(src, dst string) error {
	data, err := os.ReadFile(assetPath(src))
	if err != nil {
		return err
	}
	mediatype := "text/javascript"
	if strings.HasSuffix(src, ".css") {
		mediatype = "text/css"
	}
	minified, err := m.Bytes(mediatype, data)
	if err != nil {
		return fmt.Errorf("minify %s: %w", src, err)
	}
	return os.WriteFile(assetPath(dst), minified, 0644)
}

func updateHTMLReferences(replacements map[string]string) error {
	pages, err := filepath.Glob("templates/*.html")
	if err != nil {
		return err
	}
	for _, page := range pages {
		data, err := os.ReadFile(page)
		if err != nil {
			return err
		}
		html := string(data)
		for from, to := range replacements {
			html = strings.ReplaceAll(html, from, to)
		}
		if err := os.WriteFile(page, []byte(html), 0644); err != nil {
			return err
		}
	}
	return nil
}

func assetPath(name string) string {
	sub := "js"
	if strings.HasSuffix(name, ".css") {
		sub = "css"
	}
	return filepath.Join("static", sub, name)
}
