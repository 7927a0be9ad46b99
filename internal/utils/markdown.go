package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Hard wraps turn the editor's plain newlines into <br> markup.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
)

func RenderBody(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var tagRe = regexp.MustCompile(`<[^>]*>`)
var spaceRe = regexp.MustCompile(`\s+`)

// StripTags removes markup so the result can be treated as plain text.
func StripTags(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// GenerateExcerpt derives a truncated plain-text preview from the post body.
// Runes, not bytes, so accented Portuguese text is never cut mid-character.
func GenerateExcerpt(body string, length int) string {
	plain := StripTags(body)
	runes := []rune(plain)
	if len(runes) > length {
		return string(runes[:length]) + "..."
	}
	return plain + "..."
}

// ReadingTime estimates reading time at 200 words per minute.
func ReadingTime(content string) string {
	plain := StripTags(content)
	if plain == "" {
		return "1 min"
	}
	words := len(strings.Fields(plain))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
