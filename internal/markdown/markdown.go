// Package markdown renders markdown to HTML with GFM extensions and
// syntax-highlighted code fences. It backs the document-conversion skill.
package markdown

import (
	"bytes"
	"fmt"
	"html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var md goldmark.Markdown

func init() {
	md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithUnsafe(), // allow raw HTML in markdown
		),
	)
}

// Render converts markdown to an HTML fragment.
func Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.String(), nil
}

// RenderDocument wraps the rendered fragment in a minimal standalone HTML
// document, ready to hand to a printer or an office importer.
func RenderDocument(title, content string) (string, error) {
	body, err := Render(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if title != "" {
		fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	}
	buf.WriteString(documentStyle)
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.String(), nil
}

const documentStyle = `<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 46em; margin: 2em auto; padding: 0 1em; line-height: 1.6; }
pre { padding: 1em; overflow-x: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
</style>
`
