package application

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Content formats accepted on create and update. The dashboard historically
// submitted raw HTML; markdown is rendered to HTML before persistence so the
// stored representation is always HTML.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// renderContent converts a markdown post body to HTML. HTML (or an empty
// format) passes through untouched. Format values are validated before this
// is called.
func renderContent(content, format string) (string, error) {
	switch format {
	case "", FormatHTML:
		return content, nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("failed to render markdown: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported content format %q", format)
	}
}

func validFormat(format string) bool {
	switch format {
	case "", FormatHTML, FormatMarkdown:
		return true
	}
	return false
}
