package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// newEngine returns a GFM goldmark engine. Raw HTML is passed through so the
// collapsible passed-case section survives conversion.
func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// ToHTML converts a rendered summary into an HTML fragment.
func ToHTML(doc []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := newEngine().Convert(doc, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLPage wraps the converted summary in a minimal standalone document.
func HTMLPage(title string, doc []byte) ([]byte, error) {
	body, err := ToHTML(doc)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = DefaultTitle
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	buf.WriteString(escapeHTML(title))
	buf.WriteString("</title>\n</head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

func escapeHTML(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
