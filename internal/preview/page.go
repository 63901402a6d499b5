package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderPage converts one generated Markdown file into a standalone HTML
// page. The page title comes from the first heading of the converted
// body, falling back to the file name.
func RenderPage(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	title := firstHeading(body.Bytes())
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	page.WriteString(htmlEscape(title))
	page.WriteString("</title></head><body>")
	page.Write(body.Bytes())
	page.WriteString("</body></html>")
	return page.String(), nil
}

// firstHeading extracts the text of the first h1-h3 in an HTML fragment.
func firstHeading(fragment []byte) string {
	doc, err := html.Parse(bytes.NewReader(fragment))
	if err != nil {
		return ""
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3":
				found = strings.TrimSpace(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
