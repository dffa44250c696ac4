// Package docs serves the embedded markdown description of each pattern.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/sghaida/patterns/demo"
)

//go:embed patterns/*.md
var files embed.FS

// Names lists every documented pattern, sorted.
func Names() []string {
	entries, _ := fs.ReadDir(files, "patterns")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Describe returns the markdown source for name. Unknown names yield a
// demo.UnknownScenarioError.
func Describe(name string) (string, error) {
	data, err := files.ReadFile(path.Join("patterns", name+".md"))
	if errors.Is(err, fs.ErrNotExist) {
		return "", demo.UnknownScenarioError{Name: name}
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HTML renders the description of name to HTML.
func HTML(name string) (string, error) {
	src, err := Describe(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("docs: render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Headings returns the text of every heading in the description of name,
// in document order.
func Headings(name string) ([]string, error) {
	src, err := Describe(name)
	if err != nil {
		return nil, err
	}
	body := []byte(src)
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var out []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			out = append(out, headingText(h, body))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return out, nil
}

func headingText(h *gmast.Heading, source []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
	}
	return b.String()
}
