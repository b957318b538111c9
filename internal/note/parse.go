package note

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

type envelope struct {
	Title  string         `yaml:"title"`
	Fields map[string]any `yaml:",inline"`
}

// ParseNoteFile parses a markdown file as a Note, reading the two configured
// timestamp fields from its frontmatter. Returns false only when the file
// cannot be read; missing or malformed frontmatter still yields a note with
// absent timestamps.
func ParseNoteFile(absPath, rootDir string, fields FieldNames) (Note, bool) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return Note{}, false
	}

	relPath, err := filepath.Rel(rootDir, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	relPath = filepath.ToSlash(relPath)

	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(content), &env)
	if err != nil {
		// Malformed frontmatter degrades to a note with no timestamps.
		body = content
		env = envelope{}
	}

	n := Note{
		Title:     env.Title,
		FilePath:  absPath,
		RelPath:   relPath,
		Preview:   extractPreview(string(body)),
		Modified:  coerceTime(env.Fields[fields.Modified]),
		Formatted: coerceTime(env.Fields[fields.Formatted]),
	}

	if n.Title == "" {
		n.Title = extractTitle(string(body))
	}
	if n.Title == "" {
		n.Title = titleFromFilename(filepath.Base(absPath))
	}

	return n, true
}

// timestampLayouts are the accepted textual forms: the fixed layout,
// date-only, and ISO 8601 variants. The YAML decoder hands every scalar
// over as a string, so native YAML timestamps land here too.
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// coerceTime turns a frontmatter value into a timestamp. Anything that
// matches no accepted layout is absent.
func coerceTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func extractTitle(markdown string) string {
	reader := gmtext.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text([]byte(markdown)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return title
}

func extractPreview(markdown string) string {
	reader := gmtext.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var preview strings.Builder
	lineCount := 0
	maxLines := 2

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if n.Kind() == ast.KindHeading {
			return ast.WalkSkipChildren, nil
		}

		if n.Kind() == ast.KindParagraph {
			if lineCount >= maxLines {
				return ast.WalkStop, nil
			}

			text := string(n.Text([]byte(markdown)))
			if text != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(text)
				lineCount++
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	previewText := preview.String()
	if len(previewText) > 120 {
		previewText = previewText[:117] + "..."
	}

	return previewText
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	if name == "" {
		return "Note"
	}

	return name
}
