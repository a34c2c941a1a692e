package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates the page front matter could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Document is a preprocessed Markdown page.
type Document struct {
	Title string         // From front matter "title", empty if absent
	Meta  map[string]any // Decoded front matter (YAML, TOML or JSON)
	Body  string         // Markdown without front matter
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) (*Document, error)
}

// CommonMarkPreprocessor normalizes pages before rewriting and conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings and splits off front matter.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content = normalizeLineEndings(content)

	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	doc := &Document{Meta: meta, Body: string(body)}
	if title, ok := meta["title"].(string); ok {
		doc.Title = strings.TrimSpace(title)
	}
	return doc, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
