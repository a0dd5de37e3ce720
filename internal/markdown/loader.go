package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Document is a parsed article source.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        []byte
	HTML        []byte
}

// Loader discovers Markdown files in a filesystem and parses them.
type Loader struct {
	fs      fs.FS
	parser  *GoldmarkParser
	pattern string
}

// NewLoader returns a loader matching pattern (default "*.md") against file
// base names.
func NewLoader(filesystem fs.FS, parser *GoldmarkParser, pattern string) *Loader {
	if pattern == "" {
		pattern = "*.md"
	}
	if parser == nil {
		parser = NewGoldmarkParser(ParseOptions{Sanitize: true})
	}
	return &Loader{fs: filesystem, parser: parser, pattern: pattern}
}

func (l *Loader) LoadFile(ctx context.Context, name string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}
	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rendered, err := l.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Document{Path: name, FrontMatter: meta, Body: body, HTML: rendered}, nil
}

// LoadDirectory walks dir recursively and returns documents sorted by path.
// Drafts are skipped.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Document, error) {
	var docs []*Document
	err := fs.WalkDir(l.fs, dir, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := path.Match(l.pattern, path.Base(name)); !ok {
			return nil
		}
		doc, err := l.LoadFile(ctx, name)
		if err != nil {
			return err
		}
		if !doc.FrontMatter.Draft {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}
