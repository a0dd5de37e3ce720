package markdown

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

const articleSource = `---
title_en: Steel Imports Rise
title_ar: ارتفاع واردات الصلب
slug_en: steel-imports-rise
category: news
published_at: 2024-03-05T00:00:00Z
---
# Steel

Prices <script>alert(1)</script> are **up**.
`

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte(articleSource))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.TitleEn != "Steel Imports Rise" || meta.TitleAr != "ارتفاع واردات الصلب" {
		t.Fatalf("unexpected titles %+v", meta)
	}
	if !meta.PublishedAt.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected published_at %v", meta.PublishedAt)
	}
	if !strings.Contains(string(body), "# Steel") {
		t.Fatalf("body missing heading: %q", body)
	}
}

func TestGoldmarkParserSanitizes(t *testing.T) {
	html, err := NewGoldmarkParser(ParseOptions{Sanitize: true}).Parse([]byte("Hello <script>x()</script> **world**"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := string(html)
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected script to be stripped, got %s", out)
	}
	if !strings.Contains(out, "<strong>world</strong>") {
		t.Fatalf("expected markdown rendering, got %s", out)
	}
}

func TestLoaderSkipsDraftsAndNonMarkdown(t *testing.T) {
	fsys := fstest.MapFS{
		"articles/a.md":      {Data: []byte(articleSource)},
		"articles/b.md":      {Data: []byte("---\ntitle_en: Draft\ndraft: true\n---\nbody")},
		"articles/notes.txt": {Data: []byte("ignored")},
	}

	docs, err := NewLoader(fsys, nil, "").LoadDirectory(context.Background(), "articles")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 1 || docs[0].Path != "articles/a.md" {
		t.Fatalf("expected only a.md, got %+v", docs)
	}
	if strings.Contains(string(docs[0].HTML), "<script>") {
		t.Fatalf("expected sanitized html")
	}
}
