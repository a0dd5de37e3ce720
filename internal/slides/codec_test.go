package slides_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

type logEntry struct {
	level string
	msg   string
}

type recordingLogger struct {
	entries *[]logEntry
}

func newRecordingLogger() (recordingLogger, *[]logEntry) {
	entries := &[]logEntry{}
	return recordingLogger{entries: entries}, entries
}

func (l recordingLogger) add(level, msg string) {
	*l.entries = append(*l.entries, logEntry{level, msg})
}

func (l recordingLogger) Trace(msg string, _ ...any)                    { l.add("trace", msg) }
func (l recordingLogger) Debug(msg string, _ ...any)                    { l.add("debug", msg) }
func (l recordingLogger) Info(msg string, _ ...any)                     { l.add("info", msg) }
func (l recordingLogger) Warn(msg string, _ ...any)                     { l.add("warn", msg) }
func (l recordingLogger) Error(msg string, _ ...any)                    { l.add("error", msg) }
func (l recordingLogger) Fatal(msg string, _ ...any)                    { l.add("fatal", msg) }
func (l recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func hasEntry(entries []logEntry, level, msg string) bool {
	for _, e := range entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

func TestEncodeClearsColumnsOutsideVariant(t *testing.T) {
	section := uuid.New()
	product := uuid.New()
	record := &slides.Record{
		ID:        uuid.New(),
		Placement: slides.SectionPlacement{SectionID: section},
		Content:   slides.ReferenceContent{Type: domain.SlideTypeProduct, ID: product},
		CTA:       slides.CTA{Enabled: true, Href: "/ignored"},
		IsActive:  true,
		SortOrder: 3,
	}

	row := slides.Encode(record)
	if row.SlideType != "product" || row.ProductID == nil || *row.ProductID != product {
		t.Fatalf("expected product reference column, got %+v", row)
	}
	if row.ArticleID != nil || row.ProjectID != nil || row.MainServiceID != nil {
		t.Fatalf("expected other reference columns empty, got %+v", row)
	}
	if row.TitleEn != "" || row.OverlayOpacity != nil || row.BackgroundImageID != nil {
		t.Fatalf("expected custom columns empty, got %+v", row)
	}
	if row.HeroSectionID == nil || row.ParentImportServiceID != nil || row.ParentContractingServiceID != nil {
		t.Fatalf("expected only the section column set, got %+v", row)
	}

	// Switching the same record to custom drops the product id.
	record.Content = slides.CustomContent{Title: domain.Localized{En: "Welcome"}, OverlayOpacity: slides.IntPtr(40)}
	row = slides.Encode(record)
	if row.ProductID != nil || row.SlideType != "custom" || row.TitleEn != "Welcome" || *row.OverlayOpacity != 40 {
		t.Fatalf("expected custom row without reference, got %+v", row)
	}
}

func TestDecodeRoundTripsServicePlacement(t *testing.T) {
	parent := uuid.New()
	project := uuid.New()
	record := &slides.Record{
		ID:        uuid.New(),
		Placement: slides.ServicePlacement{Kind: catalog.ServiceKindContracting, ServiceID: parent},
		Content:   slides.ReferenceContent{Type: domain.SlideTypeProject, ID: project},
	}
	decoded, err := slides.Decode(slides.Encode(record), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	placement, ok := decoded.Placement.(slides.ServicePlacement)
	if !ok || placement.Kind != catalog.ServiceKindContracting || placement.ServiceID != parent {
		t.Fatalf("unexpected placement %+v", decoded.Placement)
	}
	content, ok := decoded.Content.(slides.ReferenceContent)
	if !ok || content.ID != project {
		t.Fatalf("unexpected content %+v", decoded.Content)
	}
}

func TestDecodeLegacyAmbiguousRowPrefersReference(t *testing.T) {
	logger, entries := newRecordingLogger()
	section := uuid.New()
	article := uuid.New()
	row := &slides.Slide{
		ID:            uuid.New(),
		SlideType:     "article",
		HeroSectionID: &section,
		ArticleID:     &article,
		TitleEn:       "Leftover title",
	}

	record, err := slides.Decode(row, logger)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	ref, ok := record.Content.(slides.ReferenceContent)
	if !ok || ref.ID != article {
		t.Fatalf("expected article reference, got %+v", record.Content)
	}
	if !hasEntry(*entries, "warn", "slides.decode.ambiguous_content") {
		t.Fatalf("expected ambiguity warning, got %+v", *entries)
	}
}

func TestDecodeRejectsUnknownTypeAndMissingPlacement(t *testing.T) {
	section := uuid.New()
	if _, err := slides.Decode(&slides.Slide{ID: uuid.New(), SlideType: "banner", HeroSectionID: &section}, nil); err == nil {
		t.Fatalf("expected unknown type error")
	}
	if _, err := slides.Decode(&slides.Slide{ID: uuid.New(), SlideType: "custom"}, nil); err == nil {
		t.Fatalf("expected missing placement error")
	}
}
