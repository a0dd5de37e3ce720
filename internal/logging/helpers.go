package logging

import (
	"maps"
	"strings"

	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// WithFields attaches fields when the logger implements interfaces.FieldsLogger
// and returns it unchanged otherwise.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithSlideContext tags entries with the slide id, type and locale being processed.
// Blank values are skipped.
func WithSlideContext(logger interfaces.Logger, slideID, slideType, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(slideID); trimmed != "" {
		fields["slide_id"] = trimmed
	}
	if trimmed := strings.TrimSpace(slideType); trimmed != "" {
		fields["slide_type"] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields["locale"] = trimmed
	}
	return WithFields(logger, fields)
}
