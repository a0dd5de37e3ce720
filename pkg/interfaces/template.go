package interfaces

import "io"

// TemplateRenderer lets hosts render the hero region with their own template
// engine. The showcase renderer falls back to html/template when unset.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}
