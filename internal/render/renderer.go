// Package render turns a ReportModel into the final paginated PDF: a fixed
// HTML document drawn in a headless browser and captured once its charts
// report ready.
package render

import "context"

// Renderer exports a report document to PDF bytes. The rendering backend is
// an interchangeable collaborator; the in-process Chrome implementation is
// the default.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}
