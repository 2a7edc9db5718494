package export

import (
	"context"

	"github.com/aescanero/dago-node-drafter/pkg/documents"
)

// Exporter persists document text in a word-processor format
type Exporter interface {
	// Export writes one paragraph per line of text, in order, to destination
	Export(ctx context.Context, text, destination string) error
}

// Unavailable is the exporter used when export is switched off. Every call
// fails with ErrExportUnavailable.
type Unavailable struct {
	Reason string
}

// Export implements Exporter
func (u Unavailable) Export(_ context.Context, _ string, destination string) error {
	reason := u.Reason
	if reason == "" {
		reason = "export is disabled"
	}
	return unavailable(destination, reason, nil)
}

// ExportDocument exports a rendered document
func ExportDocument(ctx context.Context, exporter Exporter, doc *documents.Document, destination string) error {
	if exporter == nil {
		return unavailable(destination, "no exporter configured", nil)
	}
	if doc == nil {
		return unavailable(destination, "no document to export", nil)
	}
	return exporter.Export(ctx, doc.Text(), destination)
}
