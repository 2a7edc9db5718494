// Package export writes rendered documents to word-processor files.
//
// Export is optional and separate from rendering: a failed export never
// invalidates the text it was given, and exporting the same text to the same
// destination again is safe.
//
//	exporter := export.NewDocxExporter(logger)
//	if err := export.ExportDocument(ctx, exporter, doc, "lease.docx"); err != nil {
//	    if errors.Is(err, export.ErrExportUnavailable) {
//	        // keep using doc.Text()
//	    }
//	}
//
// When export is switched off, Unavailable stands in for the real exporter
// and reports ErrExportUnavailable on every call.
package export
