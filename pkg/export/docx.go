package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

// DocxExporter writes documents as .docx files
type DocxExporter struct {
	logger *zap.Logger
}

// NewDocxExporter creates a new DOCX exporter
func NewDocxExporter(logger *zap.Logger) *DocxExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocxExporter{logger: logger}
}

// Export implements Exporter. The file is written next to destination and
// renamed into place, so a repeated export replaces the previous file whole.
func (e *DocxExporter) Export(ctx context.Context, text, destination string) error {
	if strings.TrimSpace(destination) == "" {
		return unavailable(destination, "destination is empty", nil)
	}
	if err := ctx.Err(); err != nil {
		return unavailable(destination, "export cancelled", err)
	}

	doc := docx.New().WithDefaultTheme()
	for _, line := range paragraphs(text) {
		doc.AddParagraph().AddText(line)
	}

	dir := filepath.Dir(destination)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destination)+".*.tmp")
	if err != nil {
		return unavailable(destination, "destination is not writable", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename has succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := doc.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return unavailable(destination, "failed to write document", err)
	}
	if err := tmp.Close(); err != nil {
		return unavailable(destination, "failed to write document", err)
	}
	if err := os.Rename(tmpName, destination); err != nil {
		return unavailable(destination, "failed to move document into place", err)
	}

	e.logger.Info("exported document",
		zap.String("destination", destination),
		zap.Int("paragraphs", len(paragraphs(text))),
	)
	return nil
}

// paragraphs splits text into lines, dropping the final line terminator
func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
