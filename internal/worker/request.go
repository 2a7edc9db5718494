package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aescanero/dago-node-drafter/pkg/documents"
	"github.com/aescanero/dago-node-drafter/pkg/export"
)

// Error codes published on the errors stream
const (
	CodeInvalidInput      = "invalid_input"
	CodeUnknownKind       = "unknown_kind"
	CodeExportUnavailable = "export_unavailable"
	CodeInternal          = "internal"
)

// RenderRequest is the payload of a work message
type RenderRequest struct {
	RequestID string          `json:"request_id"`
	Kind      string          `json:"kind"`
	Fields    json.RawMessage `json:"fields"`
	Export    *ExportRequest  `json:"export,omitempty"`
}

// ExportRequest asks for the rendered document to be exported as well
type ExportRequest struct {
	Destination string `json:"destination"`
}

// RenderResult is published for every rendered document. ExportError is set
// when the text rendered but the export failed.
type RenderResult struct {
	RequestID   string `json:"request_id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	LineCount   int    `json:"line_count"`
	ExportedTo  string `json:"exported_to,omitempty"`
	ExportError string `json:"export_error,omitempty"`
}

// parseRenderRequest parses a render request from a Redis message
func parseRenderRequest(values map[string]interface{}) (*RenderRequest, error) {
	dataStr, ok := values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var request RenderRequest
	if err := json.Unmarshal([]byte(dataStr), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal render request: %w", err)
	}

	if strings.TrimSpace(request.RequestID) == "" {
		request.RequestID = uuid.NewString()
	}

	return &request, nil
}

// errorCode classifies a processing error for the errors stream
func errorCode(err error) string {
	switch {
	case errors.Is(err, documents.ErrUnknownKind):
		return CodeUnknownKind
	case errors.Is(err, documents.ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, export.ErrExportUnavailable):
		return CodeExportUnavailable
	default:
		return CodeInternal
	}
}

// exportPath confines an export destination to dir. Only the base name of
// the requested destination is kept and ".docx" is appended when missing.
func exportPath(dir, destination string) (string, error) {
	base := filepath.Base(filepath.Clean(strings.TrimSpace(destination)))
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("invalid export destination %q", destination)
	}

	if !strings.EqualFold(filepath.Ext(base), ".docx") {
		base += ".docx"
	}
	return filepath.Join(dir, base), nil
}

// Processor renders requests and performs requested exports
type Processor struct {
	renderer  *documents.Renderer
	exporter  export.Exporter
	exportDir string
	logger    *zap.Logger
}

// NewProcessor creates a new processor
func NewProcessor(renderer *documents.Renderer, exporter export.Exporter, exportDir string, logger *zap.Logger) *Processor {
	if exporter == nil {
		exporter = export.Unavailable{}
	}
	return &Processor{
		renderer:  renderer,
		exporter:  exporter,
		exportDir: exportDir,
		logger:    logger,
	}
}

// Process renders a request. A failed export does not fail the request; it
// is reported on the result instead.
func (p *Processor) Process(ctx context.Context, request *RenderRequest) (*RenderResult, error) {
	kind, err := documents.ParseKind(request.Kind)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if len(request.Fields) > 0 && string(request.Fields) != "null" {
		payload = request.Fields
	}

	fs, err := documents.Decode(kind, payload)
	if err != nil {
		return nil, err
	}

	doc, err := p.renderer.Render(fs)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{
		RequestID: request.RequestID,
		Kind:      string(kind),
		Title:     doc.Title(),
		Text:      doc.Text(),
		LineCount: len(doc.Lines()),
	}

	if request.Export == nil || strings.TrimSpace(request.Export.Destination) == "" {
		return result, nil
	}

	path, err := exportPath(p.exportDir, request.Export.Destination)
	if err == nil {
		err = export.ExportDocument(ctx, p.exporter, doc, path)
	}
	if err != nil {
		p.logger.Warn("document export failed",
			zap.String("request_id", request.RequestID),
			zap.String("destination", request.Export.Destination),
			zap.Error(err),
		)
		result.ExportError = err.Error()
		return result, nil
	}

	result.ExportedTo = path
	return result, nil
}
