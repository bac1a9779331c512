package workers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ericksa/legalwhiz/internal/extract"
)

// DocumentWorkerState turns uploaded or on-disk documents into plain text for
// the contract tools. Relative paths resolve against the configured base path.
type DocumentWorkerState struct {
	Tools    []ToolDef
	basePath string
}

func NewDocumentWorkerState(basePath string) *DocumentWorkerState {
	return &DocumentWorkerState{
		Tools: []ToolDef{
			{Name: "document_extract", Description: "Extract plain text from an uploaded document (txt, pdf, docx)"},
			{Name: "document_load", Description: "Load a document from disk and extract its text"},
		},
		basePath: basePath,
	}
}

func (w *DocumentWorkerState) GetTools() []ToolDef {
	return w.Tools
}

func (w *DocumentWorkerState) Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error) {
	switch name {
	case "document_document_extract", "document_extract":
		return w.extractDocument(ctx, input)
	case "document_document_load", "document_load":
		return w.loadDocument(ctx, input)
	default:
		return nil, nil
	}
}

// extractDocument decodes base64 document bytes and extracts their text.
func (w *DocumentWorkerState) extractDocument(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Data   string `json:"data"`
		Format string `json:"format"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if req.Data == "" {
		return nil, fmt.Errorf("data required")
	}

	raw, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}

	text, err := extract.Text(raw, req.Format)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]any{
		"format": req.Format,
		"length": len(text),
		"text":   text,
	})
}

// loadDocument reads a document from disk, picking the format from the file
// extension.
func (w *DocumentWorkerState) loadDocument(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Path string `json:"path"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if req.Path == "" {
		return nil, fmt.Errorf("path required")
	}

	format := extract.FormatForPath(req.Path)
	if format == "" {
		return nil, fmt.Errorf("%w: %s", extract.ErrUnsupportedFormat, filepath.Ext(req.Path))
	}

	data, err := os.ReadFile(w.resolvePath(req.Path))
	if err != nil {
		return nil, err
	}

	text, err := extract.Text(data, format)
	if err != nil {
		return nil, err
	}

	return json.Marshal(map[string]any{
		"path":   req.Path,
		"format": format,
		"length": len(text),
		"text":   text,
	})
}

func (w *DocumentWorkerState) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.basePath, path)
}
