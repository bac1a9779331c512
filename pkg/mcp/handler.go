package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ericksa/legalwhiz/internal/audit"
	"github.com/ericksa/legalwhiz/internal/config"
	"github.com/ericksa/legalwhiz/internal/workers"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Worker interface {
	GetTools() []workers.ToolDef
	Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error)
}

type Handler struct {
	config  *config.Config
	audit   *audit.Auditor
	workers map[string]Worker
	server  *mcp.Server
}

func NewHandler(cfg *config.Config) *Handler {
	h := &Handler{
		config:  cfg,
		audit:   audit.NewAuditor(cfg.LegalWhiz.Audit.Path),
		workers: make(map[string]Worker),
	}

	// Contract worker (always enabled)
	h.workers["contract"] = workers.NewContractWorkerState(cfg.LegalWhiz.Analyzer.MaxDocumentLength)

	// Document worker for text extraction
	h.workers["document"] = workers.NewDocumentWorkerState(cfg.LegalWhiz.Documents.BasePath)

	h.initMCPServer()
	return h
}

func (h *Handler) initMCPServer() {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "LegalWhiz Gateway",
		Version: "1.0.0",
	}, nil)

	for name, worker := range h.workers {
		for _, tool := range worker.GetTools() {
			toolName := fmt.Sprintf("%s_%s", name, tool.Name)
			toolDesc := tool.Description
			w := worker
			mcp.AddTool(server, &mcp.Tool{
				Name:        toolName,
				Description: toolDesc,
			}, h.wrapTool(w, toolName))
		}
	}

	h.server = server
}

func (h *Handler) wrapTool(w Worker, toolName string) func(ctx context.Context, req *mcp.CallToolRequest, input any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input any) (*mcp.CallToolResult, any, error) {
		inputBytes, _ := json.Marshal(input)
		start := time.Now()
		result, err := w.Execute(ctx, toolName, inputBytes)
		h.audit.Log(toolName, inputBytes, result, time.Since(start), err)
		if err != nil {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{
					&mcp.TextContent{Text: err.Error()},
				},
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(result)},
			},
		}, nil, nil
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.server == nil {
		http.Error(w, "MCP server not initialized", http.StatusInternalServerError)
		return
	}
	h.server.Run(r.Context(), &mcp.StdioTransport{})
}

func (h *Handler) ExecuteTool(ctx context.Context, toolName string, args json.RawMessage) ([]byte, error) {
	for name, worker := range h.workers {
		fullPrefix := name + "_"
		if len(toolName) > len(fullPrefix) && toolName[:len(fullPrefix)] == fullPrefix {
			shortName := toolName[len(fullPrefix):]
			start := time.Now()
			result, err := worker.Execute(ctx, shortName, args)
			h.audit.Log(toolName, args, result, time.Since(start), err)
			return result, err
		}
	}
	return nil, fmt.Errorf("tool not found: %s", toolName)
}

// Tools returns every registered tool with its worker prefix applied.
func (h *Handler) Tools() []workers.ToolDef {
	var defs []workers.ToolDef
	for name, worker := range h.workers {
		for _, tool := range worker.GetTools() {
			defs = append(defs, workers.ToolDef{
				Name:        fmt.Sprintf("%s_%s", name, tool.Name),
				Description: tool.Description,
			})
		}
	}
	return defs
}

// Close releases the audit log handle.
func (h *Handler) Close() {
	h.audit.Close()
}
