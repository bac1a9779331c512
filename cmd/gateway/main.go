package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericksa/legalwhiz/internal/config"
	"github.com/ericksa/legalwhiz/internal/middleware"
	"github.com/ericksa/legalwhiz/pkg/mcp"
	"github.com/gorilla/mux"
)

var handler *mcp.Handler

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Create MCP handler
	handler = mcp.NewHandler(cfg)
	defer handler.Close()

	router := newRouter(cfg)

	// Start server
	srv := &http.Server{
		Addr:         cfg.LegalWhiz.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting LegalWhiz Gateway on %s", cfg.LegalWhiz.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func newRouter(cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.LegalWhiz.Server.AllowedOrigins))
	router.Use(middleware.AuthMiddleware(cfg))

	// MCP endpoint
	router.PathPrefix("/mcp").Handler(handler)

	// Health endpoint
	router.HandleFunc("/health", healthHandler).Methods("GET")

	// Tool listing
	router.HandleFunc("/tools", listToolsHandler).Methods("GET")

	// Convenience endpoints for the common operations
	router.HandleFunc("/analyze", analyzeHandler).Methods("POST")
	router.HandleFunc("/explain", explainHandler).Methods("POST")
	router.HandleFunc("/ask", askHandler).Methods("POST")

	// Generic tool endpoints
	router.HandleFunc("/tools/contract/{tool}", contractToolHandler).Methods("POST")
	router.HandleFunc("/tools/document/{tool}", documentToolHandler).Methods("POST")

	// Configuration API
	router.PathPrefix("/configure").Handler(config.NewConfigAPI(cfg).Router())

	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func listToolsHandler(w http.ResponseWriter, r *http.Request) {
	if handler == nil {
		http.Error(w, "handler not initialized", http.StatusInternalServerError)
		return
	}
	tools := handler.Tools()
	names := make([]map[string]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, map[string]string{
			"name":        tool.Name,
			"description": tool.Description,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tools": names})
}

func analyzeHandler(w http.ResponseWriter, r *http.Request) {
	runTool(w, r, "contract", "contract_analyze")
}

func explainHandler(w http.ResponseWriter, r *http.Request) {
	runTool(w, r, "contract", "contract_explain")
}

func askHandler(w http.ResponseWriter, r *http.Request) {
	runTool(w, r, "contract", "contract_qa")
}

func contractToolHandler(w http.ResponseWriter, r *http.Request) {
	runTool(w, r, "contract", mux.Vars(r)["tool"])
}

func documentToolHandler(w http.ResponseWriter, r *http.Request) {
	runTool(w, r, "document", mux.Vars(r)["tool"])
}

func runTool(w http.ResponseWriter, r *http.Request, workerName, toolName string) {
	if handler == nil {
		http.Error(w, "handler not initialized", http.StatusInternalServerError)
		return
	}

	var args map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	argsJSON, _ := json.Marshal(args)
	fullToolName := workerName + "_" + toolName

	result, err := handler.ExecuteTool(r.Context(), fullToolName, argsJSON)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "unknown tool: "+fullToolName, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(result)
}
