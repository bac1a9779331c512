package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ericksa/legalwhiz/internal/analyzer"
)

// ContractWorkerState handles contract analysis tools. Analyzed contracts are
// kept in memory keyed by generated ID so follow-up questions don't re-send
// the document.
type ContractWorkerState struct {
	Tools             []ToolDef
	MaxDocumentLength int

	idSeq atomic.Int64

	mu        sync.RWMutex
	Contracts map[string]Contract
}

type Contract struct {
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	Source     string                   `json:"source"`
	RawText    string                   `json:"raw_text"`
	Result     *analyzer.AnalysisResult `json:"result"`
	AnalyzedAt time.Time                `json:"analyzed_at"`
}

func NewContractWorkerState(maxDocumentLength int) *ContractWorkerState {
	return &ContractWorkerState{
		Tools: []ToolDef{
			{Name: "contract_analyze", Description: "Analyze a contract for risky clauses and generate a summary"},
			{Name: "contract_summary", Description: "Get the summary points of an analyzed contract"},
			{Name: "contract_qa", Description: "Answer a question about an analyzed contract"},
			{Name: "contract_explain", Description: "Explain a legal clause in plain English"},
			{Name: "contract_get", Description: "Get an analyzed contract by ID"},
			{Name: "contract_list", Description: "List all analyzed contracts"},
		},
		MaxDocumentLength: maxDocumentLength,
		Contracts:         make(map[string]Contract),
	}
}

func (w *ContractWorkerState) GetTools() []ToolDef {
	return w.Tools
}

func (w *ContractWorkerState) Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error) {
	switch name {
	case "contract_contract_analyze", "contract_analyze":
		return w.analyze(ctx, input)
	case "contract_contract_summary", "contract_summary":
		return w.summary(ctx, input)
	case "contract_contract_qa", "contract_qa":
		return w.qa(ctx, input)
	case "contract_contract_explain", "contract_explain":
		return w.explain(ctx, input)
	case "contract_contract_get", "contract_get":
		return w.get(ctx, input)
	case "contract_contract_list", "contract_list":
		return w.list(ctx, input)
	default:
		return nil, nil
	}
}

// analyze runs the full risk scan and summary over a contract document.
func (w *ContractWorkerState) analyze(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Content string `json:"content"`
		Title   string `json:"title"`
		Source  string `json:"source"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if req.Content == "" {
		return nil, fmt.Errorf("content required")
	}

	content := req.Content
	if w.MaxDocumentLength > 0 && len(content) > w.MaxDocumentLength {
		content = content[:w.MaxDocumentLength]
	}

	result := analyzer.AnalyzeContract(content)

	contract := Contract{
		ID:         generateContractID(req.Source+req.Title+time.Now().Format(time.RFC3339), w.idSeq.Add(1)),
		Title:      req.Title,
		Source:     req.Source,
		RawText:    content,
		Result:     result,
		AnalyzedAt: time.Now(),
	}

	w.mu.Lock()
	w.Contracts[contract.ID] = contract
	w.mu.Unlock()

	return json.Marshal(map[string]any{
		"contract_id":      contract.ID,
		"title":            contract.Title,
		"clause_count":     len(result.RiskyClauses),
		"risky_clauses":    clausesByRisk(result.RiskyClauses),
		"contract_summary": result.ContractSummary,
	})
}

// summary returns the stored summary points for an analyzed contract.
func (w *ContractWorkerState) summary(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ContractID string `json:"contract_id"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	contract, ok := w.lookup(req.ContractID)
	if !ok {
		return nil, fmt.Errorf("contract not found: %s", req.ContractID)
	}

	return json.Marshal(map[string]any{
		"contract_id": contract.ID,
		"summary":     contract.Result.ContractSummary,
	})
}

// qa answers a free-text question against a stored contract, or against
// inline content when no contract ID is given.
func (w *ContractWorkerState) qa(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ContractID string `json:"contract_id"`
		Content    string `json:"content"`
		Question   string `json:"question"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if req.Question == "" {
		return nil, fmt.Errorf("question required")
	}

	text := req.Content
	if req.ContractID != "" {
		contract, ok := w.lookup(req.ContractID)
		if !ok {
			return nil, fmt.Errorf("contract not found: %s", req.ContractID)
		}
		text = contract.RawText
	}
	if text == "" {
		return nil, fmt.Errorf("contract_id or content required")
	}

	answer := analyzer.AnswerQuestion(req.Question, text)

	return json.Marshal(map[string]any{
		"question": req.Question,
		"answer":   answer,
	})
}

// explain translates a single clause into plain English.
func (w *ContractWorkerState) explain(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Clause string `json:"clause"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if req.Clause == "" {
		return nil, fmt.Errorf("clause required")
	}

	return json.Marshal(map[string]any{
		"explanation": analyzer.GetSimpleExplanation(req.Clause),
	})
}

func (w *ContractWorkerState) get(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ContractID string `json:"contract_id"`
	}

	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	contract, ok := w.lookup(req.ContractID)
	if !ok {
		return nil, fmt.Errorf("contract not found: %s", req.ContractID)
	}

	return json.Marshal(contract)
}

func (w *ContractWorkerState) list(ctx context.Context, input json.RawMessage) ([]byte, error) {
	w.mu.RLock()
	summaries := make([]map[string]any, 0, len(w.Contracts))
	for _, c := range w.Contracts {
		summaries = append(summaries, map[string]any{
			"contract_id":  c.ID,
			"title":        c.Title,
			"source":       c.Source,
			"clause_count": len(c.Result.RiskyClauses),
			"analyzed_at":  c.AnalyzedAt,
		})
	}
	w.mu.RUnlock()

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i]["contract_id"].(string) < summaries[j]["contract_id"].(string)
	})

	return json.Marshal(summaries)
}

func (w *ContractWorkerState) lookup(id string) (Contract, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	contract, ok := w.Contracts[id]
	return contract, ok
}

// clausesByRisk returns the clauses sorted highest risk first, the order
// callers present them in.
func clausesByRisk(clauses []analyzer.RiskyClause) []analyzer.RiskyClause {
	sorted := make([]analyzer.RiskyClause, len(clauses))
	copy(sorted, clauses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RiskLevel > sorted[j].RiskLevel
	})
	return sorted
}
