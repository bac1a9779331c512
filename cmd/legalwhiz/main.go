// Command legalwhiz analyzes contracts from the command line. It reads a
// contract document (txt, pdf, docx, or stdin), flags risky clauses,
// summarizes key terms and answers questions, all with local pattern matching.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ericksa/legalwhiz/internal/analyzer"
	"github.com/ericksa/legalwhiz/internal/extract"
	"github.com/spf13/cobra"
)

// version is set by ldflags at build time.
var version = "dev"

const (
	red    = "\033[0;31m"
	green  = "\033[0;32m"
	yellow = "\033[1;33m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

// readDocument loads a contract as plain text. "-" reads stdin as text;
// files pick the extractor from their extension.
func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	format := extract.FormatForPath(path)
	if format == "" {
		return "", fmt.Errorf("unsupported file type: %s (want .txt, .md, .pdf or .docx)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.Text(data, format)
}

func riskColor(level int) string {
	switch {
	case level >= 4:
		return red
	case level == 3:
		return yellow
	default:
		return green
	}
}

func printAnalysis(result *analyzer.AnalysisResult) {
	fmt.Printf("%s=== CONTRACT SUMMARY ===%s\n\n", bold, reset)
	if len(result.ContractSummary) == 0 {
		fmt.Printf("%s(no summary)%s\n", dim, reset)
	}
	for _, point := range result.ContractSummary {
		fmt.Printf("  • %s\n", point)
	}
	fmt.Println()

	fmt.Printf("%s=== RISKY CLAUSES ===%s\n\n", bold, reset)
	if len(result.RiskyClauses) == 0 {
		fmt.Printf("%sNo risky clauses detected.%s\n", green, reset)
		return
	}

	clauses := make([]analyzer.RiskyClause, len(result.RiskyClauses))
	copy(clauses, result.RiskyClauses)
	sort.SliceStable(clauses, func(i, j int) bool {
		return clauses[i].RiskLevel > clauses[j].RiskLevel
	})

	for _, clause := range clauses {
		color := riskColor(clause.RiskLevel)
		fmt.Printf("%s[%d/5]%s %s%s%s\n", color, clause.RiskLevel, reset, bold, clause.Category, reset)
		fmt.Printf("  %s%s%s\n", dim, oneLine(clause.Text), reset)
		fmt.Printf("  %s\n", clause.Explanation)
		fmt.Printf("  %sIn plain English: %s%s\n\n", dim, clause.Simplified, reset)
	}
}

// oneLine collapses a clause to a single display line.
func oneLine(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 160 {
		s = s[:157] + "..."
	}
	return s
}

func main() {
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:   "legalwhiz",
		Short: "rule-based contract analysis",
		Long: `Analyzes legal contracts with local pattern matching: flags risky clauses
across thirteen risk categories, extracts a plain-language summary, and
answers questions about the document. No network, no uploads.`,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "flag risky clauses and summarize a contract",
		Long: `Scans the contract for risky clauses, scores each one from 1 (low) to
5 (high), and extracts summary points for the key terms.

Examples:
  legalwhiz analyze lease.pdf
  legalwhiz analyze msa.docx --json
  cat contract.txt | legalwhiz analyze -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			result := analyzer.AnalyzeContract(text)

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			printAnalysis(result)
			return nil
		},
	}
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "emit raw JSON instead of formatted output")

	askCmd := &cobra.Command{
		Use:   "ask <file> <question>",
		Short: "answer a question about a contract",
		Long: `Routes the question to a topic (termination, payment, renewal, liability,
disputes, definitions) and answers it from the most relevant clause.

Examples:
  legalwhiz ask lease.pdf "What is the notice period for termination?"
  legalwhiz ask msa.docx "How much do I have to pay?"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0])
			if err != nil {
				return err
			}

			answer := analyzer.AnswerQuestion(args[1], text)
			fmt.Printf("%sQ:%s %s\n%sA:%s %s\n", bold, reset, args[1], bold, reset, answer)
			return nil
		},
	}

	explainCmd := &cobra.Command{
		Use:   "explain <clause text>",
		Short: "explain a clause in plain English",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clause := strings.Join(args, " ")
			fmt.Println(analyzer.GetSimpleExplanation(clause))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print legalwhiz version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("legalwhiz %s\n", version)
		},
	}

	rootCmd.AddCommand(analyzeCmd, askCmd, explainCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
