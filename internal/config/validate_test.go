package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{LegalWhiz: LegalWhizConfig{
		Server:    ServerConfig{Addr: ":8080", Timeout: "30s"},
		Auth:      AuthConfig{Token: "secret"},
		Analyzer:  AnalyzerConfig{MaxDocumentLength: 1000000, MaxClauseLength: 500, MaxSummaryPoints: 5},
		Audit:     AuditConfig{Path: "/tmp/legalwhiz_audit.db"},
		Documents: DocumentsConfig{BasePath: "./documents"},
	}}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty addr", func(c *Config) { c.LegalWhiz.Server.Addr = "" }, "server address"},
		{"bad addr", func(c *Config) { c.LegalWhiz.Server.Addr = "not:a:port" }, "invalid server address"},
		{"empty token", func(c *Config) { c.LegalWhiz.Auth.Token = "" }, "auth token"},
		{"bad doc length", func(c *Config) { c.LegalWhiz.Analyzer.MaxDocumentLength = 0 }, "max_document_length"},
		{"bad clause length", func(c *Config) { c.LegalWhiz.Analyzer.MaxClauseLength = -1 }, "max_clause_length"},
		{"bad summary points", func(c *Config) { c.LegalWhiz.Analyzer.MaxSummaryPoints = 0 }, "max_summary_points"},
		{"empty audit path", func(c *Config) { c.LegalWhiz.Audit.Path = "" }, "audit path"},
		{"empty base path", func(c *Config) { c.LegalWhiz.Documents.BasePath = "" }, "base path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
