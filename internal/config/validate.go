package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	// Validate server configuration
	if c.LegalWhiz.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}

	// Validate address format and port
	if _, err := net.ResolveTCPAddr("tcp", c.LegalWhiz.Server.Addr); err != nil {
		return fmt.Errorf("invalid server address: %v", err)
	}

	// Validate auth configuration
	if c.LegalWhiz.Auth.Token == "" {
		return errors.New("auth token cannot be empty")
	}

	// Validate analyzer limits
	if c.LegalWhiz.Analyzer.MaxDocumentLength <= 0 {
		return errors.New("analyzer max_document_length must be positive")
	}
	if c.LegalWhiz.Analyzer.MaxClauseLength <= 0 {
		return errors.New("analyzer max_clause_length must be positive")
	}
	if c.LegalWhiz.Analyzer.MaxSummaryPoints <= 0 {
		return errors.New("analyzer max_summary_points must be positive")
	}

	// Validate audit configuration
	if c.LegalWhiz.Audit.Path == "" {
		return errors.New("audit path cannot be empty")
	}

	// Validate documents base path
	if c.LegalWhiz.Documents.BasePath == "" {
		return errors.New("documents base path cannot be empty")
	}

	return nil
}
