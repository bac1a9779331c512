package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete LegalWhiz configuration
// The structure matches the config.yaml file and can be overridden by environment variables

type Config struct {
	LegalWhiz LegalWhizConfig `json:"legalwhiz" mapstructure:"legalwhiz"`
}

// LegalWhizConfig contains the main gateway configuration

type LegalWhizConfig struct {
	Server    ServerConfig    `json:"server" mapstructure:"server"`
	Auth      AuthConfig      `json:"auth" mapstructure:"auth"`
	Analyzer  AnalyzerConfig  `json:"analyzer" mapstructure:"analyzer"`
	Audit     AuditConfig     `json:"audit" mapstructure:"audit"`
	Documents DocumentsConfig `json:"documents" mapstructure:"documents"`
}

// ServerConfig contains server-specific configuration

type ServerConfig struct {
	Addr           string   `json:"addr" mapstructure:"addr"`
	Timeout        string   `json:"timeout" mapstructure:"timeout"`
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins"`
}

// AuthConfig contains authentication configuration

type AuthConfig struct {
	Token string `json:"token" mapstructure:"token"`
}

// AnalyzerConfig contains analysis engine limits

type AnalyzerConfig struct {
	MaxDocumentLength int `json:"max_document_length" mapstructure:"max_document_length"`
	MaxClauseLength   int `json:"max_clause_length" mapstructure:"max_clause_length"`
	MaxSummaryPoints  int `json:"max_summary_points" mapstructure:"max_summary_points"`
}

// AuditConfig contains audit log configuration

type AuditConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// DocumentsConfig contains document loading configuration

type DocumentsConfig struct {
	BasePath string `json:"base_path" mapstructure:"base_path"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env first (ignore error if not present)
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.legalwhiz")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LEGALWHIZ")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Resolve paths (expand ~)
	cfg.LegalWhiz.Documents.BasePath = resolvePath(cfg.LegalWhiz.Documents.BasePath)
	if cfg.LegalWhiz.Audit.Path != "" {
		cfg.LegalWhiz.Audit.Path = resolvePath(cfg.LegalWhiz.Audit.Path)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("LEGALWHIZ.SERVER.ADDR", ":8080")
	viper.SetDefault("LEGALWHIZ.SERVER.TIMEOUT", "30s")

	viper.SetDefault("LEGALWHIZ.AUTH.TOKEN", "default-secret-token")

	viper.SetDefault("LEGALWHIZ.ANALYZER.MAX_DOCUMENT_LENGTH", 1000000)
	viper.SetDefault("LEGALWHIZ.ANALYZER.MAX_CLAUSE_LENGTH", 500)
	viper.SetDefault("LEGALWHIZ.ANALYZER.MAX_SUMMARY_POINTS", 5)

	viper.SetDefault("LEGALWHIZ.AUDIT.PATH", "/tmp/legalwhiz_audit.db")

	viper.SetDefault("LEGALWHIZ.DOCUMENTS.BASE_PATH", "./documents")
}

// resolvePath resolves ~ to home directory and cleans the path
func resolvePath(p string) string {
	if p == "" {
		return p
	}
	if p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return filepath.Clean(p)
}
