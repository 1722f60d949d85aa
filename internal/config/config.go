package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for moviegraph.
type Config struct {
	Core    CoreConfig    `mapstructure:"core" yaml:"core"`
	Graph   GraphConfig   `mapstructure:"graph" yaml:"graph" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CoreConfig contains core application settings.
type CoreConfig struct {
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// GraphConfig contains Neo4j connection settings.
type GraphConfig struct {
	URI                     string        `mapstructure:"uri" yaml:"uri" validate:"required"`
	Username                string        `mapstructure:"username" yaml:"username" validate:"required"`
	Password                string        `mapstructure:"password" yaml:"password" validate:"required"`
	Database                string        `mapstructure:"database" yaml:"database"`
	MaxConnectionPoolSize   int           `mapstructure:"max_connection_pool_size" yaml:"max_connection_pool_size" validate:"min=1,max=500"`
	ConnectionTimeout       time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout" validate:"min=1s"`
	MaxTransactionRetryTime time.Duration `mapstructure:"max_transaction_retry_time" yaml:"max_transaction_retry_time" validate:"min=1s"`
	QueryTimeout            time.Duration `mapstructure:"query_timeout" yaml:"query_timeout" validate:"min=1s"`
}

// LLMConfig contains settings for the generative model provider.
type LLMConfig struct {
	Provider string        `mapstructure:"provider" yaml:"provider" validate:"omitempty,oneof=openai anthropic ollama mock"`
	Model    string        `mapstructure:"model" yaml:"model"`
	APIKey   string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL  string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=1s"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// DefaultConfigPath returns the default config file location: ~/.moviegraph/config.yaml,
// falling back to the working directory when the user home cannot be determined.
func DefaultConfigPath() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(userHome, ".moviegraph", "config.yaml")
}
