package config

import "time"

// DefaultConfig returns a Config with sensible default values.
// Credentials default to environment variable references resolved at load time.
func DefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			Debug: false,
		},
		Graph: GraphConfig{
			URI:                     "neo4j://localhost:7687",
			Username:                "neo4j",
			Password:                "${NEO4J_PASSWORD}",
			Database:                "",
			MaxConnectionPoolSize:   50,
			ConnectionTimeout:       30 * time.Second,
			MaxTransactionRetryTime: 30 * time.Second,
			QueryTimeout:            15 * time.Second,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4-turbo",
			APIKey:   "${OPENAI_API_KEY}",
			Timeout:  60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
