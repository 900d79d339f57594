package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIEmbedModel string

	// Qdrant configuration
	QdrantHost       string
	QdrantPort       int
	QdrantCollection string

	// Knowledge base configuration
	DocsDir      string
	ChunkSize    int
	ChunkOverlap int
	SearchLimit  int

	// Web search configuration
	SearxURL string

	// Agent configuration
	AgentMaxSteps int

	// Per-path timeouts applied by the orchestrator
	DocsTimeout  time.Duration
	AgentTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and command-line flags.
// Flags take precedence over environment variables. A .env file in the working
// directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Optional .env, same as the original docker-compose setup
	_ = godotenv.Load()

	cfg := &Config{}

	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8000"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4.1-mini"), "OpenAI model for chat completions")
	openAIEmbedModel := flag.String("openai-embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-large"), "OpenAI model for embeddings")
	qdrantHost := flag.String("qdrant-host", getEnv("QDRANT_HOST", "localhost"), "Qdrant host")
	qdrantPort := flag.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantCollection := flag.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "docs"), "Qdrant collection name")
	docsDir := flag.String("docs-dir", getEnv("DOCS_DIR", "./docs"), "Directory of documentation files to index at startup")
	chunkSize := flag.Int("chunk-size", getEnvAsInt("CHUNK_SIZE", 1000), "Text chunk size")
	chunkOverlap := flag.Int("chunk-overlap", getEnvAsInt("CHUNK_OVERLAP", 200), "Text chunk overlap")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 4), "Number of passages to retrieve per query")
	searxURL := flag.String("searx-url", getEnv("SEARX_URL", ""), "SearXNG base URL for the web search tool")
	agentMaxSteps := flag.Int("agent-max-steps", getEnvAsInt("AGENT_MAX_STEPS", 8), "Maximum tool-calling steps per agent run")
	docsTimeout := flag.Int("docs-timeout", getEnvAsInt("DOCS_TIMEOUT_SECONDS", 30), "Documentation path timeout in seconds")
	agentTimeout := flag.Int("agent-timeout", getEnvAsInt("AGENT_TIMEOUT_SECONDS", 90), "Agent path timeout in seconds")

	flag.Parse()

	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIEmbedModel = *openAIEmbedModel
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantCollection = *qdrantCollection
	cfg.DocsDir = *docsDir
	cfg.ChunkSize = *chunkSize
	cfg.ChunkOverlap = *chunkOverlap
	cfg.SearchLimit = *searchLimit
	cfg.SearxURL = *searxURL
	cfg.AgentMaxSteps = *agentMaxSteps
	cfg.DocsTimeout = time.Duration(*docsTimeout) * time.Second
	cfg.AgentTimeout = time.Duration(*agentTimeout) * time.Second

	// Validate required fields
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (set via environment variable or -openai-key flag)")
	}

	if cfg.AgentMaxSteps <= 0 {
		return nil, fmt.Errorf("agent max steps must be positive, got %d", cfg.AgentMaxSteps)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
