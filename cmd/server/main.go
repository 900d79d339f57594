package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duplocloud-labs/assistant/internal/assistant"
	"github.com/duplocloud-labs/assistant/internal/config"
	"github.com/duplocloud-labs/assistant/internal/docs"
	"github.com/duplocloud-labs/assistant/internal/llm"
	"github.com/duplocloud-labs/assistant/internal/rag"
	"github.com/duplocloud-labs/assistant/internal/websearch"

	httphandler "github.com/duplocloud-labs/assistant/internal/http"
)

func main() {
	// Load configuration; a missing API key fails fast here
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize LLM client
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIEmbedModel)
	slog.Info("Initialized OpenAI client", "model", cfg.OpenAIModel)

	// Load documentation and build the knowledge base. A missing docs
	// directory degrades to agent-only mode; an index build failure on
	// loaded documents is a configuration error and fatal.
	var docsPath assistant.DocumentationAnswerer
	var kb *rag.KnowledgeBase

	documents := docs.Load(cfg.DocsDir)
	if len(documents) == 0 {
		slog.Warn("No documentation loaded; running without knowledge base", "dir", cfg.DocsDir)
	} else {
		store, err := rag.NewQdrantStore(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantCollection)
		if err != nil {
			slog.Error("Failed to create Qdrant store", "error", err)
			os.Exit(1)
		}
		slog.Info("Initialized Qdrant store", "collection", cfg.QdrantCollection)

		chunker := rag.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
		kb, err = rag.Build(context.Background(), chunker, llmClient, store, documents, cfg.SearchLimit)
		if err != nil {
			slog.Error("Failed to build knowledge base", "error", err)
			os.Exit(1)
		}

		docsPath = assistant.NewDocsAnswerer(kb, llmClient)
	}

	// Fixed tool set for the agent
	var tools []assistant.Tool
	if kb != nil {
		tools = append(tools, assistant.NewDocSearchTool(kb))
	}
	if cfg.SearxURL != "" {
		searcher := websearch.NewClient(cfg.SearxURL, 30*time.Second)
		tools = append(tools, assistant.NewWebSearchTool(searcher))
		slog.Info("Initialized web search", "url", cfg.SearxURL)
	} else {
		slog.Warn("No web search configured; agent runs with documentation search only")
	}

	var agentPath assistant.AgentRunner
	if len(tools) > 0 {
		agentPath = assistant.NewAgent(llmClient, tools, cfg.AgentMaxSteps)
		slog.Info("Initialized agent", "tools", len(tools), "max_steps", cfg.AgentMaxSteps)
	}

	// Orchestrator is built once and shared read-only across requests
	orchestrator := assistant.New(docsPath, agentPath, cfg.DocsTimeout, cfg.AgentTimeout)

	handler := httphandler.NewHandlers(orchestrator)
	r := httphandler.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
