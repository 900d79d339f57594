package main

import (
	"flag"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/duplocloud-labs/assistant/internal/tui"
)

func main() {
	apiURL := flag.String("api-url", getEnv("API_URL", "http://localhost:8000"), "Assistant API base URL")
	flag.Parse()

	m, err := tui.NewModel(*apiURL)
	if err != nil {
		slog.Error("Failed to initialize chat", "error", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("Chat exited with error", "error", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
