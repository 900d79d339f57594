package docs

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Document is a single documentation file loaded into memory.
// Immutable once loaded; Source is the file name relative to the docs root.
type Document struct {
	Text   string
	Source string
}

// Load reads every documentation file under dir into a Document slice.
// A missing or unreadable directory is a recoverable condition: it is logged
// and an empty slice is returned, which the caller treats as "no knowledge
// base available".
func Load(dir string) []Document {
	var documents []Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDocFile(path) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			slog.Error("Failed to read documentation file", "file", path, "error", readErr)
			return nil
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil
		}

		source, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			source = filepath.Base(path)
		}

		documents = append(documents, Document{
			Text:   text,
			Source: source,
		})
		return nil
	})
	if err != nil {
		slog.Error("Failed to load documentation directory", "dir", dir, "error", err)
		return nil
	}

	slog.Info("Loaded documentation", "dir", dir, "documents", len(documents))
	return documents
}

// isDocFile reports whether path looks like a documentation file.
func isDocFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".txt":
		return true
	}
	return false
}
