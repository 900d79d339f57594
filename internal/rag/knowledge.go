package rag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qdrant/go-client/qdrant"

	"github.com/duplocloud-labs/assistant/internal/docs"
)

// vectorSize is the dimension produced by text-embedding-3-large.
const vectorSize = uint64(3072)

// Passage is a retrieved piece of documentation with its source and score.
type Passage struct {
	Text   string
	Source string
	Score  float32
}

//go:generate mockgen -source=knowledge.go -destination=mock_knowledge.go -package=rag

// Embedder defines the interface for embedding generation
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// TextChunker defines the interface for text chunking operations
type TextChunker interface {
	ChunkText(text string) []string
}

// VectorStore defines the interface for vector database operations
type VectorStore interface {
	EnsureCollection(ctx context.Context, vectorSize uint64) error
	UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error
	Search(ctx context.Context, queryEmbedding []float32, limit uint64) ([]Passage, error)
}

// KnowledgeBase is the indexed, searchable representation of the loaded
// documentation. It is built once at startup and is read-only afterwards, so
// Search is safe for concurrent use.
type KnowledgeBase struct {
	embedder    Embedder
	store       VectorStore
	searchLimit int
}

// Build indexes the given documents and returns a searchable knowledge base.
// An empty document set is a configuration error, not a degraded mode.
func Build(ctx context.Context, chunker TextChunker, embedder Embedder, store VectorStore, documents []docs.Document, searchLimit int) (*KnowledgeBase, error) {
	if len(documents) == 0 {
		return nil, fmt.Errorf("no documents to index: knowledge base requires at least one document")
	}

	if err := store.EnsureCollection(ctx, vectorSize); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	var points []*qdrant.PointStruct
	pointID := uint64(0)

	for _, doc := range documents {
		chunks := chunker.ChunkText(doc.Text)
		if len(chunks) == 0 {
			slog.Warn("Document produced no chunks", "source", doc.Source)
			continue
		}

		for i, chunk := range chunks {
			embedding, err := embedder.GenerateEmbedding(ctx, chunk)
			if err != nil {
				return nil, fmt.Errorf("failed to generate embedding for %s chunk %d: %w", doc.Source, i, err)
			}

			points = append(points, &qdrant.PointStruct{
				Id:      qdrant.NewIDNum(pointID),
				Vectors: qdrant.NewVectors(embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"text":        chunk,
					"source":      doc.Source,
					"chunk_index": int64(i),
				}),
			})
			pointID++
		}
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no chunks created from %d documents", len(documents))
	}

	if err := store.UpsertPoints(ctx, points); err != nil {
		return nil, fmt.Errorf("failed to upsert points: %w", err)
	}

	slog.Info("Knowledge base built", "documents", len(documents), "chunks", len(points))

	return &KnowledgeBase{
		embedder:    embedder,
		store:       store,
		searchLimit: searchLimit,
	}, nil
}

// Search retrieves the passages most similar to the query.
func (kb *KnowledgeBase) Search(ctx context.Context, query string) ([]Passage, error) {
	queryEmbedding, err := kb.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	passages, err := kb.store.Search(ctx, queryEmbedding, uint64(kb.searchLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	return passages, nil
}
