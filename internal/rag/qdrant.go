package rag

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// QdrantStore wraps the Qdrant client with knowledge-base specific methods.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantStore creates a new Qdrant-backed vector store
func NewQdrantStore(host string, port int, collection string) (*QdrantStore, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:     client,
		collection: collection,
	}, nil
}

// EnsureCollection ensures the collection exists with the correct configuration
func (s *QdrantStore) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	// Check if collection exists by trying to get it
	_, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err == nil {
		return nil // Collection exists
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// UpsertPoints upserts passage points into the collection
func (s *QdrantStore) UpsertPoints(ctx context.Context, pointsToUpsert []*qdrant.PointStruct) error {
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         pointsToUpsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// Search returns the passages closest to the query vector, with their source
// document names and similarity scores.
func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit uint64) ([]Passage, error) {
	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]Passage, 0, len(searchResult))
	for _, result := range searchResult {
		if result.Payload == nil {
			continue
		}

		textValue, ok := result.Payload["text"]
		if !ok || textValue.GetStringValue() == "" {
			continue
		}

		passage := Passage{
			Text:  textValue.GetStringValue(),
			Score: float32(result.Score),
		}
		if sourceValue, ok := result.Payload["source"]; ok {
			passage.Source = sourceValue.GetStringValue()
		}

		passages = append(passages, passage)
	}

	return passages, nil
}
