package index

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/index_mocks.go -package=mocks

// Service manages vector collections and similarity retrieval for documents.
type Service interface {
	// ListCollections returns the names of all existing collections.
	ListCollections(ctx context.Context) ([]string, error)
	// CreateCollection creates the collection for a handle. Creating a
	// collection that already exists is not an error.
	CreateCollection(ctx context.Context, handle string) error
	// Ingest embeds the chunks and upserts them into the collection.
	// It returns the number of chunks stored.
	Ingest(ctx context.Context, handle string, chunks []string) (int, error)
	// Retrieve returns the text of the topK chunks most similar to the
	// question, scoped to the given collection.
	Retrieve(ctx context.Context, handle, question string, topK int) ([]string, error)
}
