package index

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"github.com/tmc/langchaingo/embeddings"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"sms-assistant-backend/internal/config"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/logger"
)

const (
	// ingestBatchSize bounds how many chunks are embedded and upserted
	// per round trip.
	ingestBatchSize = 300

	maxMessageSize = 50 * 1024 * 1024
	dialTimeout    = 5 * time.Second
	requestTimeout = 30 * time.Second
)

// QdrantService implements Service on top of Qdrant's gRPC API.
type QdrantService struct {
	client     *qdrant.Client
	embedder   embeddings.Embedder
	vectorSize uint64
	logger     *logger.Logger
}

// NewQdrantService connects to Qdrant and verifies the connection.
func NewQdrantService(cfg *config.Config, embedder embeddings.Embedder, log *logger.Logger) (*QdrantService, error) {
	qdrantConfig := &qdrant.Config{
		Host:   cfg.QdrantHost,
		Port:   cfg.QdrantPort,
		UseTLS: cfg.QdrantUseTLS,
		APIKey: cfg.QdrantAPIKey,
		GrpcOptions: []grpc.DialOption{
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(maxMessageSize),
				grpc.MaxCallSendMsgSize(maxMessageSize),
			),
		},
	}
	if !cfg.QdrantUseTLS {
		qdrantConfig.GrpcOptions = append(qdrantConfig.GrpcOptions,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}

	client, err := qdrant.NewClient(qdrantConfig)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("qdrant", "create client", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if _, err := client.HealthCheck(ctx); err != nil {
		_ = client.Close()
		return nil, apperrors.NewExternalServiceError("qdrant", "health check", err)
	}

	log.WithFields(map[string]interface{}{
		"host": cfg.QdrantHost,
		"port": cfg.QdrantPort,
	}).Info("Connected to vector index")

	return &QdrantService{
		client:     client,
		embedder:   embedder,
		vectorSize: cfg.EmbeddingDimensions,
		logger:     log,
	}, nil
}

// Close releases the underlying gRPC connection.
func (s *QdrantService) Close() error {
	return s.client.Close()
}

func (s *QdrantService) ListCollections(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	collections, err := s.client.ListCollections(ctx)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("qdrant", "list collections", err)
	}
	return collections, nil
}

func (s *QdrantService) CreateCollection(ctx context.Context, handle string) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: handle,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.AlreadyExists {
			return nil
		}
		return apperrors.NewExternalServiceError("qdrant", "create collection "+handle, err)
	}

	s.logger.WithField("collection", handle).Info("Created vector collection")
	return nil
}

func (s *QdrantService) Ingest(ctx context.Context, handle string, chunks []string) (int, error) {
	total := 0
	for start := 0; start < len(chunks); start += ingestBatchSize {
		end := start + ingestBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors, err := s.embedder.EmbedDocuments(ctx, batch)
		if err != nil {
			return total, apperrors.NewExternalServiceError("embedding", "embed documents", err)
		}

		points := make([]*qdrant.PointStruct, len(batch))
		for i, text := range batch {
			points[i] = &qdrant.PointStruct{
				Id:      qdrant.NewIDUUID(uuid.New().String()),
				Vectors: qdrant.NewVectors(vectors[i]...),
				Payload: map[string]*qdrant.Value{
					"content": {Kind: &qdrant.Value_StringValue{StringValue: text}},
					"index":   {Kind: &qdrant.Value_IntegerValue{IntegerValue: int64(start + i)}},
				},
			}
		}

		upsertCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		_, err = s.client.Upsert(upsertCtx, &qdrant.UpsertPoints{
			CollectionName: handle,
			Points:         points,
		})
		cancel()
		if err != nil {
			return total, apperrors.NewExternalServiceError("qdrant", "upsert points", err)
		}
		total += len(batch)
	}

	s.logger.WithFields(map[string]interface{}{
		"collection": handle,
		"chunks":     total,
	}).Info("Ingested document chunks")

	return total, nil
}

func (s *QdrantService) Retrieve(ctx context.Context, handle, question string, topK int) ([]string, error) {
	if question == "" {
		return nil, apperrors.ErrEmptyQuestion
	}

	vector, err := s.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("embedding", "embed query", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: handle,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, apperrors.NewExternalServiceError("qdrant", "query collection "+handle, err)
	}

	texts := make([]string, 0, len(results))
	for _, point := range results {
		if content, ok := point.Payload["content"]; ok {
			if text := content.GetStringValue(); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return texts, nil
}
