package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"mindworx/profile-builder/internal/models"
)

var ErrIndexDisabled = errors.New("profile index is disabled")

// ProfileIndex keeps an embedding of every generated profile for
// similarity lookups. Indexing is best-effort.
type ProfileIndex interface {
	Enabled() bool
	InitCollection(ctx context.Context) error
	IndexProfile(ctx context.Context, candidateID string, profile models.GeneratedProfile) error
	FindSimilar(ctx context.Context, candidateID string, profile models.GeneratedProfile, limit int) ([]models.SimilarProfile, error)
}

type qdrantService struct {
	client         *qdrant.Client
	embedder       GeminiService
	promptBuilder  *PromptBuilder
	collectionName string
	vectorSize     uint64
}

func NewQdrantService(urlStr, apiKey, collectionName string, embedder GeminiService) (ProfileIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		embedder:       embedder,
		promptBuilder:  NewPromptBuilder(),
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004
	}, nil
}

func (q *qdrantService) Enabled() bool {
	return true
}

// InitCollection implements ProfileIndex.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// IndexProfile implements ProfileIndex. The point id is the candidate id,
// so indexing the same candidate twice replaces the earlier point.
func (q *qdrantService) IndexProfile(ctx context.Context, candidateID string, profile models.GeneratedProfile) error {
	embedding, err := q.embedder.GenerateEmbedding(ctx, q.promptBuilder.BuildEmbeddingText(profile))
	if err != nil {
		return fmt.Errorf("failed to embed profile: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(candidateID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"candidate_id": candidateID,
			"name":         profile.PersonalInfo.Name,
			"title":        profile.PersonalInfo.Title,
		}),
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// FindSimilar implements ProfileIndex.
func (q *qdrantService) FindSimilar(ctx context.Context, candidateID string, profile models.GeneratedProfile, limit int) ([]models.SimilarProfile, error) {
	embedding, err := q.embedder.GenerateEmbedding(ctx, q.promptBuilder.BuildEmbeddingText(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to embed profile: %w", err)
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Filter: &qdrant.Filter{
			MustNot: []*qdrant.Condition{
				qdrant.NewMatch("candidate_id", candidateID),
			},
		},
		Limit:       qdrant.PtrOf(uint64(limit)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]models.SimilarProfile, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		results = append(results, models.SimilarProfile{
			CandidateID: payload["candidate_id"].GetStringValue(),
			Name:        payload["name"].GetStringValue(),
			Title:       payload["title"].GetStringValue(),
			Score:       point.GetScore(),
		})
	}

	return results, nil
}

type noopProfileIndex struct{}

// NewNoopProfileIndex is used when Qdrant or embeddings are not configured.
func NewNoopProfileIndex() ProfileIndex {
	return noopProfileIndex{}
}

func (noopProfileIndex) Enabled() bool { return false }

func (noopProfileIndex) InitCollection(context.Context) error { return nil }

func (noopProfileIndex) IndexProfile(context.Context, string, models.GeneratedProfile) error {
	return nil
}

func (noopProfileIndex) FindSimilar(context.Context, string, models.GeneratedProfile, int) ([]models.SimilarProfile, error) {
	return nil, ErrIndexDisabled
}
