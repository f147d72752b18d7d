package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

// SummaryStore persists AI-generated summaries. Summaries are append-only:
// each save creates a new document, and no update or delete is exposed.
type SummaryStore struct {
	entries *mongo.Collection
	chats   *mongo.Collection
}

// NewSummaryStore returns a store over the entry_summaries and chat_summaries
// collections of db.
func NewSummaryStore(db *mongo.Database) *SummaryStore {
	return &SummaryStore{
		entries: db.Collection("entry_summaries"),
		chats:   db.Collection("chat_summaries"),
	}
}

// SaveEntrySummary appends a journal-entry summary for the user.
func (s *SummaryStore) SaveEntrySummary(ctx context.Context, userID, text string) (*models.Summary, error) {
	return s.save(ctx, s.entries, models.SummaryTypeEntry, userID, text)
}

// SaveChatSummary appends a chat-session summary for the user.
func (s *SummaryStore) SaveChatSummary(ctx context.Context, userID, text string) (*models.Summary, error) {
	return s.save(ctx, s.chats, models.SummaryTypeChat, userID, text)
}

func (s *SummaryStore) save(ctx context.Context, col *mongo.Collection, summaryType, userID, text string) (*models.Summary, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: summary text is required", apperrors.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	now := time.Now().UTC()
	summary := models.Summary{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Summary:   text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := col.InsertOne(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("%w: saving %s summary: %v", apperrors.ErrStorage, summaryType, err)
	}

	var saved models.Summary
	if err := col.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&saved); err != nil {
		return nil, fmt.Errorf("%w: reading back saved summary: %v", apperrors.ErrStorage, err)
	}
	saved.Type = summaryType
	return &saved, nil
}

// List returns the user's entry and chat summaries merged, newest first, each
// tagged with its type.
func (s *SummaryStore) List(ctx context.Context, userID string) ([]models.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	entrySummaries, err := listCollection(ctx, s.entries, models.SummaryTypeEntry, userID)
	if err != nil {
		return nil, err
	}
	chatSummaries, err := listCollection(ctx, s.chats, models.SummaryTypeChat, userID)
	if err != nil {
		return nil, err
	}

	merged := append(entrySummaries, chatSummaries...)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}

func listCollection(ctx context.Context, col *mongo.Collection, summaryType, userID string) ([]models.Summary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s summaries: %v", apperrors.ErrStorage, summaryType, err)
	}
	defer cursor.Close(ctx)

	summaries := []models.Summary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("%w: decoding %s summaries: %v", apperrors.ErrStorage, summaryType, err)
	}
	for i := range summaries {
		summaries[i].Type = summaryType
	}
	return summaries, nil
}
