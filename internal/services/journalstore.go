package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

const journalStoreTimeout = 5 * time.Second

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// JournalStore translates journal operations into document-store calls while
// enforcing ownership and the one-entry-per-(user, date) invariant.
type JournalStore struct {
	col *mongo.Collection
}

// NewJournalStore returns a store over the "journals" collection of db.
func NewJournalStore(db *mongo.Database) *JournalStore {
	return &JournalStore{col: db.Collection("journals")}
}

// EnsureIndexes configures the journals collection indexes. The unique
// compound (user_id, date) index backstops the pre-insert conflict check when
// two sessions race. Called on startup after Mongo has connected.
func (s *JournalStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("idx_user_date_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("idx_user_date_desc"),
		},
	}

	for _, m := range indexes {
		if _, err := s.col.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// List returns all of the user's entries, newest date first. A user with no
// entries yields an empty slice, not an error.
func (s *JournalStore) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: listing journal entries: %v", apperrors.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	entries := []models.JournalEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%w: decoding journal entries: %v", apperrors.ErrStorage, err)
	}
	return entries, nil
}

// Get returns a single entry by id. The ownership check runs after the
// id-only lookup: an id alone could otherwise leak another user's entry.
func (s *JournalStore) Get(ctx context.Context, userID, entryID string) (*models.JournalEntry, error) {
	oid, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	var entry models.JournalEntry
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetching journal entry: %v", apperrors.ErrStorage, err)
	}

	if entry.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}
	return &entry, nil
}

// GetByDate returns the user's entry for an exact date. Should the store ever
// hold duplicates for a date (a uniqueness violation), the oldest entry by
// created_at is picked deterministically and the ambiguity is logged.
func (s *JournalStore) GetByDate(ctx context.Context, userID, date string) (*models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "date": date}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching journal entry by date: %v", apperrors.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%w: decoding journal entries: %v", apperrors.ErrStorage, err)
	}

	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	if len(entries) > 1 {
		log.Printf("[JournalStore] uniqueness violation: user %s has %d entries for %s, picking oldest", userID, len(entries), date)
	}
	return &entries[0], nil
}

// Create inserts a new entry for the user, stamping both timestamps, and
// reads the document back so server-assigned fields are materialized. A
// same-date entry already on record fails with ErrConflict.
func (s *JournalStore) Create(ctx context.Context, userID string, input models.CreateJournalEntry) (*models.JournalEntry, error) {
	if !isoDateRegex.MatchString(input.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if input.Mood == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: mood and content are required", apperrors.ErrValidation)
	}

	// Pre-check keeps the common path friendly; the unique index catches races.
	switch _, err := s.GetByDate(ctx, userID, input.Date); {
	case err == nil:
		return nil, apperrors.ErrConflict
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	now := time.Now().UTC()
	entry := models.JournalEntry{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      input.Date,
		Mood:      input.Mood,
		Content:   input.Content,
		Symptoms:  input.Symptoms,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.col.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("%w: creating journal entry: %v", apperrors.ErrStorage, err)
	}

	var created models.JournalEntry
	if err := s.col.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: reading back created entry: %v", apperrors.ErrStorage, err)
	}
	return &created, nil
}

// Update applies a partial patch to an entry. Ownership is re-checked against
// the stored document before the write; updated_at is refreshed. Moving an
// entry onto a date that already has one fails with ErrConflict.
func (s *JournalStore) Update(ctx context.Context, userID, entryID string, patch models.UpdateJournalEntry) (*models.JournalEntry, error) {
	existing, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Date != nil {
		if !isoDateRegex.MatchString(*patch.Date) {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		if *patch.Date != existing.Date {
			switch _, err := s.GetByDate(ctx, userID, *patch.Date); {
			case err == nil:
				return nil, apperrors.ErrConflict
			case !errors.Is(err, apperrors.ErrNotFound):
				return nil, err
			}
		}
		set["date"] = *patch.Date
	}
	if patch.Mood != nil {
		set["mood"] = *patch.Mood
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Symptoms != nil {
		set["symptoms"] = *patch.Symptoms
	}

	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	if _, err := s.col.UpdateByID(ctx, existing.ID, bson.M{"$set": set}); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("%w: updating journal entry: %v", apperrors.ErrStorage, err)
	}

	var updated models.JournalEntry
	if err := s.col.FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&updated); err != nil {
		return nil, fmt.Errorf("%w: reading back updated entry: %v", apperrors.ErrStorage, err)
	}
	return &updated, nil
}

// Delete removes an entry permanently after re-checking ownership. There is
// no soft delete: a deleted entry is unrecoverable.
func (s *JournalStore) Delete(ctx context.Context, userID, entryID string) error {
	existing, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, journalStoreTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
		return fmt.Errorf("%w: deleting journal entry: %v", apperrors.ErrStorage, err)
	}
	return nil
}
