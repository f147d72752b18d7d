package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

func journalDoc(id primitive.ObjectID, userID, date string, createdAt time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "user_id", Value: userID},
		{Key: "date", Value: date},
		{Key: "mood", Value: "Happy"},
		{Key: "content", Value: "wrote some Go"},
		{Key: "created_at", Value: primitive.NewDateTimeFromTime(createdAt)},
		{Key: "updated_at", Value: primitive.NewDateTimeFromTime(createdAt)},
	}
}

func TestJournalStoreGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects another user's entry", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(oid, "someone-else", "2024-03-10", time.Now())))

		_, err := store.Get(context.Background(), "me", oid.Hex())
		assert.True(mt, errors.Is(err, apperrors.ErrUnauthorized))
	})

	mt.Run("missing entry", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch))

		_, err := store.Get(context.Background(), "me", primitive.NewObjectID().Hex())
		assert.True(mt, errors.Is(err, apperrors.ErrNotFound))
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		_, err := store.Get(context.Background(), "me", "not-a-hex-id")
		assert.True(mt, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestJournalStoreGetByDate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("single match", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(oid, "me", "2024-03-10", time.Now())))

		entry, err := store.GetByDate(context.Background(), "me", "2024-03-10")
		require.NoError(mt, err)
		assert.Equal(mt, oid, entry.ID)
		assert.Equal(mt, "2024-03-10", entry.Date)
	})

	mt.Run("no match", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch))

		_, err := store.GetByDate(context.Background(), "me", "2024-03-11")
		assert.True(mt, errors.Is(err, apperrors.ErrNotFound))
	})

	mt.Run("duplicate dates pick the oldest", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		older := primitive.NewObjectID()
		newer := primitive.NewObjectID()
		base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
		// The query sorts created_at ascending, so the server hands the
		// oldest document first and the store must keep that one.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(older, "me", "2024-03-10", base),
			journalDoc(newer, "me", "2024-03-10", base.Add(2*time.Hour))))

		entry, err := store.GetByDate(context.Background(), "me", "2024-03-10")
		require.NoError(mt, err)
		assert.Equal(mt, older, entry.ID)
		assert.Equal(mt, base, entry.CreatedAt.UTC())
	})
}

func TestJournalStoreCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("round trip", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		now := time.Now().UTC().Truncate(time.Millisecond)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch), // date pre-check
			mtest.CreateSuccessResponse(),                                    // insert
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch, // read-back
				journalDoc(oid, "me", "2024-03-10", now)),
		)

		entry, err := store.Create(context.Background(), "me", models.CreateJournalEntry{
			Date:    "2024-03-10",
			Mood:    "Happy",
			Content: "wrote some Go",
		})
		require.NoError(mt, err)
		assert.Equal(mt, oid, entry.ID)
		assert.Equal(mt, "me", entry.UserID)
		assert.False(mt, entry.CreatedAt.IsZero())
		assert.False(mt, entry.UpdatedAt.IsZero())
	})

	mt.Run("rejects invalid input", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		for _, input := range []models.CreateJournalEntry{
			{Date: "2024-3-1", Mood: "Happy", Content: "x"},
			{Date: "March 10", Mood: "Happy", Content: "x"},
			{Date: "2024-03-10", Mood: "", Content: "x"},
			{Date: "2024-03-10", Mood: "Happy", Content: ""},
		} {
			_, err := store.Create(context.Background(), "me", input)
			assert.True(mt, errors.Is(err, apperrors.ErrValidation), "input: %+v", input)
		}
	})

	mt.Run("duplicate date conflicts", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(primitive.NewObjectID(), "me", "2024-03-10", time.Now())))

		_, err := store.Create(context.Background(), "me", models.CreateJournalEntry{
			Date:    "2024-03-10",
			Mood:    "Happy",
			Content: "again",
		})
		assert.True(mt, errors.Is(err, apperrors.ErrConflict))
	})

	mt.Run("racing insert hits the unique index", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: aija.journals index: idx_user_date_unique",
			}),
		)

		_, err := store.Create(context.Background(), "me", models.CreateJournalEntry{
			Date:    "2024-03-10",
			Mood:    "Happy",
			Content: "race loser",
		})
		assert.True(mt, errors.Is(err, apperrors.ErrConflict))
	})
}

func TestJournalStoreUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("rejects another user's entry", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(oid, "someone-else", "2024-03-10", time.Now())))

		mood := "Calm"
		_, err := store.Update(context.Background(), "me", oid.Hex(), models.UpdateJournalEntry{Mood: &mood})
		assert.True(mt, errors.Is(err, apperrors.ErrUnauthorized))
	})

	mt.Run("moving onto an occupied date conflicts", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
				journalDoc(oid, "me", "2024-03-10", time.Now())),
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
				journalDoc(primitive.NewObjectID(), "me", "2024-03-11", time.Now())),
		)

		date := "2024-03-11"
		_, err := store.Update(context.Background(), "me", oid.Hex(), models.UpdateJournalEntry{Date: &date})
		assert.True(mt, errors.Is(err, apperrors.ErrConflict))
	})
}

func TestJournalStoreDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delete then get reports not found", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
				journalDoc(oid, "me", "2024-03-10", time.Now())),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch), // entry is gone
		)

		require.NoError(mt, store.Delete(context.Background(), "me", oid.Hex()))

		_, err := store.Get(context.Background(), "me", oid.Hex())
		assert.True(mt, errors.Is(err, apperrors.ErrNotFound))
	})

	mt.Run("rejects another user's entry", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch,
			journalDoc(oid, "someone-else", "2024-03-10", time.Now())))

		err := store.Delete(context.Background(), "me", oid.Hex())
		assert.True(mt, errors.Is(err, apperrors.ErrUnauthorized))
	})
}

func TestJournalStoreList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty store yields empty slice", func(mt *mtest.T) {
		store := NewJournalStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "aija.journals", mtest.FirstBatch))

		entries, err := store.List(context.Background(), "me")
		require.NoError(mt, err)
		assert.NotNil(mt, entries)
		assert.Empty(mt, entries)
	})
}
