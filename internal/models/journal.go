package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry is a user's record for a single calendar day. At most one entry
// exists per (user, date); Date is always zero-padded ISO "YYYY-MM-DD".
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Date      string             `bson:"date" json:"date"`
	Mood      string             `bson:"mood" json:"mood"`
	Content   string             `bson:"content" json:"content"`
	Symptoms  string             `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateJournalEntry carries the user-submitted fields for a new entry.
type CreateJournalEntry struct {
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	Content  string `json:"content"`
	Symptoms string `json:"symptoms,omitempty"`
}

// UpdateJournalEntry is a partial patch; nil fields are left untouched.
type UpdateJournalEntry struct {
	Date     *string `json:"date,omitempty"`
	Mood     *string `json:"mood,omitempty"`
	Content  *string `json:"content,omitempty"`
	Symptoms *string `json:"symptoms,omitempty"`
}
