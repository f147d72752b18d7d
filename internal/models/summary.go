package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Summary types distinguish what a summary was derived from. No foreign key
// ties a summary back to its entry or chat session; the relationship exists
// only transiently in the client.
const (
	SummaryTypeEntry = "entry"
	SummaryTypeChat  = "chat"
)

// Summary is an AI-generated condensation of a journal entry or a chat
// transcript. Summaries are append-only: saved once, never updated in place.
type Summary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Summary   string             `bson:"summary" json:"summary"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	// Type is populated on reads that merge the entry and chat collections;
	// it is not stored (the collection itself encodes it).
	Type string `bson:"-" json:"type,omitempty"`
}
