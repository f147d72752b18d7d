package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aijalabs/aija-backend/internal/models"
)

const entrySummaryModel = "gpt-3.5-turbo"

// Summarizer produces AI summaries of journal entries and chat transcripts.
// It only calls the completion API; saving the result is the caller's choice.
type Summarizer struct {
	Completions CompletionClient
}

func NewSummarizer(completions CompletionClient) *Summarizer {
	return &Summarizer{Completions: completions}
}

// SummarizeEntry asks the model to summarize one journal entry. A nil entry
// yields an empty summary without an API call.
func (s *Summarizer) SummarizeEntry(ctx context.Context, entry *models.JournalEntry) (string, error) {
	if entry == nil {
		return "", nil
	}

	prompt := fmt.Sprintf(
		"You are a helpful mental health assistant who gives specific and helpful suggestions and also writes in paragraph form. Please summarize the following text:\n\nMood: %s\nDescription: %s\nSymptoms: %s\n",
		entry.Mood, entry.Content, entry.Symptoms,
	)

	return s.Completions.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleUser, Content: prompt},
	}, CompletionOptions{
		Model:       entrySummaryModel,
		Temperature: 0.5,
		MaxTokens:   1024,
	})
}

// SummarizeConversation summarizes a chat transcript. The first message is
// the persona system prompt and is dropped; an empty remainder yields an
// empty summary without an API call.
func (s *Summarizer) SummarizeConversation(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if len(messages) <= 1 {
		return "", nil
	}

	var transcript strings.Builder
	for _, msg := range messages[1:] {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Role, msg.Content)
	}

	prompt := fmt.Sprintf(
		"You are a helpful mental health assistant who gives specific and helpful suggestions and also writes in paragraph form. Please summarize the following conversation:\n\n%s",
		transcript.String(),
	)

	return s.Completions.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleUser, Content: prompt},
	}, CompletionOptions{
		Model:       entrySummaryModel,
		Temperature: 0.5,
		MaxTokens:   1024,
	})
}
