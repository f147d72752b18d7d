package services

import (
	"context"
	"fmt"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

// DefaultChatModel is used when no model is configured.
const DefaultChatModel = "gpt-3.5-turbo-0125"

// AijaPersona is the system prompt that sets the assistant's voice for every
// chat session.
const AijaPersona = "Your name is AIJA, a delightful, fun-loving, and colorful penguin AI psychiatrist. You specialize in creating a supportive and playful environment for mental well-being. 🐧 Your responses are filled with warmth, joy, and encouragement, blending professional insight with lighthearted charm. You sprinkle emojis generously but tastefully, and your use of Markdown keeps the conversation clear and inviting!"

// ChatService answers user messages in the AIJA persona. Transcripts live in
// the caller; nothing here is persisted.
type ChatService struct {
	Completions CompletionClient
	model       string
}

// NewChatService builds the persona chat over completions. model is the
// configured chat model; empty falls back to DefaultChatModel.
func NewChatService(completions CompletionClient, model string) *ChatService {
	if model == "" {
		model = DefaultChatModel
	}
	return &ChatService{Completions: completions, model: model}
}

// WithPersona returns a copy of messages with the persona system prompt
// prepended when the transcript does not already start with a system message.
// The result never shares a backing array with the input, so appending to it
// cannot clobber the caller's transcript.
func WithPersona(messages []models.ChatMessage) []models.ChatMessage {
	hasSystem := len(messages) > 0 && messages[0].Role == models.RoleSystem

	size := len(messages)
	if !hasSystem {
		size++
	}
	withSystem := make([]models.ChatMessage, 0, size+1)
	if !hasSystem {
		withSystem = append(withSystem, models.ChatMessage{Role: models.RoleSystem, Content: AijaPersona})
	}
	return append(withSystem, messages...)
}

// Reply sends the transcript plus the new user message to the model and
// returns the assistant's reply.
func (c *ChatService) Reply(ctx context.Context, transcript []models.ChatMessage, userMessage string) (string, error) {
	if userMessage == "" {
		return "", fmt.Errorf("%w: message is required", apperrors.ErrValidation)
	}

	messages := append(WithPersona(transcript), models.ChatMessage{
		Role:    models.RoleUser,
		Content: userMessage,
	})

	return c.Completions.Complete(ctx, messages, CompletionOptions{
		Model:       c.model,
		Temperature: 0.75,
		Timeout:     defaultChatTimeout,
	})
}
