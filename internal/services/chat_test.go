package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

func TestWithPersonaPrepends(t *testing.T) {
	transcript := []models.ChatMessage{
		{Role: models.RoleUser, Content: "hi"},
	}
	out := WithPersona(transcript)
	require.Len(t, out, 2)
	assert.Equal(t, models.RoleSystem, out[0].Role)
	assert.Equal(t, AijaPersona, out[0].Content)
}

func TestWithPersonaKeepsExistingSystem(t *testing.T) {
	transcript := []models.ChatMessage{
		{Role: models.RoleSystem, Content: AijaPersona},
		{Role: models.RoleUser, Content: "hi"},
	}
	out := WithPersona(transcript)
	assert.Len(t, out, 2)
}

func TestWithPersonaDoesNotAliasCaller(t *testing.T) {
	// Spare capacity in the transcript must never be written through the
	// returned slice: two independent appends may not clobber each other.
	transcript := make([]models.ChatMessage, 0, 8)
	transcript = append(transcript,
		models.ChatMessage{Role: models.RoleSystem, Content: AijaPersona},
		models.ChatMessage{Role: models.RoleUser, Content: "hi"},
	)

	out1 := append(WithPersona(transcript), models.ChatMessage{Role: models.RoleUser, Content: "first"})
	out2 := append(WithPersona(transcript), models.ChatMessage{Role: models.RoleUser, Content: "second"})

	assert.Equal(t, "first", out1[len(out1)-1].Content)
	assert.Equal(t, "second", out2[len(out2)-1].Content)
	assert.Len(t, transcript, 2)
}

func TestReply(t *testing.T) {
	fake := &fakeCompletionClient{reply: "Hello friend! 🐧"}
	c := NewChatService(fake, "")

	reply, err := c.Reply(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello friend! 🐧", reply)

	require.Len(t, fake.messages, 2)
	assert.Equal(t, models.RoleSystem, fake.messages[0].Role)
	assert.Equal(t, "hello", fake.messages[1].Content)
	assert.Equal(t, DefaultChatModel, fake.opts.Model)
	assert.Equal(t, 0.75, fake.opts.Temperature)
}

func TestReplyUsesConfiguredModel(t *testing.T) {
	fake := &fakeCompletionClient{reply: "ok"}
	c := NewChatService(fake, "gpt-4o-mini")

	_, err := c.Reply(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", fake.opts.Model)
}

func TestReplyEmptyMessage(t *testing.T) {
	c := NewChatService(&fakeCompletionClient{}, "")
	_, err := c.Reply(context.Background(), nil, "")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestReplyDisabledClient(t *testing.T) {
	c := NewChatService(DisabledCompletionClient{}, "")
	_, err := c.Reply(context.Background(), nil, "hello")
	assert.True(t, errors.Is(err, apperrors.ErrCompletion))
}
