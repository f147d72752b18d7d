package services

import (
	"context"

	"github.com/aijalabs/aija-backend/internal/models"
)

// fakeCompletionClient records the last call and returns a canned reply.
type fakeCompletionClient struct {
	reply    string
	err      error
	messages []models.ChatMessage
	opts     CompletionOptions
	calls    int
}

func (f *fakeCompletionClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	f.calls++
	f.messages = messages
	f.opts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
