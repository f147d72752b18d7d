package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

const (
	defaultChatTimeout = 60 * time.Second
	quizTimeout        = 90 * time.Second
	completionRetries  = 2
)

// CompletionOptions tune a single completion call.
type CompletionOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	Timeout     time.Duration
}

// CompletionClient turns a message transcript into a single assistant reply.
// The OpenAI implementation is the only production one; tests inject fakes.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error)
}

// DisabledCompletionClient stands in when no API key is configured. Every
// call fails with ErrCompletion, which the HTTP layer maps to a 502, so the
// rest of the app keeps serving.
type DisabledCompletionClient struct{}

func (DisabledCompletionClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	return "", fmt.Errorf("%w: no OpenAI API key configured", apperrors.ErrCompletion)
}

// OpenAIClient is a CompletionClient backed by the OpenAI chat completion API.
type OpenAIClient struct {
	client openaigo.Client
}

// NewOpenAIClient builds a client for the given API key. baseURL may be empty
// to use the public endpoint.
func NewOpenAIClient(apiKey, baseURL string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(apiKey)),
		option.WithMaxRetries(completionRetries),
		option.WithRequestTimeout(defaultChatTimeout),
	}
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{client: openaigo.NewClient(opts...)}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage, opts CompletionOptions) (string, error) {
	params := openaigo.ChatCompletionNewParams{
		Model:    openaigo.ChatModel(opts.Model),
		Messages: make([]openaigo.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			params.Messages = append(params.Messages, openaigo.SystemMessage(msg.Content))
		case models.RoleAssistant:
			params.Messages = append(params.Messages, openaigo.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openaigo.UserMessage(msg.Content))
		}
	}
	if opts.Temperature > 0 {
		params.Temperature = openaigo.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openaigo.Int(opts.MaxTokens)
	}

	callOpts := []option.RequestOption{}
	if opts.Timeout > 0 {
		callOpts = append(callOpts, option.WithRequestTimeout(opts.Timeout))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, callOpts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrCompletion, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion response", apperrors.ErrCompletion)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
