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

const sampleQuizJSON = `[
  {
    "number": 1,
    "question": "What is 1+1?",
    "choices": [
      {"choice": "A", "content": "1"},
      {"choice": "B", "content": "2"}
    ],
    "answer": "B"
  },
  {
    "number": 2,
    "question": "What is the capital of France?",
    "choices": [
      {"choice": "A", "content": "Berlin"},
      {"choice": "B", "content": "Paris"}
    ],
    "answer": "B"
  }
]`

func TestParseQuizJSON(t *testing.T) {
	questions, err := ParseQuizJSON(sampleQuizJSON)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Number)
	assert.Equal(t, "What is 1+1?", questions[0].Question)
	assert.Equal(t, "B", questions[0].Answer)
	require.Len(t, questions[0].Choices, 2)
	assert.Equal(t, "A", questions[0].Choices[0].Choice)
	assert.Equal(t, "1", questions[0].Choices[0].Content)
}

func TestParseQuizJSONStripsFence(t *testing.T) {
	fenced := "```json\n" + sampleQuizJSON + "\n```"
	questions, err := ParseQuizJSON(fenced)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuizJSONInvalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"```json\n```",
		"Sorry, I can't create a quiz about that.",
		`{"number": 1}`,
	} {
		_, err := ParseQuizJSON(raw)
		assert.True(t, errors.Is(err, apperrors.ErrParse), "input %q should fail with a parse error", raw)
	}
}

func TestCreateQuizFalsyInputs(t *testing.T) {
	fake := &fakeCompletionClient{reply: sampleQuizJSON}
	q := NewQuizService(fake)

	for _, tc := range []struct {
		subject string
		level   int
	}{
		{"", 3},
		{"Math", 0},
		{"Math", -1},
	} {
		questions, err := q.CreateQuiz(context.Background(), tc.subject, tc.level)
		require.NoError(t, err)
		assert.Empty(t, questions)
	}
	assert.Zero(t, fake.calls)
}

func TestCreateQuizPromptAndOptions(t *testing.T) {
	fake := &fakeCompletionClient{reply: sampleQuizJSON}
	q := NewQuizService(fake)

	questions, err := q.CreateQuiz(context.Background(), "Science", 5)
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	require.Len(t, fake.messages, 1)
	assert.Equal(t, models.RoleSystem, fake.messages[0].Role)
	assert.Contains(t, fake.messages[0].Content, "10 item Science quiz for grade 5")
	assert.Equal(t, 0.25, fake.opts.Temperature)
	assert.Equal(t, int64(2048), fake.opts.MaxTokens)
}

func TestCreateQuizParseFailureSurfaces(t *testing.T) {
	fake := &fakeCompletionClient{reply: "not json at all"}
	q := NewQuizService(fake)

	_, err := q.CreateQuiz(context.Background(), "History", 4)
	assert.True(t, errors.Is(err, apperrors.ErrParse))
}

func TestScoreQuiz(t *testing.T) {
	questions := []models.QuizQuestion{
		{Number: 1, Answer: "A"},
		{Number: 2, Answer: "B"},
		{Number: 3, Answer: "C"},
	}

	assert.Equal(t, 2, ScoreQuiz(questions, map[int]string{1: "A", 2: "D", 3: "C"}))
	assert.Equal(t, 0, ScoreQuiz(questions, nil))
	assert.Equal(t, 1, ScoreQuiz(questions, map[int]string{3: "C", 99: "A"}))
	assert.Equal(t, 0, ScoreQuiz(nil, map[int]string{1: "A"}))
}
