package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aijalabs/aija-backend/internal/apperrors"
	"github.com/aijalabs/aija-backend/internal/models"
)

const quizModel = "gpt-3.5-turbo"

const quizPromptTemplate = `Create a 10 item %s quiz for grade %d, with 4 multiple choice questions.

        Export the questions in a way that they are in the form of JSON objects with the specified format.

        [
  {
    "number": 1,
    "question": "What is 1+1?",
    "choices": [
      {"choice": "A", "content": "1"},
      {"choice": "B", "content": "2"},
      {"choice": "C", "content": "3"},
      {"choice": "D", "content": "4"}
    ],
    "answer": "B"
  },
  {
    "number": 2,
    "question": "What is the capital of France?",
    "choices": [
      {"choice": "A", "content": "Berlin"},
      {"choice": "B", "content": "Madrid"},
      {"choice": "C", "content": "Paris"},
      {"choice": "D", "content": "Rome"}
    ],
    "answer": "C"
  }
]
`

// QuizService builds graded multiple-choice quizzes with the completion API.
type QuizService struct {
	Completions CompletionClient
}

func NewQuizService(completions CompletionClient) *QuizService {
	return &QuizService{Completions: completions}
}

// CreateQuiz generates a 10-question quiz for the subject and grade level.
// An empty subject or non-positive level returns an empty quiz without an
// API call. A response that is not valid quiz JSON fails with ErrParse so
// the caller can ask the user to retry.
func (q *QuizService) CreateQuiz(ctx context.Context, subject string, level int) ([]models.QuizQuestion, error) {
	if subject == "" || level <= 0 {
		return []models.QuizQuestion{}, nil
	}

	raw, err := q.Completions.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleSystem, Content: fmt.Sprintf(quizPromptTemplate, subject, level)},
	}, CompletionOptions{
		Model:       quizModel,
		Temperature: 0.25,
		MaxTokens:   2048,
		Timeout:     quizTimeout,
	})
	if err != nil {
		return nil, err
	}

	return ParseQuizJSON(raw)
}

// ParseQuizJSON decodes the model's quiz output, tolerating a surrounding
// markdown code fence.
func ParseQuizJSON(raw string) ([]models.QuizQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty quiz response", apperrors.ErrParse)
	}

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: decoding quiz questions: %v", apperrors.ErrParse, err)
	}
	return questions, nil
}

// ScoreQuiz counts how many answers match their question's answer key.
// Unanswered questions score zero.
func ScoreQuiz(questions []models.QuizQuestion, answers map[int]string) int {
	score := 0
	for _, question := range questions {
		if answer, ok := answers[question.Number]; ok && answer == question.Answer {
			score++
		}
	}
	return score
}
