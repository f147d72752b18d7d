package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var quizService *services.QuizService

// InitQuizService wires the quiz generator into the handlers.
func InitQuizService(s *services.QuizService) {
	quizService = s
}

type CreateQuizRequest struct {
	Subject string `json:"subject"`
	Level   int    `json:"level"`
}

type QuizResponse struct {
	Success   bool                  `json:"success"`
	Message   string                `json:"message,omitempty"`
	Questions []models.QuizQuestion `json:"questions"`
}

type ScoreQuizRequest struct {
	Questions []models.QuizQuestion `json:"questions"`
	Answers   map[int]string        `json:"answers"`
}

type ScoreQuizResponse struct {
	Success bool `json:"success"`
	Score   int  `json:"score"`
	Total   int  `json:"total"`
}

// CreateQuiz generates a multiple-choice quiz for a subject and grade level.
// A malformed model response comes back 502 so the client can retry.
func CreateQuiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	questions, err := quizService.CreateQuiz(r.Context(), req.Subject, req.Level)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuizResponse{Success: true, Questions: questions})
}

// ScoreQuiz grades submitted answers against the quiz's answer key.
func ScoreQuiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req ScoreQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, ScoreQuizResponse{
		Success: true,
		Score:   services.ScoreQuiz(req.Questions, req.Answers),
		Total:   len(req.Questions),
	})
}
