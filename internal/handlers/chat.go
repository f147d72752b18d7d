package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var chatService *services.ChatService

// InitChatService wires the persona chat service into the handlers.
func InitChatService(s *services.ChatService) {
	chatService = s
}

type ChatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
	Message  string               `json:"message"`
}

type ChatResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message,omitempty"`
	Reply    string             `json:"reply,omitempty"`
	Hotlines []services.Hotline `json:"hotlines,omitempty"`
}

// Chat answers one user message in the AIJA persona. The client carries the
// transcript; nothing is stored server-side. When the message shows signs of
// self-harm, the reply also carries crisis hotlines.
func Chat(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAuth(r); !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	reply, err := chatService.Reply(r.Context(), req.Messages, req.Message)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	resp := ChatResponse{Success: true, Reply: reply}
	if inCrisis, _ := services.DetectSelfHarm(req.Message); inCrisis {
		resp.Hotlines = services.Hotlines
	}
	writeJSON(w, http.StatusOK, resp)
}
