package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// ChatClientEvent is a message from the frontend over the socket.
type ChatClientEvent struct {
	Type string `json:"type"` // "message", "end", "ping"
	Text string `json:"text,omitempty"`
}

// ChatServerEvent is a message pushed to the frontend.
type ChatServerEvent struct {
	Type     string             `json:"type"` // "reply", "summary", "error", "pong"
	Text     string             `json:"text,omitempty"`
	Hotlines []services.Hotline `json:"hotlines,omitempty"`
}

// ChatWebSocket runs a full AIJA chat session over one WebSocket connection.
// The server holds the transcript for the connection's lifetime. An "end"
// event summarizes the conversation, saves the summary, and closes.
// Authentication is via Authorization: Bearer <token> or ?token=.
func ChatWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}
	}

	userID, ok, err := services.ValidateSession(r.Context(), token)
	if err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadLimit(64 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	transcript := []models.ChatMessage{
		{Role: models.RoleSystem, Content: services.AijaPersona},
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))

		var evt ChatClientEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			continue
		}

		switch evt.Type {
		case "ping":
			conn.WriteJSON(ChatServerEvent{Type: "pong"})

		case "message":
			if evt.Text == "" {
				continue
			}
			reply, err := chatService.Reply(r.Context(), transcript, evt.Text)
			if err != nil {
				log.Printf("[ChatWS] completion failed for user %s: %v", userID, err)
				conn.WriteJSON(ChatServerEvent{Type: "error", Text: "The AI service is unavailable. Please try again."})
				continue
			}
			transcript = append(transcript,
				models.ChatMessage{Role: models.RoleUser, Content: evt.Text},
				models.ChatMessage{Role: models.RoleAssistant, Content: reply},
			)

			out := ChatServerEvent{Type: "reply", Text: reply}
			if inCrisis, _ := services.DetectSelfHarm(evt.Text); inCrisis {
				out.Hotlines = services.Hotlines
			}
			conn.WriteJSON(out)

		case "end":
			summary, err := summarizer.SummarizeConversation(r.Context(), transcript)
			if err != nil {
				log.Printf("[ChatWS] summary failed for user %s: %v", userID, err)
				conn.WriteJSON(ChatServerEvent{Type: "error", Text: "Could not summarize the conversation."})
				return
			}
			if summary != "" {
				if _, err := summaryStore.SaveChatSummary(r.Context(), userID.String(), summary); err != nil {
					log.Printf("[ChatWS] saving summary failed for user %s: %v", userID, err)
				}
			}
			conn.WriteJSON(ChatServerEvent{Type: "summary", Text: summary})
			return
		}
	}
}
