package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var (
	summarizer   *services.Summarizer
	summaryStore *services.SummaryStore
)

// InitSummaryServices wires the summarizer and its store into the handlers.
func InitSummaryServices(s *services.Summarizer, store *services.SummaryStore) {
	summarizer = s
	summaryStore = store
}

type SummarizeEntryRequest struct {
	EntryID string `json:"entry_id"`
}

type SaveSummaryRequest struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type SummaryResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Summary *models.Summary `json:"summary,omitempty"`
	Draft   string          `json:"draft,omitempty"`
}

type SummaryListResponse struct {
	Success   bool             `json:"success"`
	Message   string           `json:"message,omitempty"`
	Summaries []models.Summary `json:"summaries"`
}

// SummarizeEntry generates an AI summary draft for one of the user's journal
// entries. Nothing is saved; the client saves explicitly via SaveSummary.
func SummarizeEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req SummarizeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	entry, err := journalStore.Get(r.Context(), userID.String(), req.EntryID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	draft, err := summarizer.SummarizeEntry(r.Context(), entry)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Success: true, Draft: draft})
}

// SaveSummary persists a summary the user chose to keep. Type selects the
// collection: "entry" or "chat".
func SaveSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req SaveSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	var saved *models.Summary
	var err error
	switch req.Type {
	case models.SummaryTypeChat:
		saved, err = summaryStore.SaveChatSummary(r.Context(), userID.String(), req.Summary)
	case models.SummaryTypeEntry, "":
		saved, err = summaryStore.SaveEntrySummary(r.Context(), userID.String(), req.Summary)
	default:
		writeMessage(w, http.StatusBadRequest, false, "type must be entry or chat")
		return
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SummaryResponse{
		Success: true,
		Message: "Summary saved",
		Summary: saved,
	})
}

// ListSummaries returns the user's entry and chat summaries merged, newest
// first.
func ListSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	summaries, err := summaryStore.List(r.Context(), userID.String())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SummaryListResponse{Success: true, Summaries: summaries})
}
