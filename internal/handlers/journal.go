package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var journalStore *services.JournalStore

// InitJournalStore wires the Mongo-backed store into the journal handlers.
func InitJournalStore(store *services.JournalStore) {
	journalStore = store
}

type JournalResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Entry   *models.JournalEntry `json:"entry,omitempty"`
}

type JournalListResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Entries []models.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// ListJournalEntries returns all of the user's entries, newest date first.
func ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	entries, err := journalStore.List(r.Context(), userID.String())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalListResponse{
		Success: true,
		Entries: entries,
		Total:   len(entries),
	})
}

// GetJournalEntry returns a single entry by ID. Entries belonging to another
// user come back 403.
func GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	entry, err := journalStore.Get(r.Context(), userID.String(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{Success: true, Entry: entry})
}

// GetJournalEntryByDate returns the user's entry for ?date=YYYY-MM-DD.
func GetJournalEntryByDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeMessage(w, http.StatusBadRequest, false, "date query parameter is required")
		return
	}

	entry, err := journalStore.GetByDate(r.Context(), userID.String(), date)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{Success: true, Entry: entry})
}

// CreateJournalEntry records a new entry. One entry per user per date; a
// duplicate date comes back 409.
func CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req models.CreateJournalEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	entry, err := journalStore.Create(r.Context(), userID.String(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, JournalResponse{
		Success: true,
		Message: "Entry created successfully",
		Entry:   entry,
	})
}

// UpdateJournalEntry applies a partial update to the user's entry.
func UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	var req models.UpdateJournalEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	entry, err := journalStore.Update(r.Context(), userID.String(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{
		Success: true,
		Message: "Entry updated successfully",
		Entry:   entry,
	})
}

// DeleteJournalEntry removes the user's entry.
func DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	if err := journalStore.Delete(r.Context(), userID.String(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Entry deleted successfully")
}
