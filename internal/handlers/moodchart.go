package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/aijalabs/aija-backend/internal/models"
	"github.com/aijalabs/aija-backend/internal/services"
)

var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

type CalendarResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Month   string                  `json:"month,omitempty"`
	Cells   []services.CalendarCell `json:"cells,omitempty"`
	Months  []services.MonthOption  `json:"months,omitempty"`
}

type MoodChartResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message,omitempty"`
	Chart   services.MoodHistogramView `json:"chart"`
}

// GetMoods lists the mood taxonomy with colors and expressions.
func GetMoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"moods":   models.Moods,
	})
}

// GetCalendar builds the month grid for ?month=YYYY-MM, defaulting to the
// current month. The payload includes the year's month options for the
// selector.
func GetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Authentication required")
		return
	}

	now := time.Now().UTC()
	month := r.URL.Query().Get("month")
	if month == "" {
		month = now.Format("2006-01")
	}
	if !monthRegex.MatchString(month) {
		writeMessage(w, http.StatusBadRequest, false, "month must be YYYY-MM")
		return
	}

	entries, err := journalStore.List(r.Context(), userID.String())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	cells, err := services.MonthGrid(month, now.Format("2006-01-02"), services.FilterByMonth(entries, month))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, false, "month must be YYYY-MM")
		return
	}

	writeJSON(w, http.StatusOK, CalendarResponse{
		Success: true,
		Month:   month,
		Cells:   cells,
		Months:  services.MonthOptions(now.Year()),
	})
}

// GetMoodChart aggregates mood counts, optionally scoped to ?month=YYYY-MM.
func GetMoodChart(w http.ResponseWriter, r *http.Request) {
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

	if month := r.URL.Query().Get("month"); month != "" {
		if !monthRegex.MatchString(month) {
			writeMessage(w, http.StatusBadRequest, false, "month must be YYYY-MM")
			return
		}
		entries = services.FilterByMonth(entries, month)
	}

	writeJSON(w, http.StatusOK, MoodChartResponse{
		Success: true,
		Chart:   services.MoodHistogram(entries),
	})
}
