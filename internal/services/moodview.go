package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/aijalabs/aija-backend/internal/models"
)

// CalendarCell is one day of a month grid.
type CalendarCell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Weekday  int    `json:"weekday"`
	IsToday  bool   `json:"isToday"`
	HasEntry bool   `json:"hasEntry"`
}

// MoodHistogramView aggregates mood counts for charting.
type MoodHistogramView struct {
	Counts   []MoodCount `json:"counts"`
	MaxCount int         `json:"maxCount"`
}

// MoodCount is the tally for a single mood, carrying its display color.
type MoodCount struct {
	Mood  string `json:"mood"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// MonthOption is a selectable month for the calendar UI.
type MonthOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MonthGrid builds calendar cells for every day of month ("YYYY-MM"). A cell
// has HasEntry set when any entry's date equals the cell's date. today marks
// the IsToday cell and may fall outside the month.
func MonthGrid(month string, today string, entries []models.JournalEntry) ([]CalendarCell, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %v", month, err)
	}

	entryDates := make(map[string]bool, len(entries))
	for _, entry := range entries {
		entryDates[entry.Date] = true
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	cells := make([]CalendarCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		dateStr := date.Format("2006-01-02")
		cells = append(cells, CalendarCell{
			Date:     dateStr,
			Day:      day,
			Weekday:  int(date.Weekday()),
			IsToday:  dateStr == today,
			HasEntry: entryDates[dateStr],
		})
	}
	return cells, nil
}

// FilterByMonth keeps only entries whose date falls in month ("YYYY-MM").
func FilterByMonth(entries []models.JournalEntry, month string) []models.JournalEntry {
	filtered := []models.JournalEntry{}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Date, month+"-") {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// MoodHistogram tallies entries per mood. Every taxonomy mood is present even
// at zero; moods outside the taxonomy get the fallback color. MaxCount is at
// least 1 so chart scaling never divides by zero.
func MoodHistogram(entries []models.JournalEntry) MoodHistogramView {
	counts := make([]MoodCount, 0, len(models.Moods))
	index := make(map[string]int, len(models.Moods))
	for _, mood := range models.Moods {
		index[mood.Name] = len(counts)
		counts = append(counts, MoodCount{Mood: mood.Name, Color: mood.Color})
	}

	for _, entry := range entries {
		i, ok := index[entry.Mood]
		if !ok {
			i = len(counts)
			index[entry.Mood] = i
			counts = append(counts, MoodCount{Mood: entry.Mood, Color: models.MoodColor(entry.Mood)})
		}
		counts[i].Count++
	}

	maxCount := 1
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	return MoodHistogramView{Counts: counts, MaxCount: maxCount}
}

// MonthOptions lists every month of year, January first.
func MonthOptions(year int) []MonthOption {
	options := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		date := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		options = append(options, MonthOption{
			Label: date.Format("January 2006"),
			Value: date.Format("2006-01"),
		})
	}
	return options
}
