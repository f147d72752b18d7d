package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aijalabs/aija-backend/internal/models"
)

func TestMonthGrid(t *testing.T) {
	entries := []models.JournalEntry{
		{Date: "2024-02-01", Mood: "Happy"},
		{Date: "2024-02-29", Mood: "Calm"},
		{Date: "2024-03-01", Mood: "Sad"},
	}

	cells, err := MonthGrid("2024-02", "2024-02-29", entries)
	require.NoError(t, err)
	require.Len(t, cells, 29, "2024 is a leap year")

	assert.Equal(t, "2024-02-01", cells[0].Date)
	assert.Equal(t, 1, cells[0].Day)
	assert.True(t, cells[0].HasEntry)
	assert.False(t, cells[0].IsToday)

	last := cells[28]
	assert.Equal(t, "2024-02-29", last.Date)
	assert.True(t, last.HasEntry)
	assert.True(t, last.IsToday)

	// the March entry never shows up
	assert.False(t, cells[1].HasEntry)
}

func TestMonthGridDuplicateDatesStillBoolean(t *testing.T) {
	entries := []models.JournalEntry{
		{Date: "2024-05-10"},
		{Date: "2024-05-10"},
	}
	cells, err := MonthGrid("2024-05", "2024-05-01", entries)
	require.NoError(t, err)
	assert.True(t, cells[9].HasEntry)
}

func TestMonthGridInvalidMonth(t *testing.T) {
	_, err := MonthGrid("february", "2024-02-01", nil)
	assert.Error(t, err)
}

func TestFilterByMonth(t *testing.T) {
	entries := []models.JournalEntry{
		{Date: "2024-01-05"},
		{Date: "2024-01-31"},
		{Date: "2024-10-05"},
	}

	jan := FilterByMonth(entries, "2024-01")
	assert.Len(t, jan, 2)

	// "2024-1" must not prefix-match "2024-10"
	assert.Empty(t, FilterByMonth(entries, "2024-1"))
	assert.Empty(t, FilterByMonth(nil, "2024-01"))
}

func TestMoodHistogramSeedsTaxonomy(t *testing.T) {
	view := MoodHistogram(nil)

	assert.Len(t, view.Counts, len(models.Moods))
	for _, c := range view.Counts {
		assert.Zero(t, c.Count)
		assert.NotEmpty(t, c.Color)
	}
	assert.Equal(t, 1, view.MaxCount, "MaxCount never drops below 1")
}

func TestMoodHistogramCountsAndFreeText(t *testing.T) {
	entries := []models.JournalEntry{
		{Mood: "Happy"},
		{Mood: "Happy"},
		{Mood: "Calm"},
		{Mood: "Nostalgic"},
	}

	view := MoodHistogram(entries)
	counts := map[string]MoodCount{}
	for _, c := range view.Counts {
		counts[c.Mood] = c
	}

	assert.Equal(t, 2, counts["Happy"].Count)
	assert.Equal(t, 1, counts["Calm"].Count)
	assert.Equal(t, 1, counts["Nostalgic"].Count)
	assert.Equal(t, models.UnknownMoodColor, counts["Nostalgic"].Color)
	assert.Equal(t, 2, view.MaxCount)
}

func TestMonthOptions(t *testing.T) {
	opts := MonthOptions(2024)
	require.Len(t, opts, 12)
	assert.Equal(t, "January 2024", opts[0].Label)
	assert.Equal(t, "2024-01", opts[0].Value)
	assert.Equal(t, "December 2024", opts[11].Label)
	assert.Equal(t, "2024-12", opts[11].Value)
}
