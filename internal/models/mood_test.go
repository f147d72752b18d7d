package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodTaxonomy(t *testing.T) {
	require.Len(t, Moods, 11)
	for _, m := range Moods {
		assert.NotEmpty(t, m.Name)
		assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, m.Color)
		assert.NotEmpty(t, m.Expression)
	}
}

func TestLookupMood(t *testing.T) {
	mood, ok := LookupMood("Happy")
	require.True(t, ok)
	assert.Equal(t, "#FCD34D", mood.Color)

	_, ok = LookupMood("Nostalgic")
	assert.False(t, ok)
}

func TestMoodColorFallback(t *testing.T) {
	assert.Equal(t, "#4ADE80", MoodColor("Calm"))
	assert.Equal(t, UnknownMoodColor, MoodColor("Nostalgic"))
	assert.Equal(t, UnknownMoodColor, MoodColor(""))
}
