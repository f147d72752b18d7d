package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSelfHarm(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"I want to kill myself", true},
		{"sometimes I think about suicide", true},
		{"I w@nt to d!e", true},
		{"k!ll myyyself", true},
		{"I just want to end it all", true},
		{"I learned a new skill today", false},
		{"the movie had a suicide squad in it", true},
		{"had a great day at the beach", false},
		{"", false},
	}

	for _, tc := range tests {
		got, _ := DetectSelfHarm(tc.message)
		assert.Equal(t, tc.want, got, "message: %q", tc.message)
	}
}

func TestDetectSelfHarmReportsMatches(t *testing.T) {
	ok, matched := DetectSelfHarm("I can't go on, I want to die")
	assert.True(t, ok)
	assert.Contains(t, matched, "want to die")
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "kil myself", cleanText("K!LL   myyyself!!!"))
	assert.Equal(t, "suicide", cleanText("$u!c1de"))
}
