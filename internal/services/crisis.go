package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Hotline is a crisis support line surfaced alongside chat replies when a
// message shows signs of self-harm.
type Hotline struct {
	Name    string   `json:"name"`
	Numbers []string `json:"numbers"`
}

// Hotlines lists crisis support contacts, Philippine lines first.
var Hotlines = []Hotline{
	{Name: "In Touch: Crisis Line", Numbers: []string{"(02) 893-7603", "0919-056-0709", "0917-800-1123", "0922-893-8944"}},
	{Name: "Hopeline", Numbers: []string{"(02) 804-4673", "0917-558-4673", "0918-873-4673"}},
	{Name: "Tawag Paglaum - Centro Bisaya", Numbers: []string{"0966-467-9626", "0939-936-5433", "0939-937-5433"}},
	{Name: "NCMH Crisis Hotline", Numbers: []string{"(02) 1553", "0917-899-8727", "0908-639-2672"}},
	{Name: "Manila Lifeline Centre", Numbers: []string{"(02) 896-9191", "0917-854-9191"}},
	{Name: "NFG Mindstrong", Numbers: []string{"(02) 8737", "0918-873-4673", "0917-558-4673"}},
	{Name: "Suicide Prevention Lifeline", Numbers: []string{"1-800-273-8255"}},
	{Name: "Crisis Text Line", Numbers: []string{"Text HOME to 741741"}},
	{Name: "National Grad Crisis Line", Numbers: []string{"(877) 472-3457"}},
}

// Canonical phrases the detector confirms against. Matching happens on
// cleaned text, so obfuscations like "k!ll myself" still hit.
var selfHarmPhrases = []string{
	"suicide",
	"kill myself",
	"end my life",
	"take my life",
	"end it all",
	"self harm",
	"cut myself",
	"hurt myself",
	"harm myself",
	"want to die",
	"wish i was dead",
	"not worth living",
	"better off dead",
	"end myself",
	"unalive",
}

var spaceRegex = regexp.MustCompile(`\s+`)

// character substitutions commonly used to dodge keyword filters
var obfuscationReplacements = map[string]string{
	"@": "a",
	"4": "a",
	"3": "e",
	"!": "i",
	"1": "i",
	"0": "o",
	"$": "s",
	"5": "s",
	"7": "t",
	"+": "t",
	"а": "a", // Cyrillic lookalikes
	"е": "e",
	"і": "i",
	"о": "o",
	"р": "p",
}

// cleanText lowercases, de-obfuscates, strips non-letters, and collapses
// repeated letters so "K!LL myyyself" becomes "kill myself".
func cleanText(text string) string {
	cleaned := strings.ToLower(text)
	for from, to := range obfuscationReplacements {
		cleaned = strings.ReplaceAll(cleaned, from, to)
	}

	var builder strings.Builder
	for _, r := range cleaned {
		if unicode.IsLetter(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}
	cleaned = collapseRepeats(builder.String())
	return strings.TrimSpace(spaceRegex.ReplaceAllString(cleaned, " "))
}

func collapseRepeats(text string) string {
	var result strings.Builder
	lastChar := rune(0)
	lastWasLetter := false
	for _, char := range text {
		isLetter := unicode.IsLetter(char)
		if isLetter && lastWasLetter && char == lastChar {
			continue
		}
		result.WriteRune(char)
		lastChar = char
		lastWasLetter = isLetter
	}
	return result.String()
}

// DetectSelfHarm reports whether message contains self-harm language and
// which canonical phrases matched. Single words must match a whole word, so
// "skill" never confirms "kill".
func DetectSelfHarm(message string) (bool, []string) {
	cleaned := cleanText(message)
	words := strings.Fields(cleaned)

	var matched []string
	for _, phrase := range selfHarmPhrases {
		// Clean the canonical phrase too so repeat-collapsing stays symmetric
		// ("kill myself" and the input both become "kil myself").
		canonical := cleanText(phrase)
		if strings.Contains(canonical, " ") {
			if strings.Contains(cleaned, canonical) {
				matched = append(matched, phrase)
			}
			continue
		}
		for _, word := range words {
			if word == canonical {
				matched = append(matched, phrase)
				break
			}
		}
	}
	return len(matched) > 0, matched
}
