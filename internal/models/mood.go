package models

// Mood is one reference entry of the mood taxonomy: a display name, a chart
// color and a decorative expression glyph. Defined once at process start,
// never persisted or mutated.
type Mood struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Expression string `json:"expression"`
}

// UnknownMoodColor is used when an entry carries a mood outside the taxonomy.
// The mood field is free text at the storage layer, so lookups are best-effort
// decoration rather than validation.
const UnknownMoodColor = "#9CA3AF"

// Moods is the fixed mood taxonomy.
var Moods = []Mood{
	{Name: "Calm", Color: "#4ADE80", Expression: "-ᴗ-"},
	{Name: "Worried", Color: "#818CF8", Expression: "◑﹏◐"},
	{Name: "Happy", Color: "#FCD34D", Expression: "＾ω＾"},
	{Name: "Sad", Color: "#60A5FA", Expression: "╥﹏╥"},
	{Name: "Angry", Color: "#EF4444", Expression: "╯°□°）╯"},
	{Name: "Chill", Color: "#34D399", Expression: "｡◕‿◕｡"},
	{Name: "Excited", Color: "#A78BFA", Expression: "(ﾉ◕ヮ◕)ﾉ*"},
	{Name: "Bored", Color: "#9CA3AF", Expression: "-｡-;"},
	{Name: "Confused", Color: "#FB923C", Expression: "(｡•́︿•̀｡)"},
	{Name: "Uncomfortable", Color: "#F472B6", Expression: "╯︿╰"},
	{Name: "Embarrassed", Color: "#FB7185", Expression: ">﹏<"},
}

// LookupMood returns the taxonomy entry for name.
func LookupMood(name string) (Mood, bool) {
	for _, m := range Moods {
		if m.Name == name {
			return m, true
		}
	}
	return Mood{}, false
}

// MoodColor returns the chart color for name, falling back to
// UnknownMoodColor when the mood is not part of the taxonomy.
func MoodColor(name string) string {
	if m, ok := LookupMood(name); ok {
		return m.Color
	}
	return UnknownMoodColor
}
