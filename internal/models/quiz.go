package models

// QuizChoice is one multiple-choice option: a letter label and its content.
type QuizChoice struct {
	Choice  string `json:"choice"`
	Content string `json:"content"`
}

// QuizQuestion is one generated quiz item. Number is 1-based and acts as the
// join key to the user's answers. Questions are generated fresh per session
// and never persisted.
type QuizQuestion struct {
	Number   int          `json:"number"`
	Question string       `json:"question"`
	Choices  []QuizChoice `json:"choices"`
	Answer   string       `json:"answer"`
}
