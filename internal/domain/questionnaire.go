package domain

// QuestionType distinguishes single-select from multi-select questions
type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
)

// Option is one selectable answer for a question
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one step of the diagnosis questionnaire. The order of the
// question list defines the questionnaire flow.
type Question struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Type     QuestionType `json:"type"`
	Required bool         `json:"required"`
	Options  []Option     `json:"options"`
}
