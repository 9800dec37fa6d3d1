package model

import "fmt"

// SequentialQuestionNumber formats a 1-based paper position as a question
// label ("Q1", "Q2", ...).
func SequentialQuestionNumber(seq int) string {
	return fmt.Sprintf("Q%d", seq)
}

// OptionKeys is the fixed set of answer choice letters. Every stored question
// carries exactly these five keys, even when some option texts are empty.
var OptionKeys = [5]string{"A", "B", "C", "D", "E"}

// Difficulty labels. Stored as free-form capitalized strings; these are the
// values the upload template produces.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Scoring defaults applied when a question does not specify its own.
const (
	DefaultMarks         = 1.0
	DefaultNegativeMarks = 0.25
)

// Option is a single answer choice.
type Option struct {
	Text  string  `json:"text"`
	Image *string `json:"image"`
}

// Question is one exam question, embedded in its question paper.
type Question struct {
	QuestionNumber string            `json:"questionNumber"`
	QuestionText   string            `json:"questionText"`
	QuestionImage  *string           `json:"questionImage"`
	Options        map[string]Option `json:"options"`
	CorrectAnswer  string            `json:"correctAnswer"`
	Difficulty     string            `json:"difficulty"`
	Explanation    string            `json:"explanation"`
	Marks          float64           `json:"marks"`
	NegativeMarks  float64           `json:"negativeMarks"`
	HasImages      bool              `json:"hasImages"`
}

// NormalizeOptions guarantees all five option keys exist. Missing keys get an
// empty option rather than an error; draft questions from parsed documents
// routinely arrive with gaps.
func (q *Question) NormalizeOptions() {
	if q.Options == nil {
		q.Options = make(map[string]Option, len(OptionKeys))
	}
	for _, key := range OptionKeys {
		if _, ok := q.Options[key]; !ok {
			q.Options[key] = Option{}
		}
	}
}

// RefreshHasImages recomputes the derived image flag from the question image
// and every option image.
func (q *Question) RefreshHasImages() {
	if q.QuestionImage != nil && *q.QuestionImage != "" {
		q.HasImages = true
		return
	}
	for _, opt := range q.Options {
		if opt.Image != nil && *opt.Image != "" {
			q.HasImages = true
			return
		}
	}
	q.HasImages = false
}

// ValidCorrectAnswer reports whether the correct answer is one of the five
// option letters. Parsed drafts may have an empty correct answer; saving a
// paper requires a valid one.
func (q *Question) ValidCorrectAnswer() bool {
	for _, key := range OptionKeys {
		if q.CorrectAnswer == key {
			return true
		}
	}
	return false
}

// QuestionInput is the admin payload for a single question when saving or
// updating a paper, usually a reviewed draft from the document parser.
type QuestionInput struct {
	QuestionNumber string            `json:"questionNumber" binding:"omitempty,max=20"`
	QuestionText   string            `json:"questionText" binding:"required"`
	QuestionImage  *string           `json:"questionImage"`
	Options        map[string]Option `json:"options"`
	CorrectAnswer  string            `json:"correctAnswer" binding:"required,oneof=A B C D E"`
	Difficulty     string            `json:"difficulty" binding:"omitempty,max=30"`
	Explanation    string            `json:"explanation"`
	Marks          *float64          `json:"marks" binding:"omitempty,gt=0"`
	NegativeMarks  *float64          `json:"negativeMarks" binding:"omitempty,gte=0"`
}

// ToQuestion finalizes an input into a storable question. seq is the 1-based
// position in the paper, used when no question number was supplied. Manual
// entries without a difficulty default to Medium; the parse path defaults to
// Easy before the admin ever sees the draft.
func (in QuestionInput) ToQuestion(seq int) Question {
	q := Question{
		QuestionNumber: in.QuestionNumber,
		QuestionText:   in.QuestionText,
		QuestionImage:  in.QuestionImage,
		Options:        in.Options,
		CorrectAnswer:  in.CorrectAnswer,
		Difficulty:     in.Difficulty,
		Explanation:    in.Explanation,
		Marks:          DefaultMarks,
		NegativeMarks:  DefaultNegativeMarks,
	}
	if q.QuestionNumber == "" {
		q.QuestionNumber = SequentialQuestionNumber(seq)
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
	if in.Marks != nil {
		q.Marks = *in.Marks
	}
	if in.NegativeMarks != nil {
		q.NegativeMarks = *in.NegativeMarks
	}
	q.NormalizeOptions()
	q.RefreshHasImages()
	return q
}
