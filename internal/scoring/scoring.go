// Package scoring grades a learner's submitted answers against a question
// paper's answer key with positive and negative marking.
package scoring

import (
	"github.com/quizforge/qpaper-backend/internal/model"
)

// Result is the outcome of grading one attempt.
type Result struct {
	TotalMarks float64
	Answers    []model.Answer
}

// Grade scores submitted answers against the paper's questions, in submission
// order. Answers referencing question numbers the paper does not contain are
// discarded rather than rejected: papers get re-uploaded and renumbered, and
// a stale client may submit numbers that no longer exist.
//
// A correct answer awards the question's marks; an incorrect one deducts its
// negative marks, so the total can go below zero.
func Grade(questions []model.Question, submitted []model.SubmittedAnswer) Result {
	byNumber := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byNumber[questions[i].QuestionNumber] = &questions[i]
	}

	result := Result{Answers: make([]model.Answer, 0, len(submitted))}
	for _, answer := range submitted {
		question, ok := byNumber[answer.QuestionNumber]
		if !ok {
			continue
		}

		isCorrect := answer.SelectedAnswer == question.CorrectAnswer
		awarded := -question.NegativeMarks
		if isCorrect {
			awarded = question.Marks
		}

		result.TotalMarks += awarded
		result.Answers = append(result.Answers, model.Answer{
			QuestionNumber: answer.QuestionNumber,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      isCorrect,
			MarksAwarded:   awarded,
		})
	}
	return result
}
