package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one scored answer inside a submission.
type Answer struct {
	QuestionNumber string  `json:"questionNumber"`
	SelectedAnswer string  `json:"selectedAnswer"`
	IsCorrect      bool    `json:"isCorrect"`
	MarksAwarded   float64 `json:"marksAwarded"`
}

// Submission is one learner's graded attempt at one question paper. At most
// one submitted attempt exists per (user, paper); the table enforces this
// with a unique constraint.
type Submission struct {
	ID              uuid.UUID `json:"id"`
	UserID          int       `json:"userId"`
	QuestionPaperID uuid.UUID `json:"questionPaperId"`
	Answers         []Answer  `json:"answers"`
	TotalMarks      float64   `json:"totalMarks"`
	IsSubmitted     bool      `json:"isSubmitted"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// SubmittedAnswer is one raw answer from the learner before grading.
type SubmittedAnswer struct {
	QuestionNumber string `json:"questionNumber" binding:"required,max=20"`
	SelectedAnswer string `json:"selectedAnswer" binding:"required,oneof=A B C D E"`
}

// SubmitAnswersRequest is the learner payload for submitting an attempt.
type SubmitAnswersRequest struct {
	QuestionPaperID uuid.UUID         `json:"questionPaperId" binding:"required"`
	Answers         []SubmittedAnswer `json:"answers" binding:"required,dive"`
}

// SubmissionResult is the grading feedback returned to the learner. It is the
// only feedback they get; there is no partial or intermediate grading state.
type SubmissionResult struct {
	TotalMarks float64  `json:"totalMarks"`
	Answers    []Answer `json:"answers"`
}
