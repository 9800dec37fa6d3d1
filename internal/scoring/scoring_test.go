package scoring

import (
	"testing"

	"github.com/quizforge/qpaper-backend/internal/model"
)

func paperQuestions() []model.Question {
	return []model.Question{
		{QuestionNumber: "Q1", CorrectAnswer: "B", Marks: 2, NegativeMarks: 0.25},
		{QuestionNumber: "Q2", CorrectAnswer: "A", Marks: 1, NegativeMarks: 0.25},
		{QuestionNumber: "Q3", CorrectAnswer: "C", Marks: 1, NegativeMarks: 0.5},
	}
}

func TestGradeMixedAnswers(t *testing.T) {
	submitted := []model.SubmittedAnswer{
		{QuestionNumber: "Q1", SelectedAnswer: "B"}, // correct, +2
		{QuestionNumber: "Q2", SelectedAnswer: "C"}, // wrong, -0.25
	}

	result := Grade(paperQuestions(), submitted)

	if result.TotalMarks != 1.75 {
		t.Errorf("total = %v, want 1.75", result.TotalMarks)
	}
	if len(result.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(result.Answers))
	}

	first := result.Answers[0]
	if !first.IsCorrect || first.MarksAwarded != 2 {
		t.Errorf("Q1: correct=%v awarded=%v", first.IsCorrect, first.MarksAwarded)
	}
	second := result.Answers[1]
	if second.IsCorrect || second.MarksAwarded != -0.25 {
		t.Errorf("Q2: correct=%v awarded=%v", second.IsCorrect, second.MarksAwarded)
	}
}

func TestGradeDiscardsUnknownQuestions(t *testing.T) {
	submitted := []model.SubmittedAnswer{
		{QuestionNumber: "Q99", SelectedAnswer: "A"},
		{QuestionNumber: "Q1", SelectedAnswer: "B"},
	}

	result := Grade(paperQuestions(), submitted)

	if len(result.Answers) != 1 {
		t.Fatalf("answers = %d, want 1 (unknown number discarded)", len(result.Answers))
	}
	if result.Answers[0].QuestionNumber != "Q1" {
		t.Errorf("kept %q, want Q1", result.Answers[0].QuestionNumber)
	}
	if result.TotalMarks != 2 {
		t.Errorf("total = %v, want 2", result.TotalMarks)
	}
}

func TestGradeNegativeTotal(t *testing.T) {
	submitted := []model.SubmittedAnswer{
		{QuestionNumber: "Q2", SelectedAnswer: "B"}, // wrong, -0.25
		{QuestionNumber: "Q3", SelectedAnswer: "A"}, // wrong, -0.5
	}

	result := Grade(paperQuestions(), submitted)

	if result.TotalMarks != -0.75 {
		t.Errorf("total = %v, want -0.75", result.TotalMarks)
	}
}

func TestGradeUnansweredQuestionsScoreNothing(t *testing.T) {
	result := Grade(paperQuestions(), nil)

	if result.TotalMarks != 0 {
		t.Errorf("total = %v, want 0", result.TotalMarks)
	}
	if len(result.Answers) != 0 {
		t.Errorf("answers = %d, want 0", len(result.Answers))
	}
}

func TestGradePreservesSubmissionOrder(t *testing.T) {
	submitted := []model.SubmittedAnswer{
		{QuestionNumber: "Q3", SelectedAnswer: "C"},
		{QuestionNumber: "Q1", SelectedAnswer: "A"},
	}

	result := Grade(paperQuestions(), submitted)

	if result.Answers[0].QuestionNumber != "Q3" || result.Answers[1].QuestionNumber != "Q1" {
		t.Errorf("order = [%s, %s], want submission order [Q3, Q1]",
			result.Answers[0].QuestionNumber, result.Answers[1].QuestionNumber)
	}
}
