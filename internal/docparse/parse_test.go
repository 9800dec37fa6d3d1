package docparse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/quizforge/qpaper-backend/internal/model"
)

const sampleDoc = `Q1. What is 2+2?
A) 3
B) 4
C) 5
D) 6
Correct Answer: B
Explanation: Basic arithmetic
Difficulty: medium
Marks: 2
Negative Marks: 0.5

Question 2. Capital of France?
A. London
B. Paris
C. Berlin
Correct Answer: B

3. Largest planet?
A) Earth
B) Mars
C) Jupiter
Correct Answer: C
Difficulty Level: Hard
`

func TestParseMarkerVariants(t *testing.T) {
	questions, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	wantNumbers := []string{"Q1", "Q2", "Q3"}
	for i, want := range wantNumbers {
		if questions[i].QuestionNumber != want {
			t.Errorf("question %d: number = %q, want %q", i, questions[i].QuestionNumber, want)
		}
	}

	wantTexts := []string{"What is 2+2?", "Capital of France?", "Largest planet?"}
	for i, want := range wantTexts {
		if questions[i].QuestionText != want {
			t.Errorf("question %d: text = %q, want %q", i, questions[i].QuestionText, want)
		}
	}
}

func TestParseMetadata(t *testing.T) {
	questions, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	q1 := questions[0]
	if q1.CorrectAnswer != "B" {
		t.Errorf("correct answer = %q, want B", q1.CorrectAnswer)
	}
	if q1.Explanation != "Basic arithmetic" {
		t.Errorf("explanation = %q", q1.Explanation)
	}
	if q1.Difficulty != "Medium" {
		t.Errorf("difficulty = %q, want Medium (capitalized)", q1.Difficulty)
	}
	if q1.Marks != 2 {
		t.Errorf("marks = %v, want 2", q1.Marks)
	}
	// The "Negative Marks" line must not bleed into Marks; the parser does not
	// read it and the default applies.
	if q1.NegativeMarks != model.DefaultNegativeMarks {
		t.Errorf("negative marks = %v, want default %v", q1.NegativeMarks, model.DefaultNegativeMarks)
	}

	if q1.Options["A"].Text != "3" || q1.Options["B"].Text != "4" {
		t.Errorf("options = %v", q1.Options)
	}
}

func TestParseDefaults(t *testing.T) {
	questions, err := Parse("Q1. Minimal question\nA) yes\nB) no\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	q := questions[0]
	if q.Difficulty != model.DifficultyEasy {
		t.Errorf("difficulty = %q, want %q", q.Difficulty, model.DifficultyEasy)
	}
	if q.Marks != model.DefaultMarks {
		t.Errorf("marks = %v, want %v", q.Marks, model.DefaultMarks)
	}
	if q.NegativeMarks != model.DefaultNegativeMarks {
		t.Errorf("negative marks = %v, want %v", q.NegativeMarks, model.DefaultNegativeMarks)
	}
	if q.CorrectAnswer != "" {
		t.Errorf("correct answer = %q, want empty for a draft", q.CorrectAnswer)
	}
}

func TestParseFiveOptionInvariant(t *testing.T) {
	questions, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	for _, q := range questions {
		if len(q.Options) != len(model.OptionKeys) {
			t.Fatalf("%s: %d options, want %d", q.QuestionNumber, len(q.Options), len(model.OptionKeys))
		}
		for _, key := range model.OptionKeys {
			if _, ok := q.Options[key]; !ok {
				t.Errorf("%s: missing option key %s", q.QuestionNumber, key)
			}
		}
	}

	// Question 2 had only A-C in the document.
	q2 := questions[1]
	if q2.Options["D"].Text != "" || q2.Options["E"].Text != "" {
		t.Errorf("absent options should be empty, got D=%q E=%q", q2.Options["D"].Text, q2.Options["E"].Text)
	}
}

func TestParseBlockWithoutOptions(t *testing.T) {
	questions, err := Parse("Q1. Describe photosynthesis in one sentence.\nCorrect Answer: A\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}

	q := questions[0]
	if q.QuestionText == "" {
		t.Error("question text lost for a block without option lines")
	}
	if len(q.Options) != len(model.OptionKeys) {
		t.Errorf("%d options, want %d empty ones", len(q.Options), len(model.OptionKeys))
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same text twice produced different drafts")
	}
}

func TestParseNoQuestions(t *testing.T) {
	for _, text := range []string{"", "just some prose with no markers", "Answer: B"} {
		if _, err := Parse(text); !errors.Is(err, ErrNoQuestionsFound) {
			t.Errorf("Parse(%q) error = %v, want ErrNoQuestionsFound", text, err)
		}
	}
}

func TestParseMarksMustBePositive(t *testing.T) {
	questions, err := Parse("Q1. Trick question\nA) x\nMarks: 0\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if questions[0].Marks != model.DefaultMarks {
		t.Errorf("marks = %v, want default when document says 0", questions[0].Marks)
	}
}
