package model

import "testing"

func TestNormalizeOptions(t *testing.T) {
	q := Question{Options: map[string]Option{"A": {Text: "yes"}}}
	q.NormalizeOptions()

	if len(q.Options) != len(OptionKeys) {
		t.Fatalf("options = %d, want %d", len(q.Options), len(OptionKeys))
	}
	if q.Options["A"].Text != "yes" {
		t.Error("existing option text lost")
	}
	for _, key := range OptionKeys {
		if _, ok := q.Options[key]; !ok {
			t.Errorf("missing option key %s", key)
		}
	}
}

func TestNormalizeOptionsNilMap(t *testing.T) {
	q := Question{}
	q.NormalizeOptions()
	if len(q.Options) != len(OptionKeys) {
		t.Fatalf("options = %d, want %d", len(q.Options), len(OptionKeys))
	}
}

func TestRefreshHasImages(t *testing.T) {
	img := "/uploads/x.png"
	empty := ""

	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"no images", Question{Options: map[string]Option{"A": {}}}, false},
		{"question image", Question{QuestionImage: &img}, true},
		{"empty question image", Question{QuestionImage: &empty}, false},
		{"option image", Question{Options: map[string]Option{"B": {Image: &img}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.q.RefreshHasImages()
			if tt.q.HasImages != tt.want {
				t.Errorf("HasImages = %v, want %v", tt.q.HasImages, tt.want)
			}
		})
	}
}

func TestValidCorrectAnswer(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"A", true},
		{"E", true},
		{"", false},
		{"F", false},
		{"a", false},
	}
	for _, tt := range tests {
		q := Question{CorrectAnswer: tt.answer}
		if got := q.ValidCorrectAnswer(); got != tt.want {
			t.Errorf("ValidCorrectAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestToQuestionDefaults(t *testing.T) {
	in := QuestionInput{QuestionText: "What?", CorrectAnswer: "A"}
	q := in.ToQuestion(3)

	if q.QuestionNumber != "Q3" {
		t.Errorf("number = %q, want Q3 from sequence", q.QuestionNumber)
	}
	if q.Difficulty != DifficultyMedium {
		t.Errorf("difficulty = %q, want %q for manual entry", q.Difficulty, DifficultyMedium)
	}
	if q.Marks != DefaultMarks || q.NegativeMarks != DefaultNegativeMarks {
		t.Errorf("marks = %v/%v, want defaults", q.Marks, q.NegativeMarks)
	}
	if len(q.Options) != len(OptionKeys) {
		t.Errorf("options = %d, want %d", len(q.Options), len(OptionKeys))
	}
}

func TestToQuestionOverrides(t *testing.T) {
	marks := 3.0
	neg := 1.0
	in := QuestionInput{
		QuestionNumber: "Q7",
		QuestionText:   "What?",
		CorrectAnswer:  "B",
		Difficulty:     "Hard",
		Marks:          &marks,
		NegativeMarks:  &neg,
	}
	q := in.ToQuestion(1)

	if q.QuestionNumber != "Q7" {
		t.Errorf("number = %q, want supplied Q7", q.QuestionNumber)
	}
	if q.Difficulty != "Hard" {
		t.Errorf("difficulty = %q, want Hard", q.Difficulty)
	}
	if q.Marks != 3 || q.NegativeMarks != 1 {
		t.Errorf("marks = %v/%v, want 3/1", q.Marks, q.NegativeMarks)
	}
}

func TestSequentialQuestionNumber(t *testing.T) {
	if got := SequentialQuestionNumber(12); got != "Q12" {
		t.Errorf("got %q, want Q12", got)
	}
}
