package docparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/quizforge/qpaper-backend/internal/model"
)

// Upload template patterns. A question block starts at a marker line
// ("Q1", "Question 1" or "1.") and runs until the next marker. Inside a
// block, option lines read "A) text" or "A. text", followed by optional
// labeled metadata lines in any order.
var (
	questionMarkerRe = regexp.MustCompile(`(?mi)^[ \t]*(?:Q(\d+)\.?|Question[ \t]+(\d+)\.?|(\d+)\.)[ \t]*`)
	optionStartRe    = regexp.MustCompile(`(?mi)^[ \t]*[A-E][).]`)
	correctAnswerRe  = regexp.MustCompile(`(?mi)^[ \t]*Correct[ \t]+Answer[ \t]*:[ \t]*([A-E])`)
	explanationRe    = regexp.MustCompile(`(?mi)^[ \t]*Explanation[ \t]*:[ \t]*(.+)$`)
	difficultyRe     = regexp.MustCompile(`(?mi)^[ \t]*Difficulty(?:[ \t]+Level)?[ \t]*:[ \t]*(\w+)`)
	marksRe          = regexp.MustCompile(`(?mi)^[ \t]*Marks[ \t]*:[ \t]*([0-9]+(?:\.[0-9]+)?)`)

	optionRes = buildOptionRes()
)

func buildOptionRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(model.OptionKeys))
	for _, key := range model.OptionKeys {
		res[key] = regexp.MustCompile(`(?mi)^[ \t]*` + key + `[).][ \t]*(.*)$`)
	}
	return res
}

// Parse converts extracted document text into an ordered list of draft
// questions. Drafts go to an admin for review before a paper is saved, so
// incomplete blocks (missing options, no correct answer) are kept, not
// dropped; save-time validation rejects what review did not fix.
//
// Parse is a pure function of its input: the same text always yields the
// same drafts.
func Parse(text string) ([]model.Question, error) {
	markers := questionMarkerRe.FindAllStringSubmatchIndex(text, -1)
	if len(markers) == 0 {
		return nil, ErrNoQuestionsFound
	}

	questions := make([]model.Question, 0, len(markers))
	for i, marker := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		block := text[marker[1]:end]
		questions = append(questions, parseBlock(block, markerNumber(text, marker, i+1)))
	}
	return questions, nil
}

// markerNumber derives the question label from the marker's digits, falling
// back to the 1-based block position. Labels are not globally unique across
// re-parses; they only need to be stable within one paper.
func markerNumber(text string, marker []int, seq int) string {
	// Submatch pairs 1..3 hold the digits of whichever marker form matched.
	for group := 1; group <= 3; group++ {
		start, end := marker[2*group], marker[2*group+1]
		if start >= 0 {
			return "Q" + text[start:end]
		}
	}
	return model.SequentialQuestionNumber(seq)
}

func parseBlock(block, number string) model.Question {
	q := model.Question{
		QuestionNumber: number,
		Difficulty:     model.DifficultyEasy,
		Marks:          model.DefaultMarks,
		NegativeMarks:  model.DefaultNegativeMarks,
		Options:        make(map[string]model.Option, len(model.OptionKeys)),
	}

	// Body text is everything before the first option line. A block with no
	// options at all keeps its full text and yields five empty options.
	body := block
	if loc := optionStartRe.FindStringIndex(block); loc != nil {
		body = block[:loc[0]]
	}
	q.QuestionText = strings.TrimSpace(body)

	for _, key := range model.OptionKeys {
		var opt model.Option
		if m := optionRes[key].FindStringSubmatch(block); m != nil {
			opt.Text = strings.TrimSpace(m[1])
		}
		q.Options[key] = opt
	}

	if m := correctAnswerRe.FindStringSubmatch(block); m != nil {
		q.CorrectAnswer = strings.ToUpper(m[1])
	}
	if m := explanationRe.FindStringSubmatch(block); m != nil {
		q.Explanation = strings.TrimSpace(m[1])
	}
	if m := difficultyRe.FindStringSubmatch(block); m != nil {
		q.Difficulty = capitalize(m[1])
	}
	if m := marksRe.FindStringSubmatch(block); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			q.Marks = v
		}
	}

	return q
}

// capitalize uppercases the first letter and lowercases the rest, so
// "MEDIUM" and "medium" both store as "Medium".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
