package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionPaper is an exam: a titled, timed, ordered set of questions. The
// paper owns its questions; they are stored embedded, not referenced.
type QuestionPaper struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Duration  int        `json:"duration"` // minutes
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// QuestionPaperSummary is a paper row without its embedded questions, for
// listings.
type QuestionPaperSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Duration      int       `json:"duration"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SaveQuestionPaperRequest is the admin payload for creating a paper from
// reviewed question drafts.
type SaveQuestionPaperRequest struct {
	Title     string          `json:"title" binding:"required,min=3,max=255"`
	Duration  int             `json:"duration" binding:"required,min=1,max=600"`
	Questions []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuestionPaperRequest is the admin payload for updating a paper.
// Omitted fields keep their stored values; identity never changes.
type UpdateQuestionPaperRequest struct {
	Title     string          `json:"title" binding:"omitempty,min=3,max=255"`
	Duration  *int            `json:"duration" binding:"omitempty,min=1,max=600"`
	Questions []QuestionInput `json:"questions" binding:"omitempty,min=1,dive"`
}

// PaperPayload is the learner-facing paper with answer keys and explanations
// stripped. This is what gets cached in Redis and served during an attempt.
type PaperPayload struct {
	ID        uuid.UUID            `json:"id"`
	Title     string               `json:"title"`
	Duration  int                  `json:"duration"`
	Questions []QuestionForLearner `json:"questions"`
}

// QuestionForLearner is a question without its correct answer or explanation.
type QuestionForLearner struct {
	QuestionNumber string            `json:"questionNumber"`
	QuestionText   string            `json:"questionText"`
	QuestionImage  *string           `json:"questionImage"`
	Options        map[string]Option `json:"options"`
	Marks          float64           `json:"marks"`
	NegativeMarks  float64           `json:"negativeMarks"`
	HasImages      bool              `json:"hasImages"`
}

// NewPaperPayload builds the sanitized learner view of a paper.
func NewPaperPayload(paper *QuestionPaper) *PaperPayload {
	payload := &PaperPayload{
		ID:        paper.ID,
		Title:     paper.Title,
		Duration:  paper.Duration,
		Questions: make([]QuestionForLearner, len(paper.Questions)),
	}
	for i, q := range paper.Questions {
		payload.Questions[i] = QuestionForLearner{
			QuestionNumber: q.QuestionNumber,
			QuestionText:   q.QuestionText,
			QuestionImage:  q.QuestionImage,
			Options:        q.Options,
			Marks:          q.Marks,
			NegativeMarks:  q.NegativeMarks,
			HasImages:      q.HasImages,
		}
	}
	return payload
}
