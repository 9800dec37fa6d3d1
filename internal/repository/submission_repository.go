package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizforge/qpaper-backend/internal/model"
)

// SubmissionRepository handles submission data access.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// Create inserts a submission. The submissions table carries
// UNIQUE (user_id, question_paper_id); on a concurrent duplicate the insert
// is a no-op and pgx.ErrNoRows surfaces from the RETURNING scan, which the
// service maps to an already-submitted error. The existence check alone
// cannot close that race.
func (r *SubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	answers, err := json.Marshal(sub.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (user_id, question_paper_id, answers, total_marks, is_submitted, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id, question_paper_id) DO NOTHING
		 RETURNING id`,
		sub.UserID, sub.QuestionPaperID, answers, sub.TotalMarks, sub.IsSubmitted, sub.SubmittedAt,
	).Scan(&sub.ID)
}

// GetSubmitted retrieves the single submitted attempt for a (user, paper)
// pair. Returns pgx.ErrNoRows if none exists.
func (r *SubmissionRepository) GetSubmitted(ctx context.Context, userID int, paperID uuid.UUID) (*model.Submission, error) {
	sub := &model.Submission{}
	var answers []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, question_paper_id, answers, total_marks, is_submitted, submitted_at
		 FROM submissions
		 WHERE user_id = $1 AND question_paper_id = $2 AND is_submitted`,
		userID, paperID,
	).Scan(&sub.ID, &sub.UserID, &sub.QuestionPaperID, &answers, &sub.TotalMarks, &sub.IsSubmitted, &sub.SubmittedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(answers, &sub.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	return sub, nil
}
