package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizforge/qpaper-backend/internal/model"
)

// QuestionPaperRepository handles question paper data access. Questions are
// stored embedded in the paper row as JSONB; the paper owns them.
type QuestionPaperRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionPaperRepository creates a new QuestionPaperRepository.
func NewQuestionPaperRepository(pool *pgxpool.Pool) *QuestionPaperRepository {
	return &QuestionPaperRepository{pool: pool}
}

// Create inserts a new question paper.
func (r *QuestionPaperRepository) Create(ctx context.Context, paper *model.QuestionPaper) error {
	questions, err := json.Marshal(paper.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	return r.pool.QueryRow(ctx,
		`INSERT INTO question_papers (title, duration_minutes, questions)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		paper.Title, paper.Duration, questions,
	).Scan(&paper.ID, &paper.CreatedAt, &paper.UpdatedAt)
}

// GetByID retrieves a paper with its embedded questions.
func (r *QuestionPaperRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.QuestionPaper, error) {
	paper := &model.QuestionPaper{}
	var questions []byte

	err := r.pool.QueryRow(ctx,
		`SELECT id, title, duration_minutes, questions, created_at, updated_at
		 FROM question_papers WHERE id = $1`, id,
	).Scan(&paper.ID, &paper.Title, &paper.Duration, &questions, &paper.CreatedAt, &paper.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questions, &paper.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return paper, nil
}

// List retrieves paper summaries with pagination and optional title search.
func (r *QuestionPaperRepository) List(ctx context.Context, limit, offset int, search string) ([]model.QuestionPaperSummary, int, error) {
	var total int
	pattern := "%" + search + "%"

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM question_papers WHERE title ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, duration_minutes, jsonb_array_length(questions), created_at
		 FROM question_papers
		 WHERE title ILIKE $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var papers []model.QuestionPaperSummary
	for rows.Next() {
		var p model.QuestionPaperSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Duration, &p.QuestionCount, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		papers = append(papers, p)
	}
	return papers, total, rows.Err()
}

// Update replaces a paper's fields. Identity and created_at never change.
func (r *QuestionPaperRepository) Update(ctx context.Context, paper *model.QuestionPaper) error {
	questions, err := json.Marshal(paper.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`UPDATE question_papers
		 SET title = $2, duration_minutes = $3, questions = $4, updated_at = NOW()
		 WHERE id = $1`,
		paper.ID, paper.Title, paper.Duration, questions,
	)
	return err
}

// Delete removes a paper and, via FK cascade, its submissions.
func (r *QuestionPaperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM question_papers WHERE id = $1`, id)
	return err
}
