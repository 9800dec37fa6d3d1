package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/quizforge/qpaper-backend/internal/model"
	"github.com/quizforge/qpaper-backend/internal/repository"
	"github.com/quizforge/qpaper-backend/internal/scoring"
)

// Sentinel errors for submissions.
var (
	ErrAlreadySubmitted   = errors.New("question paper already submitted")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// SubmissionService grades attempts and persists submission records.
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
	paperRepo      *repository.QuestionPaperRepository
	log            zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	paperRepo *repository.QuestionPaperRepository,
	log zerolog.Logger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		paperRepo:      paperRepo,
		log:            log.With().Str("component", "submission_service").Logger(),
	}
}

// Submit grades one learner's attempt at one paper and stores it. Each
// (user, paper) pair gets exactly one submitted attempt: a prior submission
// fails fast here, and the unique constraint behind SubmissionRepository.Create
// settles any race between concurrent submits for the same pair.
func (s *SubmissionService) Submit(ctx context.Context, userID int, req *model.SubmitAnswersRequest) (*model.SubmissionResult, error) {
	_, err := s.submissionRepo.GetSubmitted(ctx, userID, req.QuestionPaperID)
	if err == nil {
		return nil, ErrAlreadySubmitted
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check existing submission: %w", err)
	}

	paper, err := s.paperRepo.GetByID(ctx, req.QuestionPaperID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("get paper: %w", err)
	}

	graded := scoring.Grade(paper.Questions, req.Answers)

	submission := &model.Submission{
		UserID:          userID,
		QuestionPaperID: paper.ID,
		Answers:         graded.Answers,
		TotalMarks:      graded.TotalMarks,
		IsSubmitted:     true,
		SubmittedAt:     time.Now(),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A concurrent submit for the same pair won the insert.
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("create submission: %w", err)
	}

	s.log.Info().
		Int("user_id", userID).
		Str("paper_id", paper.ID.String()).
		Float64("total_marks", graded.TotalMarks).
		Int("scored_answers", len(graded.Answers)).
		Msg("Submission graded")

	return &model.SubmissionResult{
		TotalMarks: graded.TotalMarks,
		Answers:    graded.Answers,
	}, nil
}

// Get retrieves the single submitted attempt for (user, paper).
func (s *SubmissionService) Get(ctx context.Context, userID int, paperID uuid.UUID) (*model.Submission, error) {
	submission, err := s.submissionRepo.GetSubmitted(ctx, userID, paperID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return submission, nil
}
