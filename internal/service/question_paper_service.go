package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizforge/qpaper-backend/internal/config"
	"github.com/quizforge/qpaper-backend/internal/docparse"
	"github.com/quizforge/qpaper-backend/internal/model"
	"github.com/quizforge/qpaper-backend/internal/repository"
	"github.com/quizforge/qpaper-backend/internal/response"
)

// Sentinel errors for question paper operations.
var (
	ErrPaperNotFound        = errors.New("question paper not found")
	ErrDocTooLarge          = errors.New("document exceeds upload size limit")
	ErrMissingCorrectAnswer = errors.New("question has no valid correct answer")
)

// QuestionPaperService handles question paper business logic: document
// ingestion, paper CRUD and the cached learner payload.
type QuestionPaperService struct {
	paperRepo *repository.QuestionPaperRepository
	rdb       *redis.Client
	cfg       *config.Config
	log       zerolog.Logger
}

// NewQuestionPaperService creates a new QuestionPaperService.
func NewQuestionPaperService(
	paperRepo *repository.QuestionPaperRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *QuestionPaperService {
	return &QuestionPaperService{
		paperRepo: paperRepo,
		rdb:       rdb,
		cfg:       cfg,
		log:       log.With().Str("component", "question_paper_service").Logger(),
	}
}

// ParseUpload turns an uploaded document into reviewable question drafts.
// The format gate runs before any extraction work; oversized uploads are
// rejected at the handler boundary as well, this is the backstop.
func (s *QuestionPaperService) ParseUpload(data []byte, mimeType string) ([]model.Question, error) {
	if !docparse.SupportedFormat(mimeType) {
		return nil, fmt.Errorf("%w: %s", docparse.ErrUnsupportedFormat, mimeType)
	}
	if int64(len(data)) > s.cfg.MaxDocBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrDocTooLarge, len(data), s.cfg.MaxDocBytes)
	}

	text, err := docparse.ExtractText(data, mimeType)
	if err != nil {
		return nil, err
	}
	return docparse.Parse(text)
}

// Create validates reviewed question drafts and persists a new paper.
func (s *QuestionPaperService) Create(ctx context.Context, req *model.SaveQuestionPaperRequest) (*model.QuestionPaper, error) {
	questions, err := finalizeQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	paper := &model.QuestionPaper{
		Title:     req.Title,
		Duration:  req.Duration,
		Questions: questions,
	}
	if err := s.paperRepo.Create(ctx, paper); err != nil {
		return nil, fmt.Errorf("create paper: %w", err)
	}

	s.log.Info().
		Str("paper_id", paper.ID.String()).
		Int("questions", len(paper.Questions)).
		Msg("Question paper created")
	return paper, nil
}

// Get retrieves a paper including answer keys (admin view).
func (s *QuestionPaperService) Get(ctx context.Context, id uuid.UUID) (*model.QuestionPaper, error) {
	paper, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaperNotFound
		}
		return nil, fmt.Errorf("get paper: %w", err)
	}
	return paper, nil
}

// List retrieves paper summaries with pagination.
func (s *QuestionPaperService) List(ctx context.Context, page, perPage int, search string) ([]model.QuestionPaperSummary, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	papers, total, err := s.paperRepo.List(ctx, perPage, (page-1)*perPage, search)
	if err != nil {
		return nil, nil, fmt.Errorf("list papers: %w", err)
	}
	if papers == nil {
		papers = []model.QuestionPaperSummary{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return papers, pagination, nil
}

// Update replaces a paper's fields and drops its cached learner payload.
func (s *QuestionPaperService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateQuestionPaperRequest) (*model.QuestionPaper, error) {
	paper, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		paper.Title = req.Title
	}
	if req.Duration != nil {
		paper.Duration = *req.Duration
	}
	if req.Questions != nil {
		questions, err := finalizeQuestions(req.Questions)
		if err != nil {
			return nil, err
		}
		paper.Questions = questions
	}

	if err := s.paperRepo.Update(ctx, paper); err != nil {
		return nil, fmt.Errorf("update paper: %w", err)
	}
	s.invalidatePayloadCache(ctx, id)
	return paper, nil
}

// Delete removes a paper and drops its cached learner payload.
func (s *QuestionPaperService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.paperRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	s.invalidatePayloadCache(ctx, id)
	return nil
}

// GetPayloadForLearner returns the sanitized paper served during an attempt,
// preferring the Redis copy. Cache misses fall back to PostgreSQL and
// repopulate the cache; cache failures only cost latency, never correctness.
func (s *QuestionPaperService) GetPayloadForLearner(ctx context.Context, id uuid.UUID) (*model.PaperPayload, error) {
	key := config.CacheKey.PaperPayloadKey(id.String())

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		payload := &model.PaperPayload{}
		if err := json.Unmarshal([]byte(raw), payload); err == nil {
			return payload, nil
		}
		// Unreadable cache entry; fall through to the database copy.
		s.rdb.Del(ctx, key)
	}

	paper, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := model.NewPaperPayload(paper)

	if raw, err := json.Marshal(payload); err == nil {
		if err := s.rdb.Set(ctx, key, raw, s.cfg.PaperCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("paper_id", id.String()).Msg("Failed to cache paper payload")
		}
	}
	return payload, nil
}

func (s *QuestionPaperService) invalidatePayloadCache(ctx context.Context, id uuid.UUID) {
	key := config.CacheKey.PaperPayloadKey(id.String())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("paper_id", id.String()).Msg("Failed to invalidate paper payload cache")
	}
}

// finalizeQuestions turns reviewed drafts into storable questions. Parsed
// drafts may lack a correct answer; that is fine for review but not for a
// saved paper.
func finalizeQuestions(inputs []model.QuestionInput) ([]model.Question, error) {
	questions := make([]model.Question, len(inputs))
	for i, input := range inputs {
		q := input.ToQuestion(i + 1)
		if !q.ValidCorrectAnswer() {
			return nil, fmt.Errorf("%w: %s", ErrMissingCorrectAnswer, q.QuestionNumber)
		}
		questions[i] = q
	}
	return questions, nil
}
