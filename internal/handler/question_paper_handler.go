package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizforge/qpaper-backend/internal/docparse"
	"github.com/quizforge/qpaper-backend/internal/model"
	"github.com/quizforge/qpaper-backend/internal/response"
	"github.com/quizforge/qpaper-backend/internal/service"
	"github.com/quizforge/qpaper-backend/internal/validator"
)

// QuestionPaperHandler handles admin question paper endpoints.
type QuestionPaperHandler struct {
	paperService *service.QuestionPaperService
}

// NewQuestionPaperHandler creates a new QuestionPaperHandler.
func NewQuestionPaperHandler(paperService *service.QuestionPaperService) *QuestionPaperHandler {
	return &QuestionPaperHandler{paperService: paperService}
}

// UploadAndParse godoc
// POST /api/v1/admin/question-papers/upload
// Parses an uploaded exam document into question drafts for review.
// Nothing is persisted; the admin saves the reviewed drafts separately.
func (h *QuestionPaperHandler) UploadAndParse(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	questions, err := h.paperService.ParseUpload(data, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, docparse.ErrUnsupportedFormat):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFormat)
		case errors.Is(err, service.ErrDocTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		case errors.Is(err, docparse.ErrExtractionFailed):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrExtractionFailed)
		case errors.Is(err, docparse.ErrNoQuestionsFound):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoQuestionsFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// Create godoc
// POST /api/v1/admin/question-papers
// Saves reviewed question drafts as a new paper.
func (h *QuestionPaperHandler) Create(c *gin.Context) {
	var req model.SaveQuestionPaperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	paper, err := h.paperService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingCorrectAnswer) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidQuestions)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"questionPaper": paper})
}

// List godoc
// GET /api/v1/admin/question-papers
// Lists paper summaries with pagination and optional title search.
func (h *QuestionPaperHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	search := c.Query("search")

	papers, pagination, err := h.paperService.List(c.Request.Context(), page, perPage, search)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"questionPapers": papers}, pagination)
}

// Get godoc
// GET /api/v1/admin/question-papers/:id
// Returns a paper including answer keys.
func (h *QuestionPaperHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	paper, err := h.paperService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaperNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrPaperNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questionPaper": paper})
}

// Update godoc
// PUT /api/v1/admin/question-papers/:id
// Replaces a paper's fields; identity is immutable.
func (h *QuestionPaperHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuestionPaperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	paper, err := h.paperService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaperNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrPaperNotFound)
		case errors.Is(err, service.ErrMissingCorrectAnswer):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidQuestions)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"questionPaper": paper})
}

// Delete godoc
// DELETE /api/v1/admin/question-papers/:id
// Removes a paper and its submissions.
func (h *QuestionPaperHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.paperService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPaperNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrPaperNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "question paper deleted"})
}
