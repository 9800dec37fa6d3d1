package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizforge/qpaper-backend/internal/response"
	"github.com/quizforge/qpaper-backend/internal/service"
)

// PortalHandler handles learner-facing paper endpoints.
type PortalHandler struct {
	paperService *service.QuestionPaperService
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(paperService *service.QuestionPaperService) *PortalHandler {
	return &PortalHandler{paperService: paperService}
}

// ListPapers godoc
// GET /api/v1/user/question-papers
// Lists available paper summaries.
func (h *PortalHandler) ListPapers(c *gin.Context) {
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

// GetPaper godoc
// GET /api/v1/user/question-papers/:id
// Returns the paper payload with answer keys and explanations stripped.
func (h *PortalHandler) GetPaper(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	payload, err := h.paperService.GetPayloadForLearner(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPaperNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrPaperNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, payload)
}
