package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CEMAMI09/EVOQFORMS/internal/repository"
	"github.com/CEMAMI09/EVOQFORMS/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuizRequest is the JSON body posted by the quiz page.
type QuizRequest struct {
	ClientName string   `json:"clientName"`
	Answers    []string `json:"answers"`
	Score      int      `json:"score"`
}

type QuizHandler struct {
	log     *zap.Logger
	service *services.SubmissionService
}

func NewQuizHandler(log *zap.Logger, service *services.SubmissionService) *QuizHandler {
	return &QuizHandler{log: log, service: service}
}

// Submit accepts a quiz attempt from the public quiz page.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind quiz submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz data"})
		return
	}

	id, err := h.service.SubmitQuiz(c.Request.Context(), req.ClientName, req.Answers, req.Score)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quiz data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Quiz submitted successfully",
		"id":      id,
	})
}

// List returns every quiz submission, most recent first.
func (h *QuizHandler) List(c *gin.Context) {
	submissions, err := repository.ListQuiz(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list quiz submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quiz data"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GetByID returns a single quiz submission or 404.
func (h *QuizHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz submission not found"})
		return
	}

	submission, err := repository.GetQuizByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz submission not found"})
			return
		}
		h.log.Error("Failed to fetch quiz submission", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve quiz data"})
		return
	}

	c.JSON(http.StatusOK, submission)
}
