package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/bhp-api/internal/domain/entity"
	"github.com/yourusername/bhp-api/internal/domain/repository"
	"github.com/yourusername/bhp-api/internal/handler/dto"
	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// QuestionRepoFactory создает репозиторий вопросов для одного запроса
type QuestionRepoFactory func(ctx context.Context) repository.QuestionRepository

// AnswerRepoFactory создает репозиторий ответов для одного запроса
type AnswerRepoFactory func(ctx context.Context) repository.AnswerRepository

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	*CRUDHandler[entity.Question, dto.QuestionCreateRequest, dto.QuestionUpdateRequest, dto.QuestionResponse]
	questions QuestionRepoFactory
	answers   AnswerRepoFactory
	log       logger.Logger
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questions QuestionRepoFactory, answers AnswerRepoFactory, log logger.Logger) *QuestionHandler {
	crud := NewCRUDHandler(Resource[entity.Question, dto.QuestionCreateRequest, dto.QuestionUpdateRequest, dto.QuestionResponse]{
		Name: "question",
		Repo: func(ctx context.Context) repository.Repository[entity.Question] {
			return questions(ctx)
		},
		CreateEntity: (*dto.QuestionCreateRequest).ToEntity,
		UpdateEntity: (*dto.QuestionUpdateRequest).ToEntity,
		UpdateID:     (*dto.QuestionUpdateRequest).UpdateID,
		EntityID:     func(q *entity.Question) int { return q.ID },
		Response:     dto.NewQuestionResponse,
		ResponseList: dto.NewListQuestionResponse,
	}, log)

	return &QuestionHandler{
		CRUDHandler: crud,
		questions:   questions,
		answers:     answers,
		log:         log,
	}
}

// ListAnswers возвращает ответы вопроса
// GET /api/question/:id/answers
func (h *QuestionHandler) ListAnswers(c *gin.Context) {
	id := c.MustGet(IDContextKey).(int)
	h.log.Info("Attempted to get answers of question id %d", id)
	ctx := c.Request.Context()

	exists, err := h.questions(ctx).Exists(id)
	if err != nil {
		handleError(c, h.log, "question", err, "question existence check failed")
		return
	}
	if !exists {
		h.log.Warn("Question with id %d was not found", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		return
	}

	answers, err := h.answers(ctx).FindByQuestionID(id)
	if err != nil {
		handleError(c, h.log, "answer", err, fmt.Sprintf("answers of question %d were not loaded", id))
		return
	}

	c.JSON(http.StatusOK, dto.NewListAnswerResponse(answers))
}
