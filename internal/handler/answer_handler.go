package handler

import (
	"context"
	"fmt"

	"github.com/yourusername/bhp-api/internal/domain/entity"
	"github.com/yourusername/bhp-api/internal/domain/repository"
	"github.com/yourusername/bhp-api/internal/handler/dto"
	apperrors "github.com/yourusername/bhp-api/internal/pkg/errors"
	"github.com/yourusername/bhp-api/internal/pkg/logger"
)

// AnswerHandler обрабатывает запросы, связанные с ответами
type AnswerHandler struct {
	*CRUDHandler[entity.Answer, dto.AnswerCreateRequest, dto.AnswerUpdateRequest, dto.AnswerResponse]
}

// NewAnswerHandler создает новый обработчик ответов.
// questions нужен для проверки, что ответ ссылается на существующий вопрос.
func NewAnswerHandler(answers AnswerRepoFactory, questions QuestionRepoFactory, log logger.Logger) *AnswerHandler {
	registerValidators()

	crud := NewCRUDHandler(Resource[entity.Answer, dto.AnswerCreateRequest, dto.AnswerUpdateRequest, dto.AnswerResponse]{
		Name: "answer",
		Repo: func(ctx context.Context) repository.Repository[entity.Answer] {
			return answers(ctx)
		},
		CreateEntity: (*dto.AnswerCreateRequest).ToEntity,
		UpdateEntity: (*dto.AnswerUpdateRequest).ToEntity,
		UpdateID:     (*dto.AnswerUpdateRequest).UpdateID,
		EntityID:     func(a *entity.Answer) int { return a.ID },
		Response:     dto.NewAnswerResponse,
		ResponseList: dto.NewListAnswerResponse,
		CheckRefs: func(ctx context.Context, a *entity.Answer) error {
			exists, err := questions(ctx).Exists(a.QuestionID)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: question %d does not exist", apperrors.ErrValidation, a.QuestionID)
			}
			return nil
		},
	}, log)

	return &AnswerHandler{CRUDHandler: crud}
}
