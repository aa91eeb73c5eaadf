package dto

import (
	"strings"

	"github.com/yourusername/bhp-api/internal/domain/entity"
	"github.com/yourusername/bhp-api/internal/handler/helper"
)

// AnswerCreateRequest - тело запроса на создание ответа
type AnswerCreateRequest struct {
	QuestionID  int    `json:"questionId" binding:"required,gt=0"`
	AnswerNo    string `json:"answerNo" binding:"required,answerno"`
	Description string `json:"description" binding:"required"`
	IsCorrect   bool   `json:"isCorrect"`
}

// AnswerUpdateRequest - тело запроса на обновление ответа (полная замена)
type AnswerUpdateRequest struct {
	ID          int    `json:"id"`
	QuestionID  int    `json:"questionId" binding:"required,gt=0"`
	AnswerNo    string `json:"answerNo" binding:"required,answerno"`
	Description string `json:"description" binding:"required"`
	IsCorrect   bool   `json:"isCorrect"`
}

// AnswerResponse представляет ответ в формате для клиента
type AnswerResponse struct {
	ID          int              `json:"id"`
	QuestionID  int              `json:"questionId"`
	AnswerNo    string           `json:"answerNo"`
	Description string           `json:"description"`
	IsCorrect   bool             `json:"isCorrect"`
	Question    *QuestionSummary `json:"question,omitempty"`
}

// ToEntity преобразует запрос создания в сущность
func (r *AnswerCreateRequest) ToEntity() *entity.Answer {
	return &entity.Answer{
		QuestionID:  r.QuestionID,
		AnswerNo:    normalizeAnswerNo(r.AnswerNo),
		Description: r.Description,
		IsCorrect:   r.IsCorrect,
	}
}

// UpdateID возвращает ID из тела запроса
func (r *AnswerUpdateRequest) UpdateID() int {
	return r.ID
}

// ToEntity преобразует запрос обновления в сущность
func (r *AnswerUpdateRequest) ToEntity() *entity.Answer {
	return &entity.Answer{
		ID:          r.ID,
		QuestionID:  r.QuestionID,
		AnswerNo:    normalizeAnswerNo(r.AnswerNo),
		Description: r.Description,
		IsCorrect:   r.IsCorrect,
	}
}

// NewAnswerResponse создает DTO для ответа
func NewAnswerResponse(a *entity.Answer) AnswerResponse {
	return AnswerResponse{
		ID:          a.ID,
		QuestionID:  a.QuestionID,
		AnswerNo:    a.AnswerNo,
		Description: a.Description,
		IsCorrect:   a.IsCorrect,
		Question:    NewQuestionSummary(a.Question),
	}
}

// NewListAnswerResponse создает слайс DTO для списка ответов (никогда не nil)
func NewListAnswerResponse(answers []entity.Answer) []AnswerResponse {
	list := make([]AnswerResponse, len(answers))
	for i := range answers {
		list[i] = NewAnswerResponse(&answers[i])
	}
	return list
}

// normalizeAnswerNo использует ту же нормализацию, что и тег валидации answerno.
// Невалидное значение сюда не доходит, но на всякий случай сохраняется как есть.
func normalizeAnswerNo(s string) string {
	if no, ok := helper.NormalizeAnswerNo(s); ok {
		return no
	}
	return strings.TrimSpace(s)
}
