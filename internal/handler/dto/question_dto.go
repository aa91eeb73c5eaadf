package dto

import (
	"strings"

	"github.com/yourusername/bhp-api/internal/domain/entity"
)

// QuestionCreateRequest - тело запроса на создание вопроса
type QuestionCreateRequest struct {
	Type        string  `json:"type" binding:"required,max=50"`
	Description string  `json:"description" binding:"required"`
	URL         *string `json:"url" binding:"omitempty,max=2048"`
}

// QuestionUpdateRequest - тело запроса на обновление вопроса (полная замена)
type QuestionUpdateRequest struct {
	ID          int     `json:"id"`
	Type        string  `json:"type" binding:"required,max=50"`
	Description string  `json:"description" binding:"required"`
	URL         *string `json:"url" binding:"omitempty,max=2048"`
}

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID          int               `json:"id"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	URL         *string           `json:"url"`
	Answers     *[]AnswerResponse `json:"answers,omitempty"` // nil, если ответы не загружались
}

// QuestionSummary - вопрос без ответов (вложен в ответ по варианту)
type QuestionSummary struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	URL         *string `json:"url"`
}

// ToEntity преобразует запрос создания в сущность
func (r *QuestionCreateRequest) ToEntity() *entity.Question {
	return &entity.Question{
		Type:        strings.TrimSpace(r.Type),
		Description: r.Description,
		URL:         r.URL,
	}
}

// UpdateID возвращает ID из тела запроса
func (r *QuestionUpdateRequest) UpdateID() int {
	return r.ID
}

// ToEntity преобразует запрос обновления в сущность
func (r *QuestionUpdateRequest) ToEntity() *entity.Question {
	return &entity.Question{
		ID:          r.ID,
		Type:        strings.TrimSpace(r.Type),
		Description: r.Description,
		URL:         r.URL,
	}
}

// NewQuestionResponse создает DTO для вопроса.
// Список без preload не должен выдавать себя за вопрос без ответов, поэтому
// ответы попадают в DTO только когда они загружены.
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:          q.ID,
		Type:        q.Type,
		Description: q.Description,
		URL:         q.URL,
	}
	if q.Answers != nil {
		answers := NewListAnswerResponse(q.Answers)
		resp.Answers = &answers
	}
	return resp
}

// NewQuestionSummary создает краткий DTO вопроса
func NewQuestionSummary(q *entity.Question) *QuestionSummary {
	if q == nil {
		return nil
	}
	return &QuestionSummary{
		ID:          q.ID,
		Type:        q.Type,
		Description: q.Description,
		URL:         q.URL,
	}
}

// NewListQuestionResponse создает слайс DTO для списка вопросов (никогда не nil)
func NewListQuestionResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewQuestionResponse(&questions[i])
	}
	return list
}
