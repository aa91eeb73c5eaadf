package repository

import (
	"github.com/yourusername/bhp-api/internal/domain/entity"
)

// AnswerRepository определяет методы для работы с ответами
type AnswerRepository interface {
	Repository[entity.Answer]

	// FindByQuestionID возвращает ответы вопроса, упорядоченные по букве варианта
	FindByQuestionID(questionID int) ([]entity.Answer, error)
}
