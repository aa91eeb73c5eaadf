package repository

import (
	"github.com/yourusername/bhp-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Repository[entity.Question]

	// FindAllWithAnswers возвращает все вопросы вместе с ответами (для экспорта)
	FindAllWithAnswers() ([]entity.Question, error)
}
