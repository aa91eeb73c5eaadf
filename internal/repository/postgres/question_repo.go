package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/bhp-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	baseRepo[entity.Question]
}

// NewQuestionRepo создает новый репозиторий вопросов.
// db должен быть привязан к контексту запроса (db.WithContext).
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{
		baseRepo: baseRepo[entity.Question]{
			uow:     newUnitOfWork(db),
			preload: preloadAnswers,
			columns: questionColumns,
			idOf:    func(q *entity.Question) int { return q.ID },
		},
	}
}

// FindAllWithAnswers возвращает все вопросы вместе с ответами
func (r *QuestionRepo) FindAllWithAnswers() ([]entity.Question, error) {
	questions := make([]entity.Question, 0)
	if err := preloadAnswers(r.uow.db).Order("id").Find(&questions).Error; err != nil {
		return nil, translateError(err)
	}
	return questions, nil
}

// Delete удаляет вопрос вместе с его ответами в одной транзакции.
// Каскад в схеме делает то же самое, но здесь он не зависит от настроек БД.
func (r *QuestionRepo) Delete(question *entity.Question) error {
	r.uow.stage(func(tx *gorm.DB) *gorm.DB {
		return tx.Where("question_id = ?", question.ID).Delete(&entity.Answer{})
	})
	r.uow.stage(func(tx *gorm.DB) *gorm.DB {
		return tx.Delete(question)
	})
	return r.Save()
}

func preloadAnswers(db *gorm.DB) *gorm.DB {
	return db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answer_no, id")
	})
}

func questionColumns(q *entity.Question) map[string]interface{} {
	return map[string]interface{}{
		"type":        q.Type,
		"description": q.Description,
		"url":         q.URL,
		"updated_at":  time.Now(),
	}
}
