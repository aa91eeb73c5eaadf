package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/bhp-api/internal/domain/entity"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	baseRepo[entity.Answer]
}

// NewAnswerRepo создает новый репозиторий ответов.
// db должен быть привязан к контексту запроса (db.WithContext).
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{
		baseRepo: baseRepo[entity.Answer]{
			uow: newUnitOfWork(db),
			preload: func(db *gorm.DB) *gorm.DB {
				return db.Preload("Question")
			},
			columns: answerColumns,
			idOf:    func(a *entity.Answer) int { return a.ID },
		},
	}
}

// FindByQuestionID возвращает ответы вопроса
func (r *AnswerRepo) FindByQuestionID(questionID int) ([]entity.Answer, error) {
	answers := make([]entity.Answer, 0)
	err := r.uow.db.Where("question_id = ?", questionID).Order("answer_no, id").Find(&answers).Error
	if err != nil {
		return nil, translateError(err)
	}
	return answers, nil
}

func answerColumns(a *entity.Answer) map[string]interface{} {
	return map[string]interface{}{
		"question_id": a.QuestionID,
		"answer_no":   a.AnswerNo,
		"description": a.Description,
		"is_correct":  a.IsCorrect,
		"updated_at":  time.Now(),
	}
}
