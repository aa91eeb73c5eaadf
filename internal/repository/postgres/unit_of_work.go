package postgres

import (
	"gorm.io/gorm"
)

// stagedOp - отложенная операция, выполняемая внутри транзакции коммита
type stagedOp func(tx *gorm.DB) *gorm.DB

// unitOfWork накапливает операции репозитория и коммитит их одной транзакцией.
// Создается на каждый запрос (db уже привязан к контексту запроса),
// поэтому синхронизация не нужна.
type unitOfWork struct {
	db      *gorm.DB
	pending []stagedOp
}

func newUnitOfWork(db *gorm.DB) *unitOfWork {
	return &unitOfWork{db: db}
}

// stage добавляет операцию в очередь коммита
func (u *unitOfWork) stage(op stagedOp) {
	u.pending = append(u.pending, op)
}

// commit выполняет все накопленные операции в одной транзакции и возвращает
// суммарное число затронутых строк. Очередь очищается в любом случае.
func (u *unitOfWork) commit() (int64, error) {
	if len(u.pending) == 0 {
		return 0, nil
	}
	ops := u.pending
	u.pending = nil

	var affected int64
	err := u.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			res := op(tx)
			if res.Error != nil {
				return res.Error
			}
			affected += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
