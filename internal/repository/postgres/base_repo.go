package postgres

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/yourusername/bhp-api/internal/pkg/errors"
)

// baseRepo реализует общий CRUD-контракт repository.Repository[T] поверх GORM
type baseRepo[T any] struct {
	uow *unitOfWork
	// preload подгружает связанную сущность в FindByID
	preload func(db *gorm.DB) *gorm.DB
	// columns возвращает полный набор изменяемых колонок для Update
	columns func(entity *T) map[string]interface{}
	idOf    func(entity *T) int
}

// FindAll возвращает все записи в порядке вставки
func (r *baseRepo[T]) FindAll() ([]T, error) {
	items := make([]T, 0)
	if err := r.uow.db.Order("id").Find(&items).Error; err != nil {
		return nil, translateError(err)
	}
	return items, nil
}

// FindByID возвращает запись по ID вместе со связанной сущностью
func (r *baseRepo[T]) FindByID(id int) (*T, error) {
	var item T
	db := r.uow.db
	if r.preload != nil {
		db = r.preload(db)
	}
	if err := db.First(&item, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

// Exists проверяет наличие записи с указанным ID
func (r *baseRepo[T]) Exists(id int) (bool, error) {
	var count int64
	if err := r.uow.db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Create ставит в очередь вставку и коммитит. Сгенерированный ID записывается в entity.
func (r *baseRepo[T]) Create(entity *T) error {
	r.uow.stage(func(tx *gorm.DB) *gorm.DB {
		return tx.Omit(clause.Associations).Create(entity)
	})
	return r.Save()
}

// Update ставит в очередь полную замену изменяемых колонок и коммитит
func (r *baseRepo[T]) Update(entity *T) error {
	id := r.idOf(entity)
	values := r.columns(entity)
	r.uow.stage(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(new(T)).Where("id = ?", id).Updates(values)
	})
	return r.Save()
}

// Delete ставит в очередь удаление и коммитит
func (r *baseRepo[T]) Delete(entity *T) error {
	r.uow.stage(func(tx *gorm.DB) *gorm.DB {
		return tx.Delete(entity)
	})
	return r.Save()
}

// Save коммитит накопленные операции
func (r *baseRepo[T]) Save() error {
	affected, err := r.uow.commit()
	if err != nil {
		return fmt.Errorf("commit failed: %w", translateError(err))
	}
	if affected == 0 {
		return apperrors.ErrNoChange
	}
	return nil
}
