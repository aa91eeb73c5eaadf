package repository

// Repository - общий CRUD-контракт для одной сущности.
//
// Мутации не пишут в БД напрямую: Create/Update/Delete ставят операцию в
// unit of work и сразу вызывают Save, который коммитит все накопленные
// операции одной транзакцией. Результат мутации:
//   - nil                      - затронута хотя бы одна строка;
//   - apperrors.ErrNoChange    - коммит прошел, но ни одна строка не изменилась;
//   - apperrors.ErrNotFound    - записи нет;
//   - apperrors.ErrValidation  - нарушен внешний ключ;
//   - apperrors.ErrConflict    - нарушена уникальность;
//   - любая другая ошибка      - сбой хранилища.
//
// Экземпляр привязан к одному запросу и не предназначен для конкурентного использования.
type Repository[T any] interface {
	// FindAll возвращает все записи в порядке вставки (пустой слайс, если записей нет)
	FindAll() ([]T, error)
	// FindByID возвращает запись вместе со связанной сущностью или apperrors.ErrNotFound
	FindByID(id int) (*T, error)
	Exists(id int) (bool, error)
	Create(entity *T) error
	Update(entity *T) error
	Delete(entity *T) error
	// Save коммитит накопленные операции как единый unit of work
	Save() error
}
