package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (в том числе нарушение внешнего ключа на стороне БД).
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов уникальности.
	ErrConflict = errors.New("resource state conflict")

	// ErrNoChange означает, что коммит прошел без ошибок, но не затронул ни одной строки.
	ErrNoChange = errors.New("no rows affected")
)
