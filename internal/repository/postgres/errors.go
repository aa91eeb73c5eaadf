package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/bhp-api/internal/pkg/errors"
)

// Коды ошибок PostgreSQL, которые имеют смысл для клиента
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError переводит ошибки GORM/PostgreSQL в ошибки приложения
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Detail)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Detail)
		}
	}
	return err
}
