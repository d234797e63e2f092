package repo

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNoDataSource: подключение к БД не настроено.
var ErrNoDataSource = errors.New("data source is not configured")

// QueryError: ошибка доступа к данным в том виде, в каком её отдаёт API.
// Сериализуется сама, поэтому хендлеры передают её наружу без изменений.
type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	cause error
}

func (e *QueryError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

func (e *QueryError) Unwrap() error { return e.cause }

// MarshalJSON отдаёт только публичные поля ошибки.
func (e *QueryError) MarshalJSON() ([]byte, error) {
	type plain QueryError
	return json.Marshal((*plain)(e))
}

// wrapQueryError приводит ошибку драйвера к QueryError.
// Для Postgres берём SQLSTATE и детали из pgconn.PgError.
func wrapQueryError(err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &QueryError{
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
			cause:   err,
		}
	}
	if errors.Is(err, ErrNoDataSource) {
		return &QueryError{Code: "no_data_source", Message: err.Error(), cause: err}
	}
	return &QueryError{Message: err.Error(), cause: err}
}

// translateDuplicate сводит нарушение уникальности к gorm.ErrDuplicatedKey.
// Postgres переводит сам gorm (TranslateError), у modernc код доступен только через Code().
func translateDuplicate(err error) error {
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, sqErr.Error())
		}
	}
	return err
}
