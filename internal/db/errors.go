package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// DBError is the uniform shape every database failure is normalized to
// before it crosses the storage boundary. Handlers decide HTTP statuses
// from the flags; this layer never does.
type DBError struct {
	Code       string
	SQLState   string
	Message    string
	Duplicate  bool
	ForeignKey bool
}

func (e *DBError) Error() string {
	return e.Message
}

// Classify converts a driver or GORM error into a DBError, flagging
// unique-constraint and foreign-key violations. Returns nil for nil.
func Classify(err error) *DBError {
	if err == nil {
		return nil
	}

	dbErr := &DBError{Message: err.Error()}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		dbErr.Code = pgErr.Code
		dbErr.SQLState = pgErr.SQLState()
		dbErr.Message = pgErr.Message
		dbErr.Duplicate = pgErr.Code == sqlStateUniqueViolation
		dbErr.ForeignKey = pgErr.Code == sqlStateForeignKeyViolation
		return dbErr
	}

	// GORM translates driver-specific constraint errors (sqlite included)
	// when TranslateError is on.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		dbErr.Duplicate = true
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		dbErr.ForeignKey = true
	}
	return dbErr
}

// Transact runs fn inside a single transaction: commit on nil, rollback
// on error or panic. The connection is scoped to the transaction and
// always returned to the pool. The current entity model has no
// multi-table write, but every future one must go through here.
func Transact(db *gorm.DB, fn func(tx *gorm.DB) error) *DBError {
	return Classify(db.Transaction(fn))
}
