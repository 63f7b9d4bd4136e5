package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement is worth retrying.
type ErrorClassification int

const (
	// NonRetryable is the default: constraint, data and syntax errors and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable means another attempt may succeed: a lost connection, a
	// rolled-back transaction or a lost find-or-create race.
	Retryable
)

// retryablePgCodes lists the SQLSTATE codes classified as [Retryable].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {}, // 08000
	pgerrcode.ConnectionDoesNotExist: {}, // 08003
	pgerrcode.ConnectionFailure:      {}, // 08006
	pgerrcode.TransactionRollback:    {}, // 40000
	pgerrcode.SerializationFailure:   {}, // 40001
	pgerrcode.DeadlockDetected:       {}, // 40P01
	pgerrcode.CannotConnectNow:       {}, // 57P03

	// a concurrent creation inserted the same owner, tenant or property
	// first; the retry finds the existing row
	pgerrcode.UniqueViolation: {}, // 23505
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors returned
// through the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier returns the classifier used by the postgres
// backend.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError. Errors of any other kind are
// [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE code to an [ErrorClassification].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
