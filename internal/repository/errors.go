package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"collegeblog/internal/logger"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// pgError extracts SQLSTATE and constraint name from either driver's error type.
func pgError(err error) (code, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, true
	}

	return "", "", false
}

// classify wraps constraint violations in the package sentinels.
func classify(op string, err error) error {
	if code, _, ok := pgError(err); ok {
		switch code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
		case foreignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrInvalidReference, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ConstraintName returns the violated constraint, or "" if err is not a driver error.
func ConstraintName(err error) string {
	_, constraint, _ := pgError(err)
	return constraint
}

func logQuery(query string, args []any, err error) {
	if err != nil {
		logger.Log.Errorw("query failed",
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"error", err,
		)
		return
	}
	logger.Log.Debugw("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
	)
}
